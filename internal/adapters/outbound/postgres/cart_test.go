package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/stretchr/testify/assert"
)

const (
	insertCartItemQuery = "INSERT INTO cart_items (user_id,name,price,quantity,image,created_at) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id"
	listCartItemsQuery  = "SELECT id, user_id, name, price, quantity, image, created_at FROM cart_items WHERE user_id = $1 ORDER BY id ASC"
	clearCartItemsQuery = "DELETE FROM cart_items WHERE user_id = $1"
)

func TestCartRepository_AddItems(t *testing.T) {
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	items := []domain.NewCartItem{
		{Name: "Jollof Rice", Price: 1500, Quantity: 2, Image: common.Ptr("https://img/jollof.png")},
		{Name: "Chicken", Price: 2000, Quantity: 1},
	}

	tests := map[string]struct {
		userID    string
		expect    func(sqlmock.Sqlmock)
		wantItems []domain.CartItem
		wantErr   bool
	}{
		"inserts-one-row-per-item": {
			userID: "user-1",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(insertCartItemQuery).
					WithArgs("user-1", "Jollof Rice", 1500.0, 2, "https://img/jollof.png", createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
				m.ExpectQuery(insertCartItemQuery).
					WithArgs("user-1", "Chicken", 2000.0, 1, domain.DefaultCartItemImage, createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
			},
			wantItems: []domain.CartItem{
				{ID: 10, UserID: "user-1", Name: "Jollof Rice", Price: 1500, Quantity: 2, Image: "https://img/jollof.png", CreatedAt: createdAt},
				{ID: 11, UserID: "user-1", Name: "Chicken", Price: 2000, Quantity: 1, Image: domain.DefaultCartItemImage, CreatedAt: createdAt},
			},
		},
		"second-insert-fails": {
			userID: "user-1",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(insertCartItemQuery).
					WithArgs("user-1", "Jollof Rice", 1500.0, 2, "https://img/jollof.png", createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
				m.ExpectQuery(insertCartItemQuery).
					WithArgs("user-1", "Chicken", 2000.0, 1, domain.DefaultCartItemImage, createdAt).
					WillReturnError(errors.New("insert failed"))
			},
			wantErr: true,
		},
		"missing-user-id": {
			userID:  "",
			expect:  func(m sqlmock.Sqlmock) {},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewCartRepository(db)
			got, gotErr := repo.AddItems(context.Background(), tt.userID, items, createdAt)
			if tt.wantErr {
				assert.Error(t, gotErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.wantItems, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCartRepository_ListItems(t *testing.T) {
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	columns := []string{"id", "user_id", "name", "price", "quantity", "image", "created_at"}

	tests := map[string]struct {
		expect    func(sqlmock.Sqlmock)
		wantItems []domain.CartItem
		wantErr   bool
	}{
		"returns-rows": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(listCartItemsQuery).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow(int64(1), "user-1", "Jollof Rice", 1500.0, 2, "https://img/jollof.png", createdAt).
						AddRow(int64(2), "user-1", "Chicken", 2000.0, 1, nil, createdAt))
			},
			wantItems: []domain.CartItem{
				{ID: 1, UserID: "user-1", Name: "Jollof Rice", Price: 1500, Quantity: 2, Image: "https://img/jollof.png", CreatedAt: createdAt},
				{ID: 2, UserID: "user-1", Name: "Chicken", Price: 2000, Quantity: 1, Image: domain.DefaultCartItemImage, CreatedAt: createdAt},
			},
		},
		"empty-cart": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(listCartItemsQuery).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			wantItems: []domain.CartItem{},
		},
		"query-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(listCartItemsQuery).
					WithArgs("user-1").
					WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
		"scan-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(listCartItemsQuery).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow("not-a-number", "user-1", "Chicken", 2000.0, 1, nil, createdAt))
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewCartRepository(db)
			got, gotErr := repo.ListItems(context.Background(), "user-1")
			if tt.wantErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.wantItems, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCartRepository_ClearItems(t *testing.T) {
	tests := map[string]struct {
		expect       func(sqlmock.Sqlmock)
		wantAffected int64
		wantErr      bool
	}{
		"deletes-rows": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(clearCartItemsQuery).
					WithArgs("user-1").
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
			wantAffected: 2,
		},
		"empty-cart-is-not-an-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(clearCartItemsQuery).
					WithArgs("user-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantAffected: 0,
		},
		"exec-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(clearCartItemsQuery).
					WithArgs("user-1").
					WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewCartRepository(db)
			got, gotErr := repo.ClearItems(context.Background(), "user-1")
			if tt.wantErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.wantAffected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
