package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	cartItemFields = []string{
		"id",
		"user_id",
		"name",
		"price",
		"quantity",
		"image",
		"created_at",
	}
)

// CartRepository implements the domain.CartRepository interface using PostgreSQL as the storage backend.
type CartRepository struct {
	sb squirrel.StatementBuilderType
}

// NewCartRepository creates a new instance of CartRepository.
func NewCartRepository(br squirrel.BaseRunner) CartRepository {
	return CartRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// AddItems inserts one row per item. Callers run it inside a unit of work
// so a failing row discards the whole batch.
func (cr CartRepository) AddItems(ctx context.Context, userID string, items []domain.NewCartItem, createdAt time.Time) ([]domain.CartItem, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("items", len(items)),
	))
	defer span.End()

	if userID == "" {
		err := domain.NewValidationErr("user id is required")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	inserted := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		row := domain.CartItem{
			UserID:    userID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.ImageOrDefault(),
			CreatedAt: createdAt,
		}

		err := cr.sb.
			Insert("cart_items").
			Columns("user_id", "name", "price", "quantity", "image", "created_at").
			Values(row.UserID, row.Name, row.Price, row.Quantity, row.Image, row.CreatedAt).
			Suffix("RETURNING id").
			QueryRowContext(spanCtx).
			Scan(&row.ID)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, fmt.Errorf("failed to insert cart item %q: %w", item.Name, err)
		}
		inserted = append(inserted, row)
	}

	return inserted, nil
}

// ListItems returns every row of the user's cart in insertion order.
func (cr CartRepository) ListItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := cr.sb.
		Select(cartItemFields...).
		From("cart_items").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	items := []domain.CartItem{}
	for rows.Next() {
		var (
			item  domain.CartItem
			image sql.NullString
		)
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&image,
			&item.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		item.Image = domain.DefaultCartItemImage
		if image.Valid && image.String != "" {
			item.Image = image.String
		}
		items = append(items, item)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return items, nil
}

// ClearItems deletes every row of the user's cart. Clearing an empty cart is not an error.
func (cr CartRepository) ClearItems(ctx context.Context, userID string) (int64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := cr.sb.
		Delete("cart_items").
		Where(squirrel.Eq{"user_id": userID}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return affected, nil
}

// InitCartRepository is a Symbiont initializer for CartRepository.
type InitCartRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the CartRepository in the dependency container.
func (icr InitCartRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CartRepository](NewCartRepository(icr.DB))
	return ctx, nil
}
