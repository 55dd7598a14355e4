package domain

import (
	"testing"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestNewCart(t *testing.T) {
	tests := map[string]struct {
		items     []CartItem
		wantTotal float64
		wantLen   int
	}{
		"jollof-and-chicken": {
			items: []CartItem{
				{Name: "Jollof Rice", Price: 1500, Quantity: 2},
				{Name: "Chicken", Price: 2000, Quantity: 1},
			},
			wantTotal: 5000,
			wantLen:   2,
		},
		"empty-cart": {
			items:     nil,
			wantTotal: 0,
			wantLen:   0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cart := NewCart(tt.items)
			assert.Equal(t, tt.wantTotal, cart.Total)
			assert.Len(t, cart.Items, tt.wantLen)
			assert.NotNil(t, cart.Items)
		})
	}
}

func TestNewCartItem_Validate(t *testing.T) {
	tests := map[string]struct {
		item    NewCartItem
		wantErr bool
	}{
		"valid":         {item: NewCartItem{Name: "Chicken", Price: 2000, Quantity: 1}},
		"free-item":     {item: NewCartItem{Name: "Water", Price: 0, Quantity: 1}},
		"empty-name":    {item: NewCartItem{Name: " ", Price: 2000, Quantity: 1}, wantErr: true},
		"negative":      {item: NewCartItem{Name: "Chicken", Price: -1, Quantity: 1}, wantErr: true},
		"zero-quantity": {item: NewCartItem{Name: "Chicken", Price: 2000, Quantity: 0}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.IsType(t, &ValidationErr{}, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewCartItem_ImageOrDefault(t *testing.T) {
	assert.Equal(t, DefaultCartItemImage, NewCartItem{}.ImageOrDefault())
	assert.Equal(t, DefaultCartItemImage, NewCartItem{Image: common.Ptr("")}.ImageOrDefault())
	assert.Equal(t, "https://img/1.png", NewCartItem{Image: common.Ptr("https://img/1.png")}.ImageOrDefault())
}

func TestToMinorUnits(t *testing.T) {
	tests := map[string]struct {
		amount float64
		want   int64
	}{
		"whole-amount":    {amount: 5000, want: 500000},
		"fractional":      {amount: 1499.99, want: 149999},
		"float-rounding":  {amount: 19.99, want: 1999},
		"zero":            {amount: 0, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinorUnits(tt.amount))
		})
	}
}
