package domain

import (
	"context"
	"math"
	"strings"
	"time"
)

// DefaultCartItemImage is used when a menu item has no image.
const DefaultCartItemImage = "/no_image.png"

// CartItem is one line of a user's cart.
type CartItem struct {
	ID        int64
	UserID    string
	Name      string
	Price     float64
	Quantity  int
	Image     string
	CreatedAt time.Time
}

// Subtotal returns price times quantity.
func (c CartItem) Subtotal() float64 {
	return c.Price * float64(c.Quantity)
}

// NewCartItem is the input used to add a line to a cart.
type NewCartItem struct {
	Name     string
	Price    float64
	Quantity int
	Image    *string
}

// Validate checks the cart item input.
func (n NewCartItem) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return NewValidationErr("cart item name cannot be empty")
	}
	if n.Price < 0 || math.IsNaN(n.Price) || math.IsInf(n.Price, 0) {
		return NewValidationErr("cart item price must be a non-negative number")
	}
	if n.Quantity <= 0 {
		return NewValidationErr("cart item quantity must be greater than zero")
	}
	return nil
}

// ImageOrDefault returns the image or the default placeholder.
func (n NewCartItem) ImageOrDefault() string {
	if n.Image == nil || strings.TrimSpace(*n.Image) == "" {
		return DefaultCartItemImage
	}
	return *n.Image
}

// Cart is the read model of a user's cart.
type Cart struct {
	Items []CartItem
	Total float64
}

// NewCart builds a cart and computes its total.
func NewCart(items []CartItem) Cart {
	if items == nil {
		items = []CartItem{}
	}
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return Cart{Items: items, Total: total}
}

// CartRepository defines the interface for cart persistence.
type CartRepository interface {
	// AddItems inserts one row per item for the given user.
	AddItems(ctx context.Context, userID string, items []NewCartItem, createdAt time.Time) ([]CartItem, error)
	// ListItems returns every row of the user's cart.
	ListItems(ctx context.Context, userID string) ([]CartItem, error)
	// ClearItems deletes every row of the user's cart and returns how many were removed.
	ClearItems(ctx context.Context, userID string) (int64, error)
}
