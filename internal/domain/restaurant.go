package domain

import "context"

// Restaurant is a vendor listed in the catalog.
type Restaurant struct {
	ID          int64    `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// MenuItem is one dish offered by a restaurant.
type MenuItem struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
}

// RestaurantCatalog lists restaurants and their menus.
type RestaurantCatalog interface {
	// ListRestaurants returns every available restaurant.
	ListRestaurants(ctx context.Context) ([]Restaurant, error)
	// GetMenu returns the menu of the given restaurant.
	GetMenu(ctx context.Context, restaurantID int64) ([]MenuItem, error)
}

// MenuCache caches restaurant menus.
type MenuCache interface {
	// Get returns the cached menu and whether it was found.
	Get(ctx context.Context, restaurantID int64) ([]MenuItem, bool, error)
	// Set stores the menu.
	Set(ctx context.Context, restaurantID int64, items []MenuItem) error
}
