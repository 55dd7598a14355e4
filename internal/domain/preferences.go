package domain

import (
	"context"
	"time"
)

// SpiceLevel is the preferred spiciness of a user.
type SpiceLevel string

const (
	SpiceLevel_Mild   SpiceLevel = "mild"
	SpiceLevel_Medium SpiceLevel = "medium"
	SpiceLevel_Hot    SpiceLevel = "hot"
)

// PriceRange is the preferred price bracket of a user.
type PriceRange string

const (
	PriceRange_Budget   PriceRange = "budget"
	PriceRange_MidRange PriceRange = "mid-range"
	PriceRange_Premium  PriceRange = "premium"
)

// UserPreferences are the food preferences learned from conversations.
// Nil or empty fields are left untouched on upsert.
type UserPreferences struct {
	Cuisines            []string    `json:"cuisines,omitempty"`
	Allergens           []string    `json:"allergens,omitempty"`
	SpiceLevel          *SpiceLevel `json:"spiceLevel,omitempty"`
	DietaryRestrictions []string    `json:"dietaryRestrictions,omitempty"`
	PriceRange          *PriceRange `json:"priceRange,omitempty"`
}

// IsEmpty reports whether no preference is set.
func (p UserPreferences) IsEmpty() bool {
	return len(p.Cuisines) == 0 &&
		len(p.Allergens) == 0 &&
		len(p.DietaryRestrictions) == 0 &&
		p.SpiceLevel == nil &&
		p.PriceRange == nil
}

// Validate checks the enumerated preferences.
func (p UserPreferences) Validate() error {
	if p.IsEmpty() {
		return NewValidationErr("at least one preference is required")
	}
	if p.SpiceLevel != nil {
		switch *p.SpiceLevel {
		case SpiceLevel_Mild, SpiceLevel_Medium, SpiceLevel_Hot:
		default:
			return NewValidationErr("spice level must be one of mild, medium, hot")
		}
	}
	if p.PriceRange != nil {
		switch *p.PriceRange {
		case PriceRange_Budget, PriceRange_MidRange, PriceRange_Premium:
		default:
			return NewValidationErr("price range must be one of budget, mid-range, premium")
		}
	}
	return nil
}

// OrderedItem is one item of a paid order.
type OrderedItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// UserProfile is the preference graph view of a user.
type UserProfile struct {
	UserID      string          `json:"user_id"`
	Preferences UserPreferences `json:"preferences"`
	PastOrders  []OrderedItem   `json:"past_orders"`
}

// PreferenceGraph stores user preferences and order history.
type PreferenceGraph interface {
	// UpsertPreferences merges the user's preferences.
	UpsertPreferences(ctx context.Context, identity Identity, prefs UserPreferences) error
	// RecordOrder links the user to every ordered menu item.
	RecordOrder(ctx context.Context, userID string, items []OrderedItem, orderedAt time.Time) error
	// GetProfile returns the user's preferences and most frequent past orders.
	GetProfile(ctx context.Context, userID string) (UserProfile, error)
}

// PersonalizedSuggestions combines the user profile with the restaurants
// matching the preferred cuisines.
type PersonalizedSuggestions struct {
	Profile     UserProfile  `json:"profile"`
	Restaurants []Restaurant `json:"restaurants"`
}
