package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// GetPersonalizedSuggestions defines the interface for the GetPersonalizedSuggestions use case.
type GetPersonalizedSuggestions interface {
	Query(ctx context.Context, identity domain.Identity) (domain.PersonalizedSuggestions, error)
}

// GetPersonalizedSuggestionsImpl is the implementation of the GetPersonalizedSuggestions use case.
type GetPersonalizedSuggestionsImpl struct {
	graph   domain.PreferenceGraph
	catalog domain.RestaurantCatalog
}

// NewGetPersonalizedSuggestionsImpl creates a new instance of GetPersonalizedSuggestionsImpl.
func NewGetPersonalizedSuggestionsImpl(graph domain.PreferenceGraph, catalog domain.RestaurantCatalog) GetPersonalizedSuggestionsImpl {
	return GetPersonalizedSuggestionsImpl{graph: graph, catalog: catalog}
}

// Query returns the caller's profile and the restaurants matching the preferred
// cuisines. Without cuisine preferences every restaurant is suggested.
func (gs GetPersonalizedSuggestionsImpl) Query(ctx context.Context, identity domain.Identity) (domain.PersonalizedSuggestions, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(identity.UserID))
	defer span.End()

	if err := requireIdentity(identity); telemetry.RecordErrorAndStatus(span, err) {
		return domain.PersonalizedSuggestions{}, err
	}

	profile, err := gs.graph.GetProfile(spanCtx, identity.UserID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.PersonalizedSuggestions{}, err
	}

	restaurants, err := gs.catalog.ListRestaurants(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.PersonalizedSuggestions{}, err
	}

	return domain.PersonalizedSuggestions{
		Profile:     profile,
		Restaurants: filterByCuisines(restaurants, profile.Preferences.Cuisines),
	}, nil
}

// filterByCuisines keeps the restaurants with a tag matching one of the cuisines.
func filterByCuisines(restaurants []domain.Restaurant, cuisines []string) []domain.Restaurant {
	if len(cuisines) == 0 {
		return restaurants
	}

	matched := []domain.Restaurant{}
	for _, restaurant := range restaurants {
		if matchesAnyCuisine(restaurant.Tags, cuisines) {
			matched = append(matched, restaurant)
		}
	}
	return matched
}

func matchesAnyCuisine(tags, cuisines []string) bool {
	for _, tag := range tags {
		for _, cuisine := range cuisines {
			if strings.EqualFold(strings.TrimSpace(tag), strings.TrimSpace(cuisine)) {
				return true
			}
		}
	}
	return false
}

// InitGetPersonalizedSuggestions initializes the GetPersonalizedSuggestions use case.
type InitGetPersonalizedSuggestions struct {
	Graph   domain.PreferenceGraph   `resolve:""`
	Catalog domain.RestaurantCatalog `resolve:""`
}

// Initialize registers the GetPersonalizedSuggestions use case.
func (i InitGetPersonalizedSuggestions) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetPersonalizedSuggestions](NewGetPersonalizedSuggestionsImpl(i.Graph, i.Catalog))
	return ctx, nil
}
