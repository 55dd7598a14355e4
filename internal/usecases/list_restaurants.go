package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListRestaurants defines the interface for the ListRestaurants use case.
type ListRestaurants interface {
	Query(ctx context.Context) ([]domain.Restaurant, error)
}

// ListRestaurantsImpl is the implementation of the ListRestaurants use case.
type ListRestaurantsImpl struct {
	catalog domain.RestaurantCatalog
}

// NewListRestaurantsImpl creates a new instance of ListRestaurantsImpl.
func NewListRestaurantsImpl(catalog domain.RestaurantCatalog) ListRestaurantsImpl {
	return ListRestaurantsImpl{catalog: catalog}
}

// Query returns every available restaurant.
func (lr ListRestaurantsImpl) Query(ctx context.Context) ([]domain.Restaurant, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	restaurants, err := lr.catalog.ListRestaurants(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return restaurants, nil
}

// InitListRestaurants initializes the ListRestaurants use case.
type InitListRestaurants struct {
	Catalog domain.RestaurantCatalog `resolve:""`
}

// Initialize registers the ListRestaurants use case.
func (i InitListRestaurants) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListRestaurants](NewListRestaurantsImpl(i.Catalog))
	return ctx, nil
}
