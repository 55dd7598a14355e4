package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
)

// GetRestaurantMenu defines the interface for the GetRestaurantMenu use case.
type GetRestaurantMenu interface {
	Query(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error)
}

// GetRestaurantMenuImpl is the implementation of the GetRestaurantMenu use case.
type GetRestaurantMenuImpl struct {
	catalog domain.RestaurantCatalog
	cache   domain.MenuCache
	logger  *zerolog.Logger
}

// NewGetRestaurantMenuImpl creates a new instance of GetRestaurantMenuImpl.
func NewGetRestaurantMenuImpl(catalog domain.RestaurantCatalog, cache domain.MenuCache, logger *zerolog.Logger) GetRestaurantMenuImpl {
	return GetRestaurantMenuImpl{catalog: catalog, cache: cache, logger: logger}
}

// Query returns the restaurant menu, reading through the menu cache.
// Cache failures are logged and never fail the request.
func (gm GetRestaurantMenuImpl) Query(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	span.SetAttributes(attribute.Int64("restaurant_id", restaurantID))

	if restaurantID <= 0 {
		err := domain.NewValidationErr("restaurant id must be a positive integer")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	cached, found, err := gm.cache.Get(spanCtx, restaurantID)
	if err != nil {
		gm.logger.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("GetRestaurantMenu: cache read failed")
	}
	if found {
		return cached, nil
	}

	menu, err := gm.catalog.GetMenu(spanCtx, restaurantID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	if err := gm.cache.Set(spanCtx, restaurantID, menu); err != nil {
		gm.logger.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("GetRestaurantMenu: cache write failed")
	}

	return menu, nil
}

// InitGetRestaurantMenu initializes the GetRestaurantMenu use case.
type InitGetRestaurantMenu struct {
	Catalog domain.RestaurantCatalog `resolve:""`
	Cache   domain.MenuCache         `resolve:""`
	Logger  *zerolog.Logger          `resolve:""`
}

// Initialize registers the GetRestaurantMenu use case.
func (i InitGetRestaurantMenu) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetRestaurantMenu](NewGetRestaurantMenuImpl(i.Catalog, i.Cache, i.Logger))
	return ctx, nil
}
