package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// GetCart defines the interface for the GetCart use case.
type GetCart interface {
	// Query returns the caller's cart with its computed total.
	Query(ctx context.Context, identity domain.Identity) (domain.Cart, error)
}

// GetCartImpl is the implementation of the GetCart use case.
type GetCartImpl struct {
	cartRepo domain.CartRepository
}

// NewGetCartImpl creates a new instance of GetCartImpl.
func NewGetCartImpl(cartRepo domain.CartRepository) GetCartImpl {
	return GetCartImpl{cartRepo: cartRepo}
}

// Query returns the caller's cart with its computed total.
func (gc GetCartImpl) Query(ctx context.Context, identity domain.Identity) (domain.Cart, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(identity.UserID))
	defer span.End()

	if err := requireIdentity(identity); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Cart{}, err
	}

	items, err := gc.cartRepo.ListItems(spanCtx, identity.UserID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Cart{}, err
	}

	return domain.NewCart(items), nil
}

// InitGetCart initializes the GetCart use case.
type InitGetCart struct {
	CartRepo domain.CartRepository `resolve:""`
}

// Initialize registers the GetCart use case.
func (i InitGetCart) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetCart](NewGetCartImpl(i.CartRepo))
	return ctx, nil
}
