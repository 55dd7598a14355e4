package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// AddItemsToCart defines the interface for the AddItemsToCart use case.
type AddItemsToCart interface {
	// Execute inserts every item into the caller's cart as one batch.
	Execute(ctx context.Context, identity domain.Identity, items []domain.NewCartItem) ([]domain.CartItem, error)
}

// AddItemsToCartImpl is the implementation of the AddItemsToCart use case.
type AddItemsToCartImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewAddItemsToCartImpl creates a new instance of AddItemsToCartImpl.
func NewAddItemsToCartImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) AddItemsToCartImpl {
	return AddItemsToCartImpl{uow: uow, timeProvider: timeProvider}
}

// Execute inserts every item into the caller's cart. Either all rows are
// inserted or none is.
func (ac AddItemsToCartImpl) Execute(ctx context.Context, identity domain.Identity, items []domain.NewCartItem) ([]domain.CartItem, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(identity.UserID))
	defer span.End()

	if err := requireIdentity(identity); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	if len(items) == 0 {
		err := domain.NewValidationErr("at least one cart item is required")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			err = domain.NewValidationErr(fmt.Sprintf("item %d: %s", i, err.Error()))
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
	}

	var inserted []domain.CartItem
	err := ac.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		var err error
		inserted, err = uow.Cart().AddItems(spanCtx, identity.UserID, items, ac.timeProvider.Now())
		return err
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return inserted, nil
}

// InitAddItemsToCart initializes the AddItemsToCart use case.
type InitAddItemsToCart struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the AddItemsToCart use case.
func (i InitAddItemsToCart) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AddItemsToCart](NewAddItemsToCartImpl(i.Uow, i.TimeProvider))
	return ctx, nil
}
