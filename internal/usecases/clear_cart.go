package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ClearCart defines the interface for the ClearCart use case.
type ClearCart interface {
	// Execute deletes every row of the caller's cart and returns how many were removed.
	Execute(ctx context.Context, identity domain.Identity) (int64, error)
}

// ClearCartImpl is the implementation of the ClearCart use case.
type ClearCartImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewClearCartImpl creates a new instance of ClearCartImpl.
func NewClearCartImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) ClearCartImpl {
	return ClearCartImpl{uow: uow, timeProvider: timeProvider}
}

// Execute deletes every row of the caller's cart. Clearing an empty cart is a no-op.
func (cc ClearCartImpl) Execute(ctx context.Context, identity domain.Identity) (int64, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(identity.UserID))
	defer span.End()

	if err := requireIdentity(identity); telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	var removed int64
	err := cc.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		var err error
		removed, err = uow.Cart().ClearItems(spanCtx, identity.UserID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return nil
		}

		return uow.Outbox().CreateOrderEvent(spanCtx, domain.OrderEvent{
			Type:       domain.EventType_CART_CLEARED,
			UserID:     identity.UserID,
			OccurredAt: cc.timeProvider.Now(),
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	return removed, nil
}

// InitClearCart initializes the ClearCart use case.
type InitClearCart struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the ClearCart use case.
func (i InitClearCart) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ClearCart](NewClearCartImpl(i.Uow, i.TimeProvider))
	return ctx, nil
}
