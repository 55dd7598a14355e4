package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
)

// HandlePaymentWebhook defines the interface for the HandlePaymentWebhook use case.
type HandlePaymentWebhook interface {
	// Execute processes one gateway webhook delivery.
	Execute(ctx context.Context, event domain.PaymentWebhookEvent) error
}

// HandlePaymentWebhookImpl is the implementation of the HandlePaymentWebhook use case.
type HandlePaymentWebhookImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	logger       *zerolog.Logger
}

// NewHandlePaymentWebhookImpl creates a new instance of HandlePaymentWebhookImpl.
func NewHandlePaymentWebhookImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider, logger *zerolog.Logger) HandlePaymentWebhookImpl {
	return HandlePaymentWebhookImpl{uow: uow, timeProvider: timeProvider, logger: logger}
}

// Execute clears the paying user's cart on charge.success and records an
// ORDER.PAID event with the paid items. An empty cart records nothing.
// Other events are acknowledged and ignored.
// The user id is taken from the transaction metadata as sent by the caller.
func (hw HandlePaymentWebhookImpl) Execute(ctx context.Context, event domain.PaymentWebhookEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	span.SetAttributes(attribute.String("event", event.Event))

	if event.Event != domain.PaymentEvent_ChargeSuccess {
		hw.logger.Debug().Str("event", event.Event).Msg("HandlePaymentWebhook: ignoring event")
		return nil
	}

	userID := strings.TrimSpace(event.Data.Metadata.UserID)
	if userID == "" {
		err := domain.NewValidationErr("webhook metadata is missing the user id")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	err := hw.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		items, err := uow.Cart().ListItems(spanCtx, userID)
		if err != nil {
			return err
		}
		// A redelivered charge finds the cart already cleared.
		if len(items) == 0 {
			hw.logger.Info().
				Str("user_id", userID).
				Str("reference", event.Data.Reference).
				Msg("HandlePaymentWebhook: cart already empty, no order recorded")
			return nil
		}

		if _, err := uow.Cart().ClearItems(spanCtx, userID); err != nil {
			return err
		}

		ordered := make([]domain.OrderedItem, 0, len(items))
		for _, item := range items {
			ordered = append(ordered, domain.OrderedItem{
				Name:     item.Name,
				Price:    item.Price,
				Quantity: item.Quantity,
			})
		}

		return uow.Outbox().CreateOrderEvent(spanCtx, domain.OrderEvent{
			Type:       domain.EventType_ORDER_PAID,
			UserID:     userID,
			Reference:  event.Data.Reference,
			Items:      ordered,
			OccurredAt: hw.timeProvider.Now(),
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	hw.logger.Info().
		Str("user_id", userID).
		Str("reference", event.Data.Reference).
		Msg("HandlePaymentWebhook: cart cleared after successful charge")
	return nil
}

// InitHandlePaymentWebhook initializes the HandlePaymentWebhook use case.
type InitHandlePaymentWebhook struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *zerolog.Logger            `resolve:""`
}

// Initialize registers the HandlePaymentWebhook use case.
func (i InitHandlePaymentWebhook) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[HandlePaymentWebhook](NewHandlePaymentWebhookImpl(i.Uow, i.TimeProvider, i.Logger))
	return ctx, nil
}
