package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// RecordOrder defines the interface for the RecordOrder use case.
type RecordOrder interface {
	// Execute stores a paid order in the preference graph.
	Execute(ctx context.Context, event domain.OrderEvent) error
}

// RecordOrderImpl is the implementation of the RecordOrder use case.
type RecordOrderImpl struct {
	graph domain.PreferenceGraph
}

// NewRecordOrderImpl creates a new instance of RecordOrderImpl.
func NewRecordOrderImpl(graph domain.PreferenceGraph) RecordOrderImpl {
	return RecordOrderImpl{graph: graph}
}

// Execute stores the items of an ORDER.PAID event. Other events are ignored.
func (ro RecordOrderImpl) Execute(ctx context.Context, event domain.OrderEvent) error {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(event.UserID))
	defer span.End()

	if event.Type != domain.EventType_ORDER_PAID {
		return nil
	}
	if event.UserID == "" {
		err := domain.NewValidationErr("order event is missing the user id")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	err := ro.graph.RecordOrder(spanCtx, event.UserID, event.Items, event.OccurredAt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitRecordOrder initializes the RecordOrder use case.
type InitRecordOrder struct {
	Graph domain.PreferenceGraph `resolve:""`
}

// Initialize registers the RecordOrder use case.
func (i InitRecordOrder) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecordOrder](NewRecordOrderImpl(i.Graph))
	return ctx, nil
}
