package workers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
	"github.com/rs/zerolog"
)

// OrderEventSubscriber consumes order events from Pub/Sub
// and records paid orders in the preference graph.
type OrderEventSubscriber struct {
	Logger              *zerolog.Logger      `resolve:""`
	Client              *pubsub.Client       `resolve:""`
	Interval            time.Duration        `config:"ORDER_EVENTS_BATCH_INTERVAL" default:"3s"`
	BatchSize           int                  `config:"ORDER_EVENTS_BATCH_SIZE" default:"20"`
	SubscriptionID      string               `config:"ORDER_EVENTS_SUBSCRIPTION_ID" default:"order-events-sub"`
	RecordOrder         usecases.RecordOrder `resolve:""`
	workerExecutionChan chan struct{}
}

// Run starts the order event subscriber worker.
func (s OrderEventSubscriber) Run(ctx context.Context) error {
	s.Logger.Info().Str("subscription_id", s.SubscriptionID).Msg("OrderEventSubscriber: running...")

	if s.BatchSize <= 0 {
		s.BatchSize = 20
	}
	if s.Interval <= 0 {
		s.Interval = 3 * time.Second
	}

	eventCh := make(chan *pubsub.Message, s.BatchSize*2)
	subscriberInitErrCh := make(chan error, 1)

	// 1. Receive messages in background (blocking call).
	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- msg:
				// Ack later, after batching.
			case <-ctx.Done():
				msg.Nack()
			}
		})

		if err != nil {
			subscriberInitErrCh <- err
		}
	}()

	// 2. Batch + flush loop.
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			s.Logger.Info().Msg("OrderEventSubscriber: stopped")
			return nil

		case err := <-subscriberInitErrCh:
			return err

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

// flush records every paid order of the batch in arrival order.
// Undecodable and invalid events are acked and dropped; failed writes are nacked for redelivery.
func (s OrderEventSubscriber) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Debug().Int("batch_size", len(batch)).Msg("OrderEventSubscriber: processing batch")

	if s.workerExecutionChan != nil {
		defer func() {
			select {
			case s.workerExecutionChan <- struct{}{}:
			default:
			}
		}()
	}

	for _, msg := range batch {
		var event domain.OrderEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			s.Logger.Error().Err(err).Str("message_id", msg.ID).Msg("OrderEventSubscriber: failed to decode event payload")
			msg.Ack()
			continue
		}

		// Ignore unrelated events that may be delivered to this subscription.
		if event.Type != domain.EventType_ORDER_PAID {
			msg.Ack()
			continue
		}

		err := s.RecordOrder.Execute(ctx, event)
		if err == nil {
			msg.Ack()
			continue
		}

		var validationErr *domain.ValidationErr
		if errors.As(err, &validationErr) {
			s.Logger.Warn().Err(err).Str("reference", event.Reference).Msg("OrderEventSubscriber: dropping invalid event")
			msg.Ack()
			continue
		}

		msg.Nack()
		if !errors.Is(err, context.Canceled) {
			s.Logger.Error().Err(err).
				Str("user_id", event.UserID).
				Str("reference", event.Reference).
				Msg("OrderEventSubscriber: failed to record order")
		}
	}
}
