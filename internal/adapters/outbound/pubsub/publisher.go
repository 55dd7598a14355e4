package pubsub

import (
	"context"
	"fmt"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PubSubEventPublisher implements domain.EventPublisher using Google Cloud Pub/Sub
type PubSubEventPublisher struct {
	client *pubsubV2.Client
	topics map[domain.OutboxTopic]string
}

// NewPubSubEventPublisher creates a new instance of PubSubEventPublisher.
// topics maps each outbox topic to its Pub/Sub topic ID.
func NewPubSubEventPublisher(client *pubsubV2.Client, topics map[domain.OutboxTopic]string) PubSubEventPublisher {
	return PubSubEventPublisher{client: client, topics: topics}
}

// PublishEvent publishes the given event to the appropriate Pub/Sub topic
func (p PubSubEventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.EventType)),
			attribute.String("topic", string(event.Topic)),
		),
	)
	defer span.End()

	topicID, found := p.topics[event.Topic]
	if !found {
		err := fmt.Errorf("no pubsub topic configured for %s", event.Topic)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	result := p.client.Publisher(topicID).Publish(spanCtx, &pubsubV2.Message{
		Data: event.Payload,
		Attributes: map[string]string{
			"event_type":  string(event.EventType),
			"entity_type": string(event.EntityType),
			"entity_id":   event.EntityID,
		},
	})

	_, err := result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitPublisher initializes the EventPublisher implementation
type InitPublisher struct {
	Client        *pubsubV2.Client `resolve:""`
	OrdersTopicID string           `config:"PUBSUB_ORDERS_TOPIC_ID" default:"Orders"`
}

// Initialize registers the PubSubEventPublisher as the implementation of EventPublisher
func (i InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EventPublisher](NewPubSubEventPublisher(i.Client, map[domain.OutboxTopic]string{
		domain.OutboxTopic_Orders: i.OrdersTopicID,
	}))
	return ctx, nil
}
