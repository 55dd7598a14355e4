package domain

import (
	"context"
	"time"
)

type EventType string

const (
	// EventType_ORDER_PAID represents a successful payment for a user's cart.
	EventType_ORDER_PAID EventType = "ORDER.PAID"
	// EventType_CART_CLEARED represents the removal of every item of a user's cart.
	EventType_CART_CLEARED EventType = "CART.CLEARED"
)

// OrderEvent is published when the cart of a user changes as a whole.
type OrderEvent struct {
	Type       EventType     `json:"type"`
	UserID     string        `json:"user_id"`
	Reference  string        `json:"reference,omitempty"`
	Items      []OrderedItem `json:"items"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
