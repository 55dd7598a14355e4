package pubsub

import (
	"context"
	"fmt"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

// InitClient initializes the shared Pub/Sub client.
type InitClient struct {
	Logger    *zerolog.Logger `resolve:""`
	ProjectID string          `config:"PUBSUB_PROJECT_ID"`
	client    *pubsubV2.Client
}

// Initialize creates the client and registers it.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	depend.Register(i.client)

	return ctx, nil
}

// Close closes the client.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Error().Err(err).Msg("InitClient: failed to close pubsub client")
	}
}
