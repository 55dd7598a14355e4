package workers

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
	"github.com/rs/zerolog"
)

// MessageRelay publishes pending outbox events, such as ORDER.PAID and
// CART.CLEARED, to Pub/Sub. The backlog left by a previous run is relayed at
// startup, then one batch is relayed per interval.
type MessageRelay struct {
	RelayOutbox         usecases.RelayOutbox `resolve:""`
	Logger              *zerolog.Logger      `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	workerExecutionChan chan struct{}
}

// Run relays outbox batches until ctx is cancelled.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Info().Dur("interval", mr.Interval).Msg("MessageRelay: running...")
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		mr.relayBatch(ctx)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			mr.Logger.Info().Msg("MessageRelay: stopping...")
			return nil
		}
	}
}

func (mr MessageRelay) relayBatch(ctx context.Context) {
	err := mr.RelayOutbox.Execute(ctx)
	if err != nil && ctx.Err() == nil {
		mr.Logger.Error().Err(err).Msg("MessageRelay: error relaying outbox batch")
	}

	if mr.workerExecutionChan != nil {
		select {
		case mr.workerExecutionChan <- struct{}{}:
		default:
		}
	}
}
