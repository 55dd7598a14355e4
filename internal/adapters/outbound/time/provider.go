package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// UTCTimeProvider implements domain.CurrentTimeProvider with the wall clock in UTC.
// Cart rows, outbox events and graph orders share this clock.
type UTCTimeProvider struct{}

// Now returns the current time in UTC.
func (UTCTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// InitCurrentTimeProvider registers the UTCTimeProvider in the dependency container.
type InitCurrentTimeProvider struct{}

// Initialize registers the clock.
func (InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](UTCTimeProvider{})
	return ctx, nil
}
