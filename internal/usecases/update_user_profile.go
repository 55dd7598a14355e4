package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// UpdateUserProfile defines the interface for the UpdateUserProfile use case.
type UpdateUserProfile interface {
	// Execute merges the preferences into the caller's profile.
	Execute(ctx context.Context, identity domain.Identity, prefs domain.UserPreferences) error
}

// UpdateUserProfileImpl is the implementation of the UpdateUserProfile use case.
type UpdateUserProfileImpl struct {
	graph domain.PreferenceGraph
}

// NewUpdateUserProfileImpl creates a new instance of UpdateUserProfileImpl.
func NewUpdateUserProfileImpl(graph domain.PreferenceGraph) UpdateUserProfileImpl {
	return UpdateUserProfileImpl{graph: graph}
}

// Execute merges the preferences into the caller's profile.
func (up UpdateUserProfileImpl) Execute(ctx context.Context, identity domain.Identity, prefs domain.UserPreferences) error {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(identity.UserID))
	defer span.End()

	if err := requireIdentity(identity); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if err := prefs.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	err := up.graph.UpsertPreferences(spanCtx, identity, prefs)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitUpdateUserProfile initializes the UpdateUserProfile use case.
type InitUpdateUserProfile struct {
	Graph domain.PreferenceGraph `resolve:""`
}

// Initialize registers the UpdateUserProfile use case.
func (i InitUpdateUserProfile) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateUserProfile](NewUpdateUserProfileImpl(i.Graph))
	return ctx, nil
}
