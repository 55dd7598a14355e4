package actions

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
)

// SuggestionsAction is an assistant action for personalized restaurant suggestions.
type SuggestionsAction struct {
	getSuggestions usecases.GetPersonalizedSuggestions
}

// NewSuggestionsAction creates a new instance of SuggestionsAction.
func NewSuggestionsAction(getSuggestions usecases.GetPersonalizedSuggestions) SuggestionsAction {
	return SuggestionsAction{getSuggestions: getSuggestions}
}

// Definition returns the assistant action definition for SuggestionsAction.
func (a SuggestionsAction) Definition() domain.AssistantActionDefinition {
	return domain.AssistantActionDefinition{
		Name:        "getPersonalizedSuggestions",
		Description: "Get restaurant recommendations based on the user's preferences, allergies and order history.",
		Hints: domain.AssistantActionHints{
			UseWhen:   "the user is unsure what to order or asks for recommendations.",
			AvoidWhen: "the user already picked a restaurant.",
			ArgRules:  "no arguments.",
		},
		Labels: domain.ActionLabels{
			Running: "Finding suggestions for you...",
			Failure: "Failed to get suggestions",
		},
		RequiresIdentity: true,
	}
}

// Execute executes SuggestionsAction.
func (a SuggestionsAction) Execute(ctx context.Context, identity domain.Identity, _ domain.AssistantActionCall) (domain.AssistantActionResult, error) {
	suggestions, err := a.getSuggestions.Query(ctx, identity)
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	content, err := encodeContent(suggestions)
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	return domain.AssistantActionResult{
		Content: content,
		Data:    suggestions,
		Status:  domain.ActionStatus_Complete,
	}, nil
}
