package actions

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
)

// RestaurantListerAction is an assistant action for listing the available restaurants.
type RestaurantListerAction struct {
	listRestaurants usecases.ListRestaurants
}

// NewRestaurantListerAction creates a new instance of RestaurantListerAction.
func NewRestaurantListerAction(listRestaurants usecases.ListRestaurants) RestaurantListerAction {
	return RestaurantListerAction{listRestaurants: listRestaurants}
}

// Definition returns the assistant action definition for RestaurantListerAction.
func (a RestaurantListerAction) Definition() domain.AssistantActionDefinition {
	return domain.AssistantActionDefinition{
		Name:        "getAvailableRestaurants",
		Description: "Retrieve every available restaurant the user can browse or order from, with its id, name, description and tags.",
		Hints: domain.AssistantActionHints{
			UseWhen:  "the user wants to discover where to order food or needs a restaurant id.",
			ArgRules: "no arguments.",
		},
		Labels: domain.ActionLabels{
			Running: "Looking for available restaurants...",
			Failure: "Failed to get available restaurants",
		},
	}
}

// Execute executes RestaurantListerAction.
func (a RestaurantListerAction) Execute(ctx context.Context, _ domain.Identity, _ domain.AssistantActionCall) (domain.AssistantActionResult, error) {
	restaurants, err := a.listRestaurants.Query(ctx)
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	content, err := encodeContent(map[string]any{"restaurants": restaurants})
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	return domain.AssistantActionResult{
		Content: content,
		Data:    restaurants,
		Status:  domain.ActionStatus_Complete,
	}, nil
}
