package actions

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
	"github.com/google/jsonschema-go/jsonschema"
)

// MIN_RESTAURANT_ID is the lowest restaurant id of the catalog.
const MIN_RESTAURANT_ID = 6

type menuFetcherInput struct {
	ID   int64  `json:"id" jsonschema:"Restaurant id returned by getAvailableRestaurants."`
	Name string `json:"name,omitempty" jsonschema:"Restaurant name, for display only."`
}

// MenuFetcherAction is an assistant action for fetching the menu of a restaurant.
type MenuFetcherAction struct {
	getRestaurantMenu usecases.GetRestaurantMenu
}

// NewMenuFetcherAction creates a new instance of MenuFetcherAction.
func NewMenuFetcherAction(getRestaurantMenu usecases.GetRestaurantMenu) MenuFetcherAction {
	return MenuFetcherAction{getRestaurantMenu: getRestaurantMenu}
}

// Definition returns the assistant action definition for MenuFetcherAction.
func (a MenuFetcherAction) Definition() domain.AssistantActionDefinition {
	return domain.AssistantActionDefinition{
		Name:        "getRestaurantMenu",
		Description: "Get the full menu of a specific restaurant, including every available dish and drink with its price and image.",
		InputSchema: inputSchemaFor[menuFetcherInput](func(s *jsonschema.Schema) {
			s.Properties["id"].Minimum = common.Ptr(float64(MIN_RESTAURANT_ID))
		}),
		Hints: domain.AssistantActionHints{
			UseWhen:   "the user wants to see what a restaurant offers, or before adding its items to the cart.",
			AvoidWhen: "the restaurant id is unknown; call getAvailableRestaurants first.",
			ArgRules:  `id is an integer >= 6. Example: {"id":9,"name":"Mama Put"}`,
		},
		Labels: domain.ActionLabels{
			Running: "Fetching the restaurant menu...",
			Failure: "Failed to get restaurant menu",
		},
	}
}

// Execute executes MenuFetcherAction.
func (a MenuFetcherAction) Execute(ctx context.Context, _ domain.Identity, call domain.AssistantActionCall) (domain.AssistantActionResult, error) {
	var params menuFetcherInput
	if err := unmarshalActionInput(call.Input, &params); err != nil {
		return domain.AssistantActionResult{}, err
	}

	menu, err := a.getRestaurantMenu.Query(ctx, params.ID)
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	content, err := encodeContent(map[string]any{"restaurant_id": params.ID, "menu": menu})
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	return domain.AssistantActionResult{
		Content: content,
		Data:    menu,
		Status:  domain.ActionStatus_Complete,
	}, nil
}
