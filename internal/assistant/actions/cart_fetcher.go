package actions

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
)

// CartFetcherAction is an assistant action for reading the caller's cart.
type CartFetcherAction struct {
	getCart usecases.GetCart
}

// NewCartFetcherAction creates a new instance of CartFetcherAction.
func NewCartFetcherAction(getCart usecases.GetCart) CartFetcherAction {
	return CartFetcherAction{getCart: getCart}
}

// Definition returns the assistant action definition for CartFetcherAction.
func (a CartFetcherAction) Definition() domain.AssistantActionDefinition {
	return domain.AssistantActionDefinition{
		Name:        "getUserCart",
		Description: "Get the items in the user's cart and the cart total.",
		Hints: domain.AssistantActionHints{
			UseWhen:  "the user asks about their cart, or before providing a payment button.",
			ArgRules: "no arguments.",
		},
		Labels: domain.ActionLabels{
			Running: "Fetching your cart...",
			Failure: "Failed to get your cart",
		},
		RequiresIdentity: true,
	}
}

// Execute executes CartFetcherAction.
func (a CartFetcherAction) Execute(ctx context.Context, identity domain.Identity, _ domain.AssistantActionCall) (domain.AssistantActionResult, error) {
	cart, err := a.getCart.Query(ctx, identity)
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	view := toCartView(cart)
	content, err := encodeContent(view)
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	return domain.AssistantActionResult{
		Content: content,
		Data:    view,
		Status:  domain.ActionStatus_Complete,
	}, nil
}
