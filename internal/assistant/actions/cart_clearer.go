package actions

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
)

// CartClearerAction is an assistant action for removing every item of the caller's cart.
type CartClearerAction struct {
	clearCart usecases.ClearCart
}

// NewCartClearerAction creates a new instance of CartClearerAction.
func NewCartClearerAction(clearCart usecases.ClearCart) CartClearerAction {
	return CartClearerAction{clearCart: clearCart}
}

// Definition returns the assistant action definition for CartClearerAction.
func (a CartClearerAction) Definition() domain.AssistantActionDefinition {
	return domain.AssistantActionDefinition{
		Name:        "clearCart",
		Aliases:     []string{"deleteCartItem"},
		Description: "Remove every item from the user's cart.",
		Hints: domain.AssistantActionHints{
			UseWhen:   "the user asks to empty, clear or start over with their cart.",
			AvoidWhen: "the user only wants to review the cart.",
			ArgRules:  "no arguments.",
		},
		Labels: domain.ActionLabels{
			Running: "Clearing your cart...",
			Failure: "Failed to clear your cart",
		},
		RequiresIdentity: true,
		Invalidates:      []string{"cart"},
	}
}

// Execute executes CartClearerAction. Clearing an empty cart succeeds.
func (a CartClearerAction) Execute(ctx context.Context, identity domain.Identity, _ domain.AssistantActionCall) (domain.AssistantActionResult, error) {
	removed, err := a.clearCart.Execute(ctx, identity)
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	output := map[string]any{"removed": removed}
	content, err := encodeContent(output)
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	return domain.AssistantActionResult{
		Content: content,
		Data:    output,
		Status:  domain.ActionStatus_Complete,
	}, nil
}
