package actions

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
	"github.com/google/jsonschema-go/jsonschema"
)

type cartLineInput struct {
	Name     string  `json:"name" jsonschema:"Menu item name, copied from the menu."`
	Price    float64 `json:"price" jsonschema:"Unit price in naira, copied from the menu."`
	Image    *string `json:"image" jsonschema:"Menu item image URL, or null when the menu has none."`
	Quantity int     `json:"quantity" jsonschema:"How many units to add."`
}

type cartAdderInput struct {
	Cart []cartLineInput `json:"cart" jsonschema:"Menu items to add to the cart."`
}

// CartAdderAction is an assistant action for adding menu items to the caller's cart.
type CartAdderAction struct {
	addItemsToCart usecases.AddItemsToCart
}

// NewCartAdderAction creates a new instance of CartAdderAction.
func NewCartAdderAction(addItemsToCart usecases.AddItemsToCart) CartAdderAction {
	return CartAdderAction{addItemsToCart: addItemsToCart}
}

// Definition returns the assistant action definition for CartAdderAction.
func (a CartAdderAction) Definition() domain.AssistantActionDefinition {
	return domain.AssistantActionDefinition{
		Name:        "addMenuItemToCart",
		Description: "Add a list of menu items to the user's cart.",
		InputSchema: inputSchemaFor[cartAdderInput](func(s *jsonschema.Schema) {
			cart := s.Properties["cart"]
			arrayOnly(cart)
			cart.MinItems = common.Ptr(1)

			line := cart.Items
			line.Properties["price"].Minimum = common.Ptr(0.0)
			line.Properties["quantity"].Minimum = common.Ptr(1.0)
		}),
		Hints: domain.AssistantActionHints{
			UseWhen:   "the user asks to order or add dishes from a menu they have seen.",
			AvoidWhen: "the items were not returned by getRestaurantMenu.",
			ArgRules:  `Example: {"cart":[{"name":"Jollof Rice","price":1500,"image":null,"quantity":2}]}`,
		},
		Labels: domain.ActionLabels{
			Running: "Adding your items to your cart...",
			Failure: "Failed to add item to cart",
		},
		RequiresIdentity: true,
		Invalidates:      []string{"cart"},
	}
}

// Execute executes CartAdderAction. The items are inserted as one batch.
func (a CartAdderAction) Execute(ctx context.Context, identity domain.Identity, call domain.AssistantActionCall) (domain.AssistantActionResult, error) {
	var params cartAdderInput
	if err := unmarshalActionInput(call.Input, &params); err != nil {
		return domain.AssistantActionResult{}, err
	}

	items := make([]domain.NewCartItem, 0, len(params.Cart))
	for _, line := range params.Cart {
		items = append(items, domain.NewCartItem{
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
			Image:    line.Image,
		})
	}

	inserted, err := a.addItemsToCart.Execute(ctx, identity, items)
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	view := toCartView(domain.NewCart(inserted))
	content, err := encodeContent(map[string]any{"added": view.Items})
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	return domain.AssistantActionResult{
		Content: content,
		Data:    view.Items,
		Status:  domain.ActionStatus_Complete,
	}, nil
}
