package actions

import "github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"

// CartItemView is the client representation of a cart line.
type CartItemView struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// CartView is the client representation of a cart.
type CartView struct {
	Items []CartItemView `json:"items"`
	Total float64        `json:"total"`
}

func toCartView(cart domain.Cart) CartView {
	items := make([]CartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemView{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Image:    item.Image,
		})
	}
	return CartView{Items: items, Total: cart.Total}
}
