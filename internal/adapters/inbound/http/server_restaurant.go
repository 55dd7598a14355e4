package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/http/gen"
)

func (api FoodAppServer) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := api.ListRestaurantsUseCase.Query(r.Context())
	if err != nil {
		api.respondUseCaseError(w, r, "ListRestaurants", err)
		return
	}

	resp := make([]gen.Restaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		resp = append(resp, toRestaurant(restaurant))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api FoodAppServer) GetRestaurantMenu(w http.ResponseWriter, r *http.Request, restaurantId int64) {
	menu, err := api.GetRestaurantMenuUseCase.Query(r.Context(), restaurantId)
	if err != nil {
		api.respondUseCaseError(w, r, "GetRestaurantMenu", err)
		return
	}

	resp := make([]gen.MenuItem, 0, len(menu))
	for _, item := range menu {
		resp = append(resp, toMenuItem(item))
	}
	respondJSON(w, http.StatusOK, resp)
}
