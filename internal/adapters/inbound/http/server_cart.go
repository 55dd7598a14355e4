package http

import (
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
)

func (api FoodAppServer) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := api.GetCartUseCase.Query(r.Context(), IdentityFromContext(r.Context()))
	if err != nil {
		api.respondUseCaseError(w, r, "GetCart", err)
		return
	}

	respondJSON(w, http.StatusOK, toCart(cart))
}

func (api FoodAppServer) DeleteCart(w http.ResponseWriter, r *http.Request) {
	removed, err := api.ClearCartUseCase.Execute(r.Context(), IdentityFromContext(r.Context()))
	if err != nil {
		var unauthorizedErr *domain.UnauthorizedErr
		if errors.As(err, &unauthorizedErr) {
			respondError(w, toError(err))
			return
		}
		api.Logger.Error().Err(err).Msg("DeleteCart: failed to clear cart")
		respondError(w, gen.ErrorResp{
			Error: gen.Error{
				Code:    gen.INTERNALERROR,
				Message: "Cannot delete cart item",
			},
		})
		return
	}

	api.Logger.Debug().Int64("removed", removed).Msg("DeleteCart: cart cleared")
	respondJSON(w, http.StatusOK, gen.MessageResp{Message: "Cart item deleted"})
}
