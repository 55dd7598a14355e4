package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/http/gen"
)

func (api FoodAppServer) InitializePayment(w http.ResponseWriter, r *http.Request) {
	var req gen.InitializePaymentJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, invalidBody())
		return
	}

	tx, err := api.InitializePaymentUseCase.Execute(r.Context(), IdentityFromContext(r.Context()), req.Amount)
	if err != nil {
		api.respondUseCaseError(w, r, "InitializePayment", err)
		return
	}

	respondJSON(w, http.StatusOK, toPaymentTransaction(tx))
}

// HandlePaymentWebhook trusts the event metadata as sent; the gateway signature
// header is not checked.
func (api FoodAppServer) HandlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	var req gen.HandlePaymentWebhookJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, invalidBody())
		return
	}

	if err := api.PaymentWebhookUseCase.Execute(r.Context(), toPaymentWebhookEvent(req)); err != nil {
		api.respondUseCaseError(w, r, "HandlePaymentWebhook", err)
		return
	}

	respondJSON(w, http.StatusOK, gen.MessageResp{Message: "webhook received"})
}
