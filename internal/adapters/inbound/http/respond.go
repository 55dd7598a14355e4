package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/http/gen"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err gen.ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case gen.BADREQUEST:
		statusCode = http.StatusBadRequest
	case gen.UNAUTHORIZED:
		statusCode = http.StatusUnauthorized
	case gen.NOTFOUND:
		statusCode = http.StatusNotFound
	case gen.BADGATEWAY:
		statusCode = http.StatusBadGateway
	}
	respondJSON(w, statusCode, err)
}

// respondUseCaseError maps a use case error to its HTTP response.
// Server-side failures are logged with the raw error before being masked.
func (api FoodAppServer) respondUseCaseError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	resp := toError(err)
	if resp.Error.Code == gen.INTERNALERROR || resp.Error.Code == gen.BADGATEWAY {
		api.Logger.Error().Err(err).
			Str("operation", operation).
			Str("path", r.URL.Path).
			Msg("FoodAppServer: request failed")
	}
	respondError(w, resp)
}

func invalidBody() gen.ErrorResp {
	return gen.ErrorResp{
		Error: gen.Error{
			Code:    gen.BADREQUEST,
			Message: "invalid request body",
		},
	}
}
