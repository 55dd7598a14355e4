package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
)

const sseEventError = "error"

type streamErrorEvent struct {
	Message string `json:"message"`
}

func (api FoodAppServer) StreamChat(w http.ResponseWriter, r *http.Request) {
	req := gen.StreamChatJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, invalidBody())
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, gen.ErrorResp{
			Error: gen.Error{
				Code:    gen.INTERNALERROR,
				Message: "streaming not supported",
			},
		})
		return
	}

	streaming := false
	writeEvent := func(eventType string, data any) error {
		dataBytes, err := json.Marshal(data)
		if err != nil {
			return err
		}
		if !streaming {
			w.Header().Set("Content-Type", "text/event-stream")
			w.Header().Set("Cache-Control", "no-cache")
			w.Header().Set("Connection", "keep-alive")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.WriteHeader(http.StatusOK)
			streaming = true
		}
		if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, dataBytes); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	identity := IdentityFromContext(r.Context())
	err := api.StreamChatUseCase.Execute(r.Context(), identity, toAssistantMessages(req.Messages),
		func(eventType domain.AssistantEventType, data any) error {
			return writeEvent(string(eventType), data)
		},
	)
	if err == nil {
		return
	}

	var (
		validationErr   *domain.ValidationErr
		unauthorizedErr *domain.UnauthorizedErr
	)
	if !streaming && (errors.As(err, &validationErr) || errors.As(err, &unauthorizedErr)) {
		respondError(w, toError(err))
		return
	}

	api.Logger.Error().Err(err).
		Str("user_id", identity.UserID).
		Str("error_kind", string(domain.ClassifyActionError(err))).
		Msg("StreamChat: error during streaming")

	if writeErr := writeEvent(sseEventError, streamErrorEvent{
		Message: domain.ClassifyActionError(err).UserMessage(),
	}); writeErr != nil {
		api.Logger.Debug().Err(writeErr).Msg("StreamChat: failed to write error event")
	}
}
