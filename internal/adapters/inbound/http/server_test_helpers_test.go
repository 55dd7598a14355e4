package http

import (
	"encoding/json"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var customer = domain.Identity{UserID: "user-1", Email: "ada@example.com", Name: "Ada"}

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func decodeErrorResp(t *testing.T, body []byte) gen.ErrorResp {
	t.Helper()
	var resp gen.ErrorResp
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}
