package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/auth"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

const (
	serverName = "foodapp"

	// tokenInfoTTL bounds the TokenInfo handed to the MCP transport.
	// Session expiry itself is enforced by the domain.SessionVerifier.
	tokenInfoTTL = time.Minute

	extraEmail = "email"
	extraName  = "name"
)

// ToolServer exposes the assistant action registry as MCP tools over
// streamable HTTP. Every request must carry a session bearer token.
type ToolServer struct {
	server      *mcp.Server
	handler     http.Handler
	definitions []domain.AssistantActionDefinition
}

// NewToolServer registers one MCP tool per assistant action.
func NewToolServer(
	registry domain.AssistantActionRegistry,
	verifier domain.SessionVerifier,
	timeProvider domain.CurrentTimeProvider,
	logger *zerolog.Logger,
	version string,
) *ToolServer {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	definitions := registry.List()
	for _, def := range definitions {
		server.AddTool(&mcp.Tool{
			Name:        def.Name,
			Description: def.Description + "\n" + def.ComposeHint(),
			InputSchema: toolInputSchema(def),
		}, toolHandler(registry, def.Name, logger))
	}

	streamable := mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return server },
		&mcp.StreamableHTTPOptions{Stateless: true},
	)

	return &ToolServer{
		server:      server,
		handler:     auth.RequireBearerToken(bearerVerifier(verifier, timeProvider), nil)(streamable),
		definitions: definitions,
	}
}

// ServeHTTP implements http.Handler.
func (s *ToolServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Tools returns the definitions of the exposed tools, sorted by name.
func (s *ToolServer) Tools() []domain.AssistantActionDefinition {
	return s.definitions
}

// Server returns the underlying MCP server.
func (s *ToolServer) Server() *mcp.Server {
	return s.server
}

func toolInputSchema(def domain.AssistantActionDefinition) *jsonschema.Schema {
	if def.InputSchema != nil {
		return def.InputSchema
	}
	return &jsonschema.Schema{Type: "object"}
}

// callInput returns the raw tool arguments, with missing or null arguments as an empty object.
func callInput(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "{}"
	}
	return trimmed
}

// toolHandler runs the action through the registry with the identity
// carried by the bearer token.
func toolHandler(registry domain.AssistantActionRegistry, name string, logger *zerolog.Logger) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		call := domain.AssistantActionCall{
			ID:    uuid.NewString(),
			Name:  name,
			Input: "{}",
		}
		if req.Params != nil {
			call.Input = callInput(req.Params.Arguments)
		}

		identity := domain.Anonymous
		if req.Extra != nil {
			identity = identityFromTokenInfo(req.Extra.TokenInfo)
		}

		result, err := registry.Execute(ctx, identity, call)
		if err != nil {
			logger.Error().Err(err).
				Str("action", name).
				Str("action_call_id", call.ID).
				Msg("ToolServer: action call failed")
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: domain.ClassifyActionError(err).UserMessage()}},
			}, nil
		}

		res := &mcp.CallToolResult{
			IsError: result.Status == domain.ActionStatus_Incomplete,
			Content: []mcp.Content{&mcp.TextContent{Text: result.Content}},
		}
		if result.Data != nil && !res.IsError {
			structured, err := structuredContent(result.Data)
			if err != nil {
				logger.Warn().Err(err).Str("action", name).Msg("ToolServer: dropping structured content")
			} else {
				res.StructuredContent = structured
			}
		}
		return res, nil
	}
}

// structuredContent wraps non-object results since MCP structured content
// must be a JSON object.
func structuredContent(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	var object map[string]any
	if err := json.Unmarshal(raw, &object); err == nil {
		return object, nil
	}
	return map[string]any{"result": json.RawMessage(raw)}, nil
}

func bearerVerifier(verifier domain.SessionVerifier, timeProvider domain.CurrentTimeProvider) auth.TokenVerifier {
	return func(ctx context.Context, token string, _ *http.Request) (*auth.TokenInfo, error) {
		identity, err := verifier.Verify(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
		}
		return &auth.TokenInfo{
			UserID:     identity.UserID,
			Expiration: timeProvider.Now().Add(tokenInfoTTL),
			Extra: map[string]any{
				extraEmail: identity.Email,
				extraName:  identity.Name,
			},
		}, nil
	}
}

func identityFromTokenInfo(info *auth.TokenInfo) domain.Identity {
	if info == nil {
		return domain.Anonymous
	}
	identity := domain.Identity{UserID: info.UserID}
	if email, ok := info.Extra[extraEmail].(string); ok {
		identity.Email = email
	}
	if name, ok := info.Extra[extraName].(string); ok {
		identity.Name = name
	}
	return identity
}

// InitToolServer registers the MCP ToolServer.
type InitToolServer struct {
	ActionRegistry  domain.AssistantActionRegistry `resolve:""`
	SessionVerifier domain.SessionVerifier         `resolve:""`
	TimeProvider    domain.CurrentTimeProvider     `resolve:""`
	Logger          *zerolog.Logger                `resolve:""`
	Version         string                         `config:"APP_VERSION" default:"dev"`
}

// Initialize builds the ToolServer from the assistant action registry.
func (i InitToolServer) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewToolServer(i.ActionRegistry, i.SessionVerifier, i.TimeProvider, i.Logger, i.Version))
	return ctx, nil
}
