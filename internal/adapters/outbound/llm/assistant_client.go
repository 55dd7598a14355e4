package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// AssistantClient adapts an OpenAI-compatible chat completions API to domain.Assistant.
type AssistantClient struct {
	client openai.Client
}

// NewAssistantClient creates a new AssistantClient.
// Retries are left to the provided http client.
func NewAssistantClient(baseURL, apiKey string, httpClient *http.Client) AssistantClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return AssistantClient{client: openai.NewClient(opts...)}
}

// RunTurn implements domain.Assistant.
func (a AssistantClient) RunTurn(ctx context.Context, req domain.AssistantTurnRequest, onEvent domain.AssistantEventCallback) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	params, err := toChatParams(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	if err := onEvent(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{
		TurnID: uuid.NewString(),
	}); err != nil {
		return err
	}

	stream := a.client.Chat.Completions.NewStreaming(spanCtx, params)
	defer stream.Close() //nolint:errcheck

	acc := openai.ChatCompletionAccumulator{}
	for stream.Next() {
		chunk := stream.Current()
		acc.AddChunk(chunk)

		for _, choice := range chunk.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			if err := onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: choice.Delta.Content}); err != nil {
				return err
			}
		}
	}
	if err := stream.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return toUpstreamErr(err)
	}

	if len(acc.Choices) > 0 {
		for _, tc := range acc.Choices[0].Message.ToolCalls {
			if err := onEvent(domain.AssistantEventType_ActionRequested, domain.AssistantActionCall{
				ID:    tc.ID,
				Name:  tc.Function.Name,
				Input: tc.Function.Arguments,
			}); err != nil {
				return err
			}
		}
	}

	return onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
		Usage: domain.AssistantUsage{
			PromptTokens:     int(acc.Usage.PromptTokens),
			CompletionTokens: int(acc.Usage.CompletionTokens),
			TotalTokens:      int(acc.Usage.TotalTokens),
		},
	})
}

// toUpstreamErr unwraps the provider error message.
func toUpstreamErr(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = http.StatusText(apiErr.StatusCode)
		}
		return domain.NewUpstreamErr("llm", apiErr.StatusCode, message)
	}
	return err
}

func toChatParams(req domain.AssistantTurnRequest) (openai.ChatCompletionNewParams, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)),
		StreamOptions: openai.ChatCompletionStreamOptionsParam{
			IncludeUsage: openai.Bool(true),
		},
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.TopP != nil {
		params.TopP = openai.Float(*req.TopP)
	}
	if req.MaxTokens != nil {
		params.MaxCompletionTokens = openai.Int(int64(*req.MaxTokens))
	}

	for _, msg := range req.Messages {
		params.Messages = append(params.Messages, toMessageParam(msg))
	}

	for _, action := range req.AvailableActions {
		parameters, err := toFunctionParameters(action)
		if err != nil {
			return openai.ChatCompletionNewParams{}, err
		}
		params.Tools = append(params.Tools, openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        action.Name,
				Description: openai.String(action.Description + "\n" + action.ComposeHint()),
				Parameters:  parameters,
			},
		})
	}

	return params, nil
}

func toMessageParam(msg domain.AssistantMessage) openai.ChatCompletionMessageParamUnion {
	switch msg.Role {
	case domain.ChatRole_System:
		return openai.SystemMessage(msg.Content)
	case domain.ChatRole_Tool:
		toolCallID := ""
		if msg.ActionCallID != nil {
			toolCallID = *msg.ActionCallID
		}
		return openai.ToolMessage(msg.Content, toolCallID)
	case domain.ChatRole_Assistant:
		assistant := openai.ChatCompletionAssistantMessageParam{}
		if msg.Content != "" {
			assistant.Content = openai.ChatCompletionAssistantMessageParamContentUnion{
				OfString: openai.String(msg.Content),
			}
		}
		for _, call := range msg.ActionCalls {
			assistant.ToolCalls = append(assistant.ToolCalls, openai.ChatCompletionMessageToolCallParam{
				ID: call.ID,
				Function: openai.ChatCompletionMessageToolCallFunctionParam{
					Name:      call.Name,
					Arguments: call.Input,
				},
			})
		}
		return openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant}
	default:
		return openai.UserMessage(msg.Content)
	}
}

// toFunctionParameters converts the resolved input schema into the provider's free-form map.
func toFunctionParameters(action domain.AssistantActionDefinition) (shared.FunctionParameters, error) {
	if action.InputSchema == nil {
		return shared.FunctionParameters{"type": "object", "properties": map[string]any{}}, nil
	}
	raw, err := json.Marshal(action.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema of %s: %w", action.Name, err)
	}
	parameters := shared.FunctionParameters{}
	if err := json.Unmarshal(raw, &parameters); err != nil {
		return nil, fmt.Errorf("failed to decode schema of %s: %w", action.Name, err)
	}
	return parameters, nil
}

// InitAssistant initializes the assistant dependency.
type InitAssistant struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"LLM_BASE_URL" default:"https://api.groq.com/openai/v1"`
	APIKey     string       `config:"LLM_API_KEY"`
}

// Initialize registers the assistant client.
func (i InitAssistant) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.Assistant](NewAssistantClient(i.BaseURL, i.APIKey, i.HttpClient))
	return ctx, nil
}
