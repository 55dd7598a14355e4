package usecases

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"
)

const (
	// Maximum number of client history messages sent to the model
	MAX_CHAT_HISTORY_MESSAGES = 20

	// Longest caller name placed in the system prompt
	MAX_PROMPT_NAME_RUNES = 64

	// Keep action-calling deterministic to reduce malformed function arguments.
	CHAT_TEMPERATURE = 0.2
	CHAT_TOP_P       = 0.7

	// FALLBACK_ASSISTANT_MESSAGE is streamed when a turn ends without text.
	FALLBACK_ASSISTANT_MESSAGE = "Sorry, I could not process your request. Please try again."
)

//go:embed prompts/chat.yml
var chatPrompt embed.FS

// StreamChat defines the interface for the StreamChat use case
type StreamChat interface {
	// Execute streams the assistant answer to the conversation, running the
	// actions requested by the model in between.
	Execute(ctx context.Context, identity domain.Identity, messages []domain.AssistantMessage, onEvent domain.AssistantEventCallback) error
}

// StreamChatImpl is the implementation of the StreamChat use case
type StreamChatImpl struct {
	assistant       domain.Assistant
	actionRegistry  domain.AssistantActionRegistry
	timeProvider    domain.CurrentTimeProvider
	logger          *zerolog.Logger
	model           string
	maxActionCycles int
}

// NewStreamChatImpl creates a new instance of StreamChatImpl
func NewStreamChatImpl(
	assistant domain.Assistant,
	actionRegistry domain.AssistantActionRegistry,
	timeProvider domain.CurrentTimeProvider,
	logger *zerolog.Logger,
	model string,
	maxActionCycles int,
) StreamChatImpl {
	return StreamChatImpl{
		assistant:       assistant,
		actionRegistry:  actionRegistry,
		timeProvider:    timeProvider,
		logger:          logger,
		model:           model,
		maxActionCycles: maxActionCycles,
	}
}

// streamChatExecutionState holds mutable state during a stream-chat execution.
type streamChatExecutionState struct {
	turnStarted    bool
	content        strings.Builder
	tokenUsage     domain.AssistantUsage
	pendingActions []domain.AssistantActionCall
}

// Execute streams the assistant answer to the conversation.
// Action calls run sequentially in emission order. A failed action call ends
// the turn with a *domain.ActionError.
func (sc StreamChatImpl) Execute(ctx context.Context, identity domain.Identity, messages []domain.AssistantMessage, onEvent domain.AssistantEventCallback) error {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(identity.UserID))
	defer span.End()
	startedAt := sc.timeProvider.Now()

	history, err := sanitizeHistory(messages)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	systemPrompt, err := sc.buildSystemPrompt(identity)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	req := domain.AssistantTurnRequest{
		Model:            sc.model,
		Messages:         append(systemPrompt, history...),
		Temperature:      common.Ptr(CHAT_TEMPERATURE),
		TopP:             common.Ptr(CHAT_TOP_P),
		AvailableActions: sc.actionRegistry.List(),
	}

	state := &streamChatExecutionState{}

	cycle := 0
	for ; ; cycle++ {
		state.pendingActions = nil
		cycleStart := state.content.Len()

		err := sc.assistant.RunTurn(spanCtx, req, func(eventType domain.AssistantEventType, data any) error {
			return sc.handleStreamEvent(eventType, data, state, onEvent)
		})
		if telemetry.RecordErrorAndStatus(span, err) {
			return err
		}

		if len(state.pendingActions) == 0 {
			break
		}
		// maxActionCycles bounds the model calls of a turn, so actions requested
		// by the last allowed call are not run.
		if cycle+1 >= sc.maxActionCycles {
			sc.logger.Warn().
				Int("max_action_cycles", sc.maxActionCycles).
				Int("dropped_actions", len(state.pendingActions)).
				Msg("StreamChat: action cycle limit reached")
			break
		}

		req.Messages = append(req.Messages, domain.AssistantMessage{
			Role:        domain.ChatRole_Assistant,
			Content:     state.content.String()[cycleStart:],
			ActionCalls: state.pendingActions,
		})

		for _, call := range state.pendingActions {
			toolMsg, err := sc.runAction(spanCtx, identity, call, onEvent)
			if telemetry.RecordErrorAndStatus(span, err) {
				return err
			}
			req.Messages = append(req.Messages, toolMsg)
		}
	}

	if strings.TrimSpace(state.content.String()) == "" {
		if err := onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{
			Text: FALLBACK_ASSISTANT_MESSAGE,
		}); err != nil {
			return err
		}
	}

	RecordLLMTokensUsed(spanCtx, state.tokenUsage.PromptTokens, state.tokenUsage.CompletionTokens)
	RecordAssistantTurnDuration(spanCtx, sc.timeProvider.Now().Sub(startedAt), cycle)

	return onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{
		Usage:       state.tokenUsage,
		CompletedAt: sc.timeProvider.Now().Format(time.RFC3339),
	})
}

// handleStreamEvent routes one assistant stream event.
func (sc StreamChatImpl) handleStreamEvent(
	eventType domain.AssistantEventType,
	data any,
	state *streamChatExecutionState,
	onEvent domain.AssistantEventCallback,
) error {
	switch eventType {
	case domain.AssistantEventType_TurnStarted:
		// Every action cycle opens a new model turn; only the first one is forwarded.
		if state.turnStarted {
			return nil
		}
		state.turnStarted = true
		return onEvent(eventType, data)
	case domain.AssistantEventType_MessageDelta:
		delta := data.(domain.AssistantMessageDelta)
		state.content.WriteString(delta.Text)
		return onEvent(eventType, delta)
	case domain.AssistantEventType_ActionRequested:
		state.pendingActions = append(state.pendingActions, data.(domain.AssistantActionCall))
		return nil
	case domain.AssistantEventType_TurnCompleted:
		done := data.(domain.AssistantTurnCompleted)
		state.tokenUsage.PromptTokens += done.Usage.PromptTokens
		state.tokenUsage.CompletionTokens += done.Usage.CompletionTokens
		state.tokenUsage.TotalTokens += done.Usage.TotalTokens
		return nil
	default:
		return nil
	}
}

// runAction executes one action call, streaming its lifecycle, and returns the
// tool message fed back to the model.
func (sc StreamChatImpl) runAction(
	ctx context.Context,
	identity domain.Identity,
	call domain.AssistantActionCall,
	onEvent domain.AssistantEventCallback,
) (domain.AssistantMessage, error) {
	definition, _ := sc.actionRegistry.Definition(call.Name)
	name := call.Name
	if definition.Name != "" {
		name = definition.Name
	}

	callState := domain.NewActionCallState()
	if err := onEvent(domain.AssistantEventType_ActionStarted, domain.AssistantActionStarted{
		ID:     call.ID,
		Name:   name,
		Text:   definition.Labels.Running,
		Status: callState.Status(),
		View:   domain.ActionViewFor(callState.Status(), definition.Labels),
	}); err != nil {
		return domain.AssistantMessage{}, err
	}

	result, execErr := sc.actionRegistry.Execute(ctx, identity, call)
	if execErr != nil {
		callState.Finish(domain.ActionStatus_Incomplete)
		RecordAssistantActionCall(ctx, name, callState.Status())

		sc.logger.Error().Err(execErr).
			Str("action", name).
			Str("action_call_id", call.ID).
			Msg("StreamChat: action call failed")

		message := domain.ClassifyActionError(execErr).UserMessage()
		if err := onEvent(domain.AssistantEventType_ActionCompleted, domain.AssistantActionCompleted{
			ID:     call.ID,
			Name:   name,
			Status: callState.Status(),
			Error:  &message,
			View:   domain.ActionViewFor(callState.Status(), definition.Labels),
		}); err != nil {
			return domain.AssistantMessage{}, err
		}
		return domain.AssistantMessage{}, execErr
	}

	if !callState.Finish(result.Status) {
		callState.Finish(domain.ActionStatus_Incomplete)
	}
	RecordAssistantActionCall(ctx, name, callState.Status())

	completed := domain.AssistantActionCompleted{
		ID:     call.ID,
		Name:   name,
		Status: callState.Status(),
		Result: result.Data,
		View:   domain.ActionViewFor(callState.Status(), definition.Labels),
	}
	switch callState.Status() {
	case domain.ActionStatus_Complete:
		completed.Invalidate = definition.Invalidates
	case domain.ActionStatus_Incomplete:
		completed.Error = &result.Content
	}
	if err := onEvent(domain.AssistantEventType_ActionCompleted, completed); err != nil {
		return domain.AssistantMessage{}, err
	}

	return domain.AssistantMessage{
		Role:         domain.ChatRole_Tool,
		Content:      result.Content,
		ActionCallID: &call.ID,
	}, nil
}

// sanitizeHistory keeps the user and assistant text messages sent by the client,
// bounded to the most recent ones. The last message must be a user message.
func sanitizeHistory(messages []domain.AssistantMessage) ([]domain.AssistantMessage, error) {
	history := make([]domain.AssistantMessage, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case domain.ChatRole_User, domain.ChatRole_Assistant:
		default:
			return nil, domain.NewValidationErr(fmt.Sprintf("unsupported message role %q", msg.Role))
		}
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}
		history = append(history, domain.AssistantMessage{Role: msg.Role, Content: msg.Content})
	}

	if len(history) == 0 || history[len(history)-1].Role != domain.ChatRole_User {
		return nil, domain.NewValidationErr("the last message must be a non-empty user message")
	}

	if len(history) > MAX_CHAT_HISTORY_MESSAGES {
		history = history[len(history)-MAX_CHAT_HISTORY_MESSAGES:]
	}
	return history, nil
}

// buildSystemPrompt loads the embedded chat prompt for the caller.
func (sc StreamChatImpl) buildSystemPrompt(identity domain.Identity) ([]domain.AssistantMessage, error) {
	file, err := chatPrompt.Open("prompts/chat.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open chat prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.AssistantMessage{}
	err = yaml.NewDecoder(file).Decode(&messages)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chat prompt: %w", err)
	}

	customer := promptCustomer(identity)
	for i, msg := range messages {
		if msg.Role == domain.ChatRole_System {
			messages[i].Content = fmt.Sprintf(
				msg.Content,
				sc.timeProvider.Now().Format(time.DateOnly),
				customer,
			)
		}
	}
	return messages, nil
}

// promptCustomer describes the caller for the system prompt. The display name
// is user-controlled, so it is flattened to a single line, truncated and quoted.
func promptCustomer(identity domain.Identity) string {
	if !identity.IsAuthenticated() {
		return "a guest who is not signed in"
	}

	name := identity.Name
	if strings.TrimSpace(name) == "" {
		name = identity.Email
	}
	name = strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}), " ")
	if runes := []rune(name); len(runes) > MAX_PROMPT_NAME_RUNES {
		name = string(runes[:MAX_PROMPT_NAME_RUNES])
	}
	return fmt.Sprintf("%q", name)
}

// InitStreamChat initializes the StreamChat use case.
type InitStreamChat struct {
	Assistant       domain.Assistant               `resolve:""`
	ActionRegistry  domain.AssistantActionRegistry `resolve:""`
	TimeProvider    domain.CurrentTimeProvider     `resolve:""`
	Logger          *zerolog.Logger                `resolve:""`
	Model           string                         `config:"LLM_MODEL" default:"llama-3.3-70b-versatile"`
	MaxActionCycles int                            `config:"LLM_MAX_ACTION_CYCLES" default:"3"`
}

// Initialize registers the StreamChat use case.
func (i InitStreamChat) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[StreamChat](NewStreamChatImpl(
		i.Assistant,
		i.ActionRegistry,
		i.TimeProvider,
		i.Logger,
		i.Model,
		i.MaxActionCycles,
	))
	return ctx, nil
}
