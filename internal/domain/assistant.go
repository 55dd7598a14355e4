package domain

import (
	"context"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// ChatRole represents the author of a conversation message.
type ChatRole string

const (
	ChatRole_System    ChatRole = "system"
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_Tool      ChatRole = "tool"
)

// AssistantEventType represents the type of event in an assistant stream.
type AssistantEventType string

const (
	AssistantEventType_TurnStarted     AssistantEventType = "turn_started"
	AssistantEventType_MessageDelta    AssistantEventType = "message_delta"
	AssistantEventType_ActionRequested AssistantEventType = "action_requested"
	AssistantEventType_ActionStarted   AssistantEventType = "action_started"
	AssistantEventType_ActionCompleted AssistantEventType = "action_completed"
	AssistantEventType_TurnCompleted   AssistantEventType = "turn_completed"
)

// AssistantUsage contains token usage for one assistant turn.
type AssistantUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// AssistantTurnStarted is emitted once when a chat turn begins.
type AssistantTurnStarted struct {
	TurnID string `json:"turn_id"`
}

// AssistantMessageDelta contains a text delta from the stream.
type AssistantMessageDelta struct {
	Text string `json:"text"`
}

// AssistantActionCall contains one action invocation requested by the assistant.
type AssistantActionCall struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Input string `json:"input"`
}

// AssistantActionStarted indicates an action invocation is running.
type AssistantActionStarted struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Text   string       `json:"text"`
	Status ActionStatus `json:"status"`
	View   ActionView   `json:"view"`
}

// AssistantActionCompleted indicates an action invocation has finished.
type AssistantActionCompleted struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Status     ActionStatus `json:"status"`
	Result     any          `json:"result,omitempty"`
	Error      *string      `json:"error,omitempty"`
	Invalidate []string     `json:"invalidate,omitempty"`
	View       ActionView   `json:"view"`
}

// AssistantTurnCompleted contains completion metadata and usage.
type AssistantTurnCompleted struct {
	Usage       AssistantUsage `json:"usage"`
	CompletedAt string         `json:"completed_at"`
}

// AssistantEventCallback is called for each assistant turn event.
type AssistantEventCallback func(eventType AssistantEventType, data any) error

// AssistantMessage represents a message exchanged during assistant turns.
type AssistantMessage struct {
	Role         ChatRole              `yaml:"role"`
	Content      string                `yaml:"content"`
	ActionCallID *string               `yaml:"-"`
	ActionCalls  []AssistantActionCall `yaml:"-"`
}

// ActionLabels are the user-facing texts of an action call.
type ActionLabels struct {
	// Running is shown while the action executes.
	Running string
	// Failure is shown when the action ends incomplete ("Failed to ...").
	Failure string
}

// AssistantActionDefinition describes one action that can be used by the assistant.
type AssistantActionDefinition struct {
	Name        string
	Aliases     []string
	Description string
	InputSchema *jsonschema.Schema
	Hints       AssistantActionHints
	Labels      ActionLabels
	// RequiresIdentity rejects anonymous callers before the action runs.
	RequiresIdentity bool
	// Invalidates lists the client resources to refetch after a successful call.
	Invalidates []string
}

// ComposeHint composes the action hints into a single string for prompting.
func (d AssistantActionDefinition) ComposeHint() string {
	parts := make([]string, 0, 3)
	if useWhen := strings.TrimSpace(d.Hints.UseWhen); useWhen != "" {
		parts = append(parts, "Use: "+useWhen)
	}
	if avoidWhen := strings.TrimSpace(d.Hints.AvoidWhen); avoidWhen != "" {
		parts = append(parts, "Avoid: "+avoidWhen)
	}
	if argRules := strings.TrimSpace(d.Hints.ArgRules); argRules != "" {
		parts = append(parts, "Args: "+argRules)
	}

	if len(parts) == 0 {
		return "Follow the tool schema and description."
	}
	return strings.Join(parts, " ")
}

// Matches reports whether name is the action name or one of its aliases.
func (d AssistantActionDefinition) Matches(name string) bool {
	if d.Name == name {
		return true
	}
	for _, alias := range d.Aliases {
		if alias == name {
			return true
		}
	}
	return false
}

// AssistantActionHints holds compact guidance appended to the tool description.
type AssistantActionHints struct {
	UseWhen   string
	AvoidWhen string
	ArgRules  string
}

// AssistantActionResult is the outcome of an action call.
type AssistantActionResult struct {
	// Content is sent back to the model.
	Content string
	// Data is streamed to the client for rendering.
	Data any
	// Status is the terminal status of the call.
	Status ActionStatus
}

// AssistantTurnRequest is the domain request for one assistant turn.
type AssistantTurnRequest struct {
	Model            string
	Messages         []AssistantMessage
	Temperature      *float64
	TopP             *float64
	MaxTokens        *int
	AvailableActions []AssistantActionDefinition
}

// Assistant defines assistant interaction in domain terms.
type Assistant interface {
	// RunTurn streams one assistant turn. Requested actions are reported
	// through AssistantEventType_ActionRequested after the text stream ends.
	RunTurn(ctx context.Context, req AssistantTurnRequest, onEvent AssistantEventCallback) error
}

// AssistantAction represents one executable assistant action.
type AssistantAction interface {
	Definition() AssistantActionDefinition
	// Execute runs the action with arguments already validated against the input schema.
	Execute(ctx context.Context, identity Identity, call AssistantActionCall) (AssistantActionResult, error)
}

// AssistantActionRegistry resolves, validates and executes assistant actions.
type AssistantActionRegistry interface {
	Execute(ctx context.Context, identity Identity, call AssistantActionCall) (AssistantActionResult, error)
	Definition(name string) (AssistantActionDefinition, bool)
	List() []AssistantActionDefinition
}
