package domain

import (
	"errors"
	"fmt"
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// UnauthorizedErr represents a call that requires an authenticated identity.
type UnauthorizedErr struct {
	domainErr
}

// NewUnauthorizedErr creates a new UnauthorizedErr with the given message.
func NewUnauthorizedErr(message string) *UnauthorizedErr {
	return &UnauthorizedErr{
		domainErr: domainErr{message: message},
	}
}

// UpstreamErr represents a failure reported by a third-party service.
// The message is the upstream message, unwrapped from its response body.
type UpstreamErr struct {
	domainErr
	Service    string
	StatusCode int
}

// NewUpstreamErr creates a new UpstreamErr.
func NewUpstreamErr(service string, statusCode int, message string) *UpstreamErr {
	return &UpstreamErr{
		domainErr:  domainErr{message: message},
		Service:    service,
		StatusCode: statusCode,
	}
}

// ActionErrorKind classifies why an assistant action call failed.
type ActionErrorKind string

const (
	ActionErrorKind_UnknownTool      ActionErrorKind = "unknown_tool"
	ActionErrorKind_InvalidArguments ActionErrorKind = "invalid_arguments"
	ActionErrorKind_Execution        ActionErrorKind = "execution_error"
	ActionErrorKind_Unknown          ActionErrorKind = "unknown"
)

// UserMessage returns the user-safe message for the error kind.
func (k ActionErrorKind) UserMessage() string {
	switch k {
	case ActionErrorKind_UnknownTool:
		return "The model tried to call a unknown tool."
	case ActionErrorKind_InvalidArguments:
		return "The model called a tool with invalid arguments."
	case ActionErrorKind_Execution:
		return "An error occurred during tool execution."
	default:
		return "An unknown error occurred."
	}
}

// ActionError is raised when an assistant action call cannot complete.
type ActionError struct {
	Kind   ActionErrorKind
	Action string
	Err    error
}

// NewActionError creates a new ActionError.
func NewActionError(kind ActionErrorKind, action string, err error) *ActionError {
	return &ActionError{Kind: kind, Action: action, Err: err}
}

// Error returns the raw error message, including the action name.
func (e *ActionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("action %s: %s", e.Action, e.Kind)
	}
	return fmt.Sprintf("action %s: %s: %v", e.Action, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *ActionError) Unwrap() error {
	return e.Err
}

// ClassifyActionError returns the action error kind carried by err,
// or ActionErrorKind_Unknown when err is not an action failure.
func ClassifyActionError(err error) ActionErrorKind {
	var actionErr *ActionError
	if errors.As(err, &actionErr) {
		return actionErr.Kind
	}
	return ActionErrorKind_Unknown
}
