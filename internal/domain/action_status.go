package domain

// ActionStatus is the lifecycle status of one assistant action call.
type ActionStatus string

const (
	ActionStatus_Running    ActionStatus = "running"
	ActionStatus_Complete   ActionStatus = "complete"
	ActionStatus_Incomplete ActionStatus = "incomplete"
)

// IsTerminal reports whether no further transition is allowed.
func (s ActionStatus) IsTerminal() bool {
	return s == ActionStatus_Complete || s == ActionStatus_Incomplete
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Only running -> complete and running -> incomplete are valid.
func (s ActionStatus) CanTransitionTo(next ActionStatus) bool {
	return s == ActionStatus_Running && next.IsTerminal()
}

// ActionViewKind is the client presentation selected for an action call.
type ActionViewKind string

const (
	ActionViewKind_Spinner        ActionViewKind = "spinner"
	ActionViewKind_Result         ActionViewKind = "result"
	ActionViewKind_ErrorBanner    ActionViewKind = "error_banner"
	ActionViewKind_GenericFailure ActionViewKind = "generic_failure"
)

// GenericFailureMessage is shown when the status does not match a known view.
const GenericFailureMessage = "Something went wrong."

// ActionView tells the client how to render an action call.
type ActionView struct {
	Kind    ActionViewKind `json:"kind"`
	Message string         `json:"message,omitempty"`
}

// ActionViewFor derives the view from the status only.
func ActionViewFor(status ActionStatus, label ActionLabels) ActionView {
	switch status {
	case ActionStatus_Running:
		return ActionView{Kind: ActionViewKind_Spinner, Message: label.Running}
	case ActionStatus_Complete:
		return ActionView{Kind: ActionViewKind_Result}
	case ActionStatus_Incomplete:
		if label.Failure != "" {
			return ActionView{Kind: ActionViewKind_ErrorBanner, Message: label.Failure}
		}
	}
	return ActionView{Kind: ActionViewKind_GenericFailure, Message: GenericFailureMessage}
}

// ActionCallState tracks the status of one action call.
type ActionCallState struct {
	status ActionStatus
}

// NewActionCallState returns a state in the running status.
func NewActionCallState() *ActionCallState {
	return &ActionCallState{status: ActionStatus_Running}
}

// Status returns the current status.
func (s *ActionCallState) Status() ActionStatus {
	return s.status
}

// Finish moves the state to a terminal status.
// It returns false when the transition is not allowed.
func (s *ActionCallState) Finish(next ActionStatus) bool {
	if !s.status.CanTransitionTo(next) {
		return false
	}
	s.status = next
	return true
}
