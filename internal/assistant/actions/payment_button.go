package actions

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
	"github.com/google/jsonschema-go/jsonschema"
)

type paymentButtonInput struct {
	TotalAmount float64 `json:"totalAmount" jsonschema:"Total amount of the items in the cart, in naira."`
}

// PaymentButtonAction is an assistant action for creating a checkout link.
type PaymentButtonAction struct {
	initializePayment usecases.InitializePayment
}

// NewPaymentButtonAction creates a new instance of PaymentButtonAction.
func NewPaymentButtonAction(initializePayment usecases.InitializePayment) PaymentButtonAction {
	return PaymentButtonAction{initializePayment: initializePayment}
}

// Definition returns the assistant action definition for PaymentButtonAction.
func (a PaymentButtonAction) Definition() domain.AssistantActionDefinition {
	return domain.AssistantActionDefinition{
		Name:        "providePaymentButton",
		Description: "Provide a payment button for checking out the user's cart.",
		InputSchema: inputSchemaFor[paymentButtonInput](func(s *jsonschema.Schema) {
			s.Properties["totalAmount"].ExclusiveMinimum = common.Ptr(0.0)
		}),
		Hints: domain.AssistantActionHints{
			UseWhen:   "the user is ready to pay for their cart.",
			AvoidWhen: "the cart total is unknown; call getUserCart first.",
			ArgRules:  `totalAmount is the cart total in naira. Example: {"totalAmount":5000}`,
		},
		Labels: domain.ActionLabels{
			Running: "Generating your payment link...",
			Failure: "Failed to generate payment link",
		},
		RequiresIdentity: true,
	}
}

// Execute executes PaymentButtonAction. The gateway response is returned verbatim.
func (a PaymentButtonAction) Execute(ctx context.Context, identity domain.Identity, call domain.AssistantActionCall) (domain.AssistantActionResult, error) {
	var params paymentButtonInput
	if err := unmarshalActionInput(call.Input, &params); err != nil {
		return domain.AssistantActionResult{}, err
	}

	tx, err := a.initializePayment.Execute(ctx, identity, params.TotalAmount)
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	content, err := encodeContent(tx)
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	return domain.AssistantActionResult{
		Content: content,
		Data:    tx,
		Status:  domain.ActionStatus_Complete,
	}, nil
}
