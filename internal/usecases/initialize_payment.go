package usecases

import (
	"context"
	"math"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitializePayment defines the interface for the InitializePayment use case.
type InitializePayment interface {
	// Execute creates a payment link for the given total in major currency units.
	Execute(ctx context.Context, identity domain.Identity, totalAmount float64) (domain.PaymentTransaction, error)
}

// InitializePaymentImpl is the implementation of the InitializePayment use case.
type InitializePaymentImpl struct {
	gateway domain.PaymentGateway
}

// NewInitializePaymentImpl creates a new instance of InitializePaymentImpl.
func NewInitializePaymentImpl(gateway domain.PaymentGateway) InitializePaymentImpl {
	return InitializePaymentImpl{gateway: gateway}
}

// Execute converts the total to minor units and initializes a gateway transaction
// carrying the caller's user id as metadata.
func (ip InitializePaymentImpl) Execute(ctx context.Context, identity domain.Identity, totalAmount float64) (domain.PaymentTransaction, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(identity.UserID))
	defer span.End()

	if err := requireIdentity(identity); telemetry.RecordErrorAndStatus(span, err) {
		return domain.PaymentTransaction{}, err
	}

	if totalAmount <= 0 || math.IsNaN(totalAmount) || math.IsInf(totalAmount, 0) {
		err := domain.NewValidationErr("total amount must be greater than zero")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.PaymentTransaction{}, err
	}
	if strings.TrimSpace(identity.Email) == "" {
		err := domain.NewValidationErr("an email address is required to initialize a payment")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.PaymentTransaction{}, err
	}

	tx, err := ip.gateway.InitializeTransaction(spanCtx, domain.PaymentRequest{
		Email:       identity.Email,
		AmountMinor: domain.ToMinorUnits(totalAmount),
		Metadata:    domain.PaymentMetadata{UserID: identity.UserID},
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.PaymentTransaction{}, err
	}

	return tx, nil
}

// InitInitializePayment initializes the InitializePayment use case.
type InitInitializePayment struct {
	Gateway domain.PaymentGateway `resolve:""`
}

// Initialize registers the InitializePayment use case.
func (i InitInitializePayment) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[InitializePayment](NewInitializePaymentImpl(i.Gateway))
	return ctx, nil
}
