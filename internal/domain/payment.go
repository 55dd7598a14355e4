package domain

import (
	"context"
	"math"
)

// PaymentEvent_ChargeSuccess is the gateway event sent after a successful charge.
const PaymentEvent_ChargeSuccess = "charge.success"

// ToMinorUnits converts an amount in major currency units (e.g. naira)
// to the gateway's minor units (e.g. kobo).
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// PaymentMetadata links a gateway transaction back to the internal user.
type PaymentMetadata struct {
	UserID string `json:"userId"`
}

// PaymentRequest is the input of a transaction initialization.
type PaymentRequest struct {
	Email       string
	AmountMinor int64
	Metadata    PaymentMetadata
}

// PaymentAuthorization holds the artifacts returned by the gateway.
type PaymentAuthorization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// PaymentTransaction is the gateway response to a transaction initialization.
type PaymentTransaction struct {
	Status  bool                 `json:"status"`
	Message string               `json:"message"`
	Data    PaymentAuthorization `json:"data"`
}

// PaymentGateway initializes transactions with the payment provider.
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, req PaymentRequest) (PaymentTransaction, error)
}

// PaymentWebhookEvent is the payload delivered by the gateway webhook.
type PaymentWebhookEvent struct {
	Event string
	Data  PaymentWebhookData
}

// PaymentWebhookData is the data part of a webhook payload.
type PaymentWebhookData struct {
	Reference string
	Amount    int64
	Metadata  PaymentMetadata
}
