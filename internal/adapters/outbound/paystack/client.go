// Package paystack implements the payment gateway on top of the Paystack REST API.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "paystack"

type initializeRequest struct {
	Email    string                 `json:"email"`
	Amount   int64                  `json:"amount"`
	Metadata domain.PaymentMetadata `json:"metadata"`
}

type errorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// Client implements domain.PaymentGateway.
type Client struct {
	baseURL string
	secret  string
	http    *http.Client
}

// NewClient creates a new Paystack client.
func NewClient(baseURL, secret string, httpClient *http.Client) Client {
	return Client{
		baseURL: baseURL,
		secret:  secret,
		http:    httpClient,
	}
}

// InitializeTransaction creates a transaction and returns its authorization artifacts verbatim.
func (c Client) InitializeTransaction(ctx context.Context, req domain.PaymentRequest) (domain.PaymentTransaction, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("payment.amount_minor", req.AmountMinor),
	))
	defer span.End()

	if req.AmountMinor <= 0 {
		err := domain.NewValidationErr("amount must be greater than zero")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.PaymentTransaction{}, err
	}

	httpReq, err := c.newPostRequest(spanCtx, "/transaction/initialize", initializeRequest{
		Email:    req.Email,
		Amount:   req.AmountMinor,
		Metadata: req.Metadata,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.PaymentTransaction{}, err
	}

	resp, err := c.http.Do(httpReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.PaymentTransaction{}, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.PaymentTransaction{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := upstreamError(resp.StatusCode, body)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.PaymentTransaction{}, err
	}

	var out domain.PaymentTransaction
	if err := json.Unmarshal(body, &out); telemetry.RecordErrorAndStatus(span, err) {
		return domain.PaymentTransaction{}, fmt.Errorf("unmarshal response: %w", err)
	}
	if !out.Status {
		err := domain.NewUpstreamErr(serviceName, resp.StatusCode, out.Message)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.PaymentTransaction{}, err
	}

	return out, nil
}

// upstreamError unwraps the gateway message from an error body.
func upstreamError(status int, body []byte) error {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err != nil || strings.TrimSpace(er.Message) == "" {
		return domain.NewUpstreamErr(serviceName, status, http.StatusText(status))
	}
	return domain.NewUpstreamErr(serviceName, status, er.Message)
}

func (c Client) newPostRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secret)
	return req, nil
}

// InitPaymentGateway registers the Paystack client as the domain.PaymentGateway.
type InitPaymentGateway struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"PAYSTACK_BASE_URL" default:"https://api.paystack.co"`
	Secret     string       `config:"PAYSTACK_SECRET"`
}

// Initialize registers the payment gateway in the dependency container.
func (i InitPaymentGateway) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.PaymentGateway](NewClient(i.BaseURL, i.Secret, i.HttpClient))
	return ctx, nil
}
