package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                 = otel.Meter("usecases")
	LLMTokensUsed         metric.Int64Counter
	AssistantActionCalls  metric.Int64Counter
	AssistantTurnDuration metric.Float64Histogram
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	AssistantActionCalls, err = meter.Int64Counter(
		"assistant_action_calls_total",
		metric.WithDescription("Total assistant action calls by terminal status"),
	)
	if err != nil {
		panic(err)
	}

	AssistantTurnDuration, err = meter.Float64Histogram(
		"assistant_turn_duration_seconds",
		metric.WithDescription("Duration of a streamed chat turn, tool calls included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordAssistantActionCall records one finished action call.
func RecordAssistantActionCall(ctx context.Context, action string, status domain.ActionStatus) {
	AssistantActionCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", action),
		attribute.String("status", string(status)),
	))
}

// RecordAssistantTurnDuration records how long a chat turn took to complete.
func RecordAssistantTurnDuration(ctx context.Context, elapsed time.Duration, actionCycles int) {
	AssistantTurnDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.Int("action_cycles", actionCycles),
	))
}
