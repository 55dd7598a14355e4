package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const testProjectID = "foodapp-test"

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// ordersEmulator is an in-memory Pub/Sub with one orders topic and subscription.
type ordersEmulator struct {
	client         *pubsubV2.Client
	topicName      string
	subscriptionID string
}

func newOrdersEmulator(t *testing.T, ctx context.Context, name string) ordersEmulator {
	t.Helper()

	server := pstest.NewServer()
	t.Cleanup(func() { server.Close() }) //nolint:errcheck

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() }) //nolint:errcheck

	client, err := pubsubV2.NewClient(ctx, testProjectID, option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() }) //nolint:errcheck

	emulator := ordersEmulator{
		client:         client,
		topicName:      fmt.Sprintf("projects/%s/topics/orders-%s", testProjectID, name),
		subscriptionID: "order-events-" + name,
	}

	_, err = client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: emulator.topicName})
	require.NoError(t, err)

	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  fmt.Sprintf("projects/%s/subscriptions/%s", testProjectID, emulator.subscriptionID),
		Topic: emulator.topicName,
	})
	require.NoError(t, err)

	return emulator
}

// publish sends raw payloads and waits until every one is acknowledged by the server.
func (e ordersEmulator) publish(ctx context.Context, payloads ...[]byte) error {
	publisher := e.client.Publisher(e.topicName)
	defer publisher.Stop()

	for _, payload := range payloads {
		msg := &pubsubV2.Message{Data: payload}
		var event domain.OrderEvent
		if json.Unmarshal(payload, &event) == nil && event.Type != "" {
			msg.Attributes = map[string]string{"event_type": string(event.Type)}
		}
		if _, err := publisher.Publish(ctx, msg).Get(ctx); err != nil {
			return err
		}
	}
	return nil
}

// orderEventPayload encodes an event the way the outbox stores it.
func orderEventPayload(t *testing.T, event domain.OrderEvent) []byte {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return data
}

// run starts the runnable in the background. The returned channel is closed when Run returns.
func run(t *testing.T, ctx context.Context, runnable symbiont.Runnable) (context.CancelFunc, <-chan struct{}) {
	t.Helper()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := runnable.Run(runCtx); err != nil {
			t.Errorf("runnable returned an error: %v", err)
		}
	}()

	return cancel, done
}

// waitRunnableStop fails the test if the runnable does not return promptly.
func waitRunnableStop(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runnable did not shut down in time")
	}
}

// waitForBatchSignals blocks until the worker reports count processed batches.
func waitForBatchSignals(t *testing.T, signals <-chan struct{}, count int, timeout time.Duration) {
	t.Helper()

	deadline := time.After(timeout)
	for got := 0; got < count; got++ {
		select {
		case <-signals:
		case <-deadline:
			t.Fatalf("timeout waiting for batches; got %d, expected %d", got, count)
		}
	}
}
