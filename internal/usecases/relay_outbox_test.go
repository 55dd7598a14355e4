package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRelayOutboxImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	newEvent := func(id uuid.UUID, eventType domain.EventType, retryCount int) domain.OutboxEvent {
		return domain.OutboxEvent{
			ID:         id,
			EntityType: domain.OutboxEntityType_Cart,
			EntityID:   "user-1",
			Topic:      domain.OutboxTopic_Orders,
			EventType:  eventType,
			Payload:    []byte(`{"type":"` + string(eventType) + `"}`),
			Status:     domain.OutboxStatus_Pending,
			RetryCount: retryCount,
			MaxRetries: 3,
			CreatedAt:  fixedTime,
		}
	}

	setupUow := func(uow *domain_mocks.MockUnitOfWork) *domain_mocks.MockOutboxRepository {
		outbox := domain_mocks.NewMockOutboxRepository(t)
		uow.EXPECT().Outbox().Return(outbox)
		uow.EXPECT().
			Execute(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
				return fn(uow)
			})
		return outbox
	}

	tests := map[string]struct {
		setExpectations func(uow *domain_mocks.MockUnitOfWork, publisher *domain_mocks.MockEventPublisher)
		expectedErr     error
	}{
		"success-relay-and-delete": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, publisher *domain_mocks.MockEventPublisher) {
				outbox := setupUow(uow)
				oe := newEvent(eventID, domain.EventType_ORDER_PAID, 0)

				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return([]domain.OutboxEvent{oe}, nil)
				publisher.EXPECT().PublishEvent(mock.Anything, oe).Return(nil)
				outbox.EXPECT().DeleteEvent(mock.Anything, eventID).Return(nil)
			},
		},
		"success-relay-multiple-events": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, publisher *domain_mocks.MockEventPublisher) {
				outbox := setupUow(uow)
				events := []domain.OutboxEvent{
					newEvent(eventID, domain.EventType_ORDER_PAID, 0),
					newEvent(uuid.MustParse("323e4567-e89b-12d3-a456-426614174000"), domain.EventType_CART_CLEARED, 0),
				}

				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return(events, nil)
				for _, event := range events {
					publisher.EXPECT().PublishEvent(mock.Anything, event).Return(nil)
					outbox.EXPECT().DeleteEvent(mock.Anything, event.ID).Return(nil)
				}
			},
		},
		"publish-error-retry": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, publisher *domain_mocks.MockEventPublisher) {
				outbox := setupUow(uow)

				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).
					Return([]domain.OutboxEvent{newEvent(eventID, domain.EventType_ORDER_PAID, 0)}, nil)
				publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).Return(errors.New("publish error"))
				outbox.EXPECT().UpdateEvent(mock.Anything, eventID, domain.OutboxStatus_Pending, 1, "publish error").Return(nil)
			},
		},
		"publish-error-max-retries-exceeded": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, publisher *domain_mocks.MockEventPublisher) {
				outbox := setupUow(uow)

				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).
					Return([]domain.OutboxEvent{newEvent(eventID, domain.EventType_ORDER_PAID, 2)}, nil)
				publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).Return(errors.New("publish error"))
				outbox.EXPECT().UpdateEvent(mock.Anything, eventID, domain.OutboxStatus_Failed, 3, "publish error").Return(nil)
			},
		},
		"update-error-is-logged": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, publisher *domain_mocks.MockEventPublisher) {
				outbox := setupUow(uow)

				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).
					Return([]domain.OutboxEvent{newEvent(eventID, domain.EventType_ORDER_PAID, 0)}, nil)
				publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).Return(errors.New("publish error"))
				outbox.EXPECT().UpdateEvent(mock.Anything, eventID, domain.OutboxStatus_Pending, 1, "publish error").
					Return(errors.New("database error"))
			},
		},
		"fetch-pending-events-error": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, publisher *domain_mocks.MockEventPublisher) {
				outbox := setupUow(uow)
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
		"empty-batch": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, publisher *domain_mocks.MockEventPublisher) {
				outbox := setupUow(uow)
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return([]domain.OutboxEvent{}, nil)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			publisher := domain_mocks.NewMockEventPublisher(t)
			tt.setExpectations(uow, publisher)
			logger := zerolog.Nop()

			relay := NewRelayOutboxImpl(uow, publisher, &logger)
			gotErr := relay.Execute(context.Background())

			assert.Equal(t, tt.expectedErr, gotErr)
		})
	}
}

func TestInitRelayOutbox_Initialize(t *testing.T) {
	iro := InitRelayOutbox{}

	ctx, err := iro.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registeredRelay, err := depend.Resolve[RelayOutbox]()
	assert.NoError(t, err)
	assert.NotNil(t, registeredRelay)
}
