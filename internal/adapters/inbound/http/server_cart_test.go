package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain/mocks"
	usecases_mocks "github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFoodAppServer_GetCart(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		cookie         string
		setupMocks     func(*domain_mocks.MockSessionVerifier, *usecases_mocks.MockGetCart)
		expectedStatus int
		expectedBody   *gen.CartResp
		expectedError  *gen.Error
	}{
		"success": {
			cookie: "valid-token",
			setupMocks: func(v *domain_mocks.MockSessionVerifier, uc *usecases_mocks.MockGetCart) {
				v.EXPECT().Verify(mock.Anything, "valid-token").Return(customer, nil).Once()
				uc.EXPECT().Query(mock.Anything, customer).Return(domain.NewCart([]domain.CartItem{
					{ID: 1, UserID: "user-1", Name: "Jollof Rice", Price: 1500, Quantity: 2, CreatedAt: createdAt},
					{ID: 2, UserID: "user-1", Name: "Chicken", Price: 2000, Quantity: 1, CreatedAt: createdAt},
				}), nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: &gen.CartResp{
				Items: []gen.CartItem{
					{Id: 1, Name: "Jollof Rice", Price: 1500, Quantity: 2, CreatedAt: createdAt},
					{Id: 2, Name: "Chicken", Price: 2000, Quantity: 1, CreatedAt: createdAt},
				},
				Total: 5000,
			},
		},
		"empty-cart": {
			cookie: "valid-token",
			setupMocks: func(v *domain_mocks.MockSessionVerifier, uc *usecases_mocks.MockGetCart) {
				v.EXPECT().Verify(mock.Anything, "valid-token").Return(customer, nil).Once()
				uc.EXPECT().Query(mock.Anything, customer).Return(domain.NewCart(nil), nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.CartResp{Items: []gen.CartItem{}},
		},
		"missing-session": {
			setupMocks:     func(v *domain_mocks.MockSessionVerifier, uc *usecases_mocks.MockGetCart) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  &gen.Error{Code: gen.UNAUTHORIZED, Message: "authentication required"},
		},
		"invalid-session": {
			cookie: "expired-token",
			setupMocks: func(v *domain_mocks.MockSessionVerifier, uc *usecases_mocks.MockGetCart) {
				v.EXPECT().Verify(mock.Anything, "expired-token").
					Return(domain.Identity{}, domain.NewUnauthorizedErr("invalid session")).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  &gen.Error{Code: gen.UNAUTHORIZED, Message: "invalid session"},
		},
		"store-error": {
			cookie: "valid-token",
			setupMocks: func(v *domain_mocks.MockSessionVerifier, uc *usecases_mocks.MockGetCart) {
				v.EXPECT().Verify(mock.Anything, "valid-token").Return(customer, nil).Once()
				uc.EXPECT().Query(mock.Anything, customer).Return(domain.Cart{}, errors.New("connection refused")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.Error{Code: gen.INTERNALERROR, Message: "internal server error"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			verifier := domain_mocks.NewMockSessionVerifier(t)
			getCart := usecases_mocks.NewMockGetCart(t)
			tt.setupMocks(verifier, getCart)

			server := FoodAppServer{
				SessionCookieName: "session",
				Logger:            nopLogger(),
				SessionVerifier:   verifier,
				GetCartUseCase:    getCart,
			}

			req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session", Value: tt.cookie})
			}
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var resp gen.CartResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeErrorResp(t, w.Body.Bytes()).Error)
			}
		})
	}
}

func TestFoodAppServer_DeleteCart(t *testing.T) {
	tests := map[string]struct {
		setupMocks      func(*usecases_mocks.MockClearCart)
		expectedStatus  int
		expectedMessage string
		expectedError   *gen.Error
	}{
		"success": {
			setupMocks: func(uc *usecases_mocks.MockClearCart) {
				uc.EXPECT().Execute(mock.Anything, customer).Return(int64(2), nil).Once()
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Cart item deleted",
		},
		"already-empty": {
			setupMocks: func(uc *usecases_mocks.MockClearCart) {
				uc.EXPECT().Execute(mock.Anything, customer).Return(int64(0), nil).Once()
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Cart item deleted",
		},
		"unauthorized": {
			setupMocks: func(uc *usecases_mocks.MockClearCart) {
				uc.EXPECT().Execute(mock.Anything, customer).Return(int64(0), domain.NewUnauthorizedErr("authentication required")).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  &gen.Error{Code: gen.UNAUTHORIZED, Message: "authentication required"},
		},
		"store-error": {
			setupMocks: func(uc *usecases_mocks.MockClearCart) {
				uc.EXPECT().Execute(mock.Anything, customer).Return(int64(0), errors.New("tx aborted")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.Error{Code: gen.INTERNALERROR, Message: "Cannot delete cart item"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clearCart := usecases_mocks.NewMockClearCart(t)
			tt.setupMocks(clearCart)

			server := FoodAppServer{
				Logger:           nopLogger(),
				ClearCartUseCase: clearCart,
			}

			req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
			req = req.WithContext(WithIdentity(req.Context(), customer))
			w := httptest.NewRecorder()

			server.DeleteCart(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMessage != "" {
				var resp gen.MessageResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeErrorResp(t, w.Body.Bytes()).Error)
			}
		})
	}
}
