package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
	"github.com/itsmzaid/OLS-Backend/pkg/domain/service"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{service.ErrUnknownService, http.StatusBadRequest},
		{model.ErrInvalidOrderStatus, http.StatusBadRequest},
		{model.ErrInvalidCredentials, http.StatusUnauthorized},
		{model.ErrInvalidRefreshToken, http.StatusUnauthorized},
		{model.ErrInvalidBearerToken, http.StatusUnauthorized},
		{model.ErrOrderAccessDenied, http.StatusForbidden},
		{service.ErrMissingUserID, http.StatusForbidden},
		{model.ErrServiceNotFound, http.StatusNotFound},
		{model.ErrItemNotFound, http.StatusNotFound},
		{model.ErrNoItemsFound, http.StatusNotFound},
		{model.ErrOrderNotFound, http.StatusNotFound},
		{model.ErrNoOrdersFound, http.StatusNotFound},
		{model.ErrNoPendingOrder, http.StatusNotFound},
		{model.ErrUserNotFound, http.StatusNotFound},
		{model.ErrServiceNameTaken, http.StatusConflict},
		{model.ErrItemExists, http.StatusConflict},
		{service.ErrOrderCreateFailed, http.StatusInternalServerError},
		{service.ErrOrderFetchFailed, http.StatusInternalServerError},
		{service.ErrRegistrationFailed, http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, statusOf(c.err), "error %q", c.err)
	}
}

type stubProvider struct {
	model.IdentityProvider
}

func (stubProvider) VerifyToken(_ context.Context, idToken string) (*model.AuthToken, error) {
	if idToken != "valid-token" {
		return nil, model.ErrInvalidBearerToken
	}
	return &model.AuthToken{UID: "uid-1"}, nil
}

func TestAuthMiddleware(t *testing.T) {
	var seenUID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUID = callerID(r)
		w.WriteHeader(http.StatusNoContent)
	})
	handler := authMiddleware(stubProvider{})(next)

	t.Run("Missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid token resolves caller", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "uid-1", seenUID)
	})
}

type stubOrders struct {
	service.OrderService
}

func (stubOrders) GetPendingOrder(_ context.Context, userID string) (*model.Order, error) {
	return nil, model.ErrNoPendingOrder
}

func (stubOrders) CreateOrder(_ context.Context, userID string, _ service.CreateOrderInput) (*service.CreateOrderResult, error) {
	return &service.CreateOrderResult{OrderID: "order-1", OrderNumber: 7}, nil
}

func TestRouterOrders(t *testing.T) {
	router := Router(NewHandler(nil, nil, stubOrders{}, nil, stubProvider{}))

	t.Run("Auth required", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/pending", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Pending maps to 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders/pending", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Create order", func(t *testing.T) {
		body := `{
			"userEmail": "user@example.com",
			"userName": "John Doe",
			"userPhoneNo": "+923001234567",
			"address": "123 Main Street",
			"paymentMethod": "Cash on Delivery",
			"pickupDate": "2025-03-10",
			"pickupTime": "14:30",
			"orderItems": [{"itemName": "hoodie", "serviceName": "wash", "quantity": 2, "price": 500}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"orderId":"order-1","orderNumber":7}`, rec.Body.String())
	})

	t.Run("Create order rejects missing fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"userEmail":"user@example.com"}`))
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
