package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/core/session"
	"storefront/internal/features/checkout/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSession = "sess-checkout-1"

// MockCheckoutService is a mock implementation of ports.CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Begin(ctx context.Context, sessionID string) (domain.View, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.View), args.Error(1)
}

func (m *MockCheckoutService) Get(ctx context.Context, sessionID string) (domain.View, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.View), args.Error(1)
}

func (m *MockCheckoutService) SubmitShipping(ctx context.Context, sessionID string, details domain.ShippingDetails) (domain.View, error) {
	args := m.Called(ctx, sessionID, details)
	return args.Get(0).(domain.View), args.Error(1)
}

func (m *MockCheckoutService) Back(ctx context.Context, sessionID string) (domain.View, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.View), args.Error(1)
}

func (m *MockCheckoutService) PaymentMethods() []domain.MethodInfo {
	args := m.Called()
	return args.Get(0).([]domain.MethodInfo)
}

func (m *MockCheckoutService) Pay(ctx context.Context, sessionID, userID string, method domain.Method) (domain.View, error) {
	args := m.Called(ctx, sessionID, userID, method)
	return args.Get(0).(domain.View), args.Error(1)
}

func (m *MockCheckoutService) Resolve(ctx context.Context, sessionID string, method domain.Method, result domain.ProviderResult) (domain.View, error) {
	args := m.Called(ctx, sessionID, method, result)
	return args.Get(0).(domain.View), args.Error(1)
}

func setupApp(svc *MockCheckoutService) *fiber.App {
	app := fiber.New()
	app.Use(session.New())
	NewCheckoutHandler(svc).Register(app)
	return app
}

func request(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(session.Header, testSession)
	return req
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestCheckoutHandler_BeginEmptyCartRedirects(t *testing.T) {
	svc := new(MockCheckoutService)
	svc.On("Begin", mock.Anything, testSession).Return(domain.View{Step: domain.StepShippingInfo}, domain.ErrCartEmpty)

	resp, err := setupApp(svc).Test(request(http.MethodPost, "/checkout", ""))
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var body ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "/cart", body.Redirect)
}

func TestCheckoutHandler_SubmitShipping(t *testing.T) {
	t.Run("advances", func(t *testing.T) {
		svc := new(MockCheckoutService)
		svc.On("SubmitShipping", mock.Anything, testSession, mock.MatchedBy(func(d domain.ShippingDetails) bool {
			return d.Email == "ana@example.com" && d.PostalCode == "110111"
		})).Return(domain.View{Step: domain.StepPayment}, nil)

		body := `{"name":"Ana","email":"ana@example.com","address":"Calle 10","city":"Bogotá","department":"Cundinamarca","postalCode":"110111","phone":"300"}`
		resp, err := setupApp(svc).Test(request(http.MethodPost, "/checkout/shipping", body))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var view domain.View
		decode(t, resp, &view)
		assert.Equal(t, domain.StepPayment, view.Step)
	})

	t.Run("field errors", func(t *testing.T) {
		svc := new(MockCheckoutService)
		svc.On("SubmitShipping", mock.Anything, testSession, mock.Anything).
			Return(domain.View{Step: domain.StepShippingInfo}, &domain.ValidationError{Fields: map[string]string{"email": "email is required"}})

		resp, err := setupApp(svc).Test(request(http.MethodPost, "/checkout/shipping", `{"name":"Ana"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		var body ErrorResponse
		decode(t, resp, &body)
		assert.Equal(t, "email is required", body.Fields["email"])
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(MockCheckoutService)

		resp, err := setupApp(svc).Test(request(http.MethodPost, "/checkout/shipping", `{`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "SubmitShipping", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCheckoutHandler_PayStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"completed", nil, http.StatusOK},
		{"declined", domain.ErrPaymentDeclined, http.StatusPaymentRequired},
		{"failed", fmt.Errorf("%w: timeout", domain.ErrPaymentFailed), http.StatusBadGateway},
		{"not ready", domain.ErrWidgetNotReady, http.StatusServiceUnavailable},
		{"unavailable", domain.ErrMethodUnavailable, http.StatusServiceUnavailable},
		{"unknown", domain.ErrUnknownMethod, http.StatusNotFound},
		{"wrong step", domain.ErrInvalidTransition, http.StatusConflict},
		{"stale", domain.ErrStaleResult, http.StatusConflict},
		{"empty cart", domain.ErrCartEmpty, http.StatusConflict},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCheckoutService)
			view := domain.View{Step: domain.StepPayment, LastError: "Try again"}
			svc.On("Pay", mock.Anything, testSession, "42", domain.MethodCashOnDelivery).Return(view, tt.err)

			req := request(http.MethodPost, "/checkout/payments/cash-on-delivery", "")
			req.Header.Set(session.UserHeader, "42")
			resp, err := setupApp(svc).Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			svc.AssertExpectations(t)
		})
	}
}

func TestCheckoutHandler_DeclinedCarriesState(t *testing.T) {
	svc := new(MockCheckoutService)
	svc.On("Pay", mock.Anything, testSession, "", domain.MethodCashOnDelivery).
		Return(domain.View{Step: domain.StepPayment, LastError: "Stock insuficiente"}, domain.ErrPaymentDeclined)

	resp, err := setupApp(svc).Test(request(http.MethodPost, "/checkout/payments/cash-on-delivery", ""))
	require.NoError(t, err)

	var body ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "Stock insuficiente", body.Message)
	require.NotNil(t, body.Checkout)
	assert.Equal(t, domain.StepPayment, body.Checkout.Step)
}

func TestCheckoutHandler_Resolve(t *testing.T) {
	t.Run("forwards result", func(t *testing.T) {
		svc := new(MockCheckoutService)
		want := domain.ProviderResult{AttemptID: "att-1", Status: "APPROVED", TransactionID: "tx-1"}
		svc.On("Resolve", mock.Anything, testSession, domain.MethodHostedWidget, want).
			Return(domain.View{Step: domain.StepConfirmation}, nil)

		body := `{"attemptId":"att-1","status":"APPROVED","transactionId":"tx-1"}`
		resp, err := setupApp(svc).Test(request(http.MethodPost, "/checkout/payments/wompi/resolve", body))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("requires attempt", func(t *testing.T) {
		svc := new(MockCheckoutService)

		resp, err := setupApp(svc).Test(request(http.MethodPost, "/checkout/payments/wompi/resolve", `{"status":"APPROVED"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestCheckoutHandler_PaymentMethods(t *testing.T) {
	svc := new(MockCheckoutService)
	svc.On("PaymentMethods").Return([]domain.MethodInfo{
		{Method: domain.MethodCashOnDelivery, Available: true},
		{Method: domain.MethodWallet, Available: false, Reason: "not configured"},
	})

	resp, err := setupApp(svc).Test(request(http.MethodGet, "/checkout/payment-methods", ""))
	require.NoError(t, err)

	var methods []domain.MethodInfo
	decode(t, resp, &methods)
	require.Len(t, methods, 2)
	assert.False(t, methods[1].Available)
}
