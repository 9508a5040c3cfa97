package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/core/session"
	"storefront/internal/features/cart/domain"
	catalog "storefront/internal/features/catalog/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSession = "sess-handler-1"

// MockCartService is a mock implementation of ports.CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, sessionID string) (domain.View, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.View), args.Error(1)
}

func (m *MockCartService) AddLine(ctx context.Context, sessionID string, productID catalog.ProductID, quantity int) (domain.View, error) {
	args := m.Called(ctx, sessionID, productID, quantity)
	return args.Get(0).(domain.View), args.Error(1)
}

func (m *MockCartService) RemoveLine(ctx context.Context, sessionID string, productID catalog.ProductID) (domain.View, error) {
	args := m.Called(ctx, sessionID, productID)
	return args.Get(0).(domain.View), args.Error(1)
}

func (m *MockCartService) SetQuantity(ctx context.Context, sessionID string, productID catalog.ProductID, quantity int) (domain.View, error) {
	args := m.Called(ctx, sessionID, productID, quantity)
	return args.Get(0).(domain.View), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context, sessionID string) (domain.View, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.View), args.Error(1)
}

func (m *MockCartService) Snapshot(ctx context.Context, sessionID string) (domain.Snapshot, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.Snapshot), args.Error(1)
}

func setupApp(svc *MockCartService) *fiber.App {
	app := fiber.New()
	app.Use(session.New())
	NewCartHandler(svc).Register(app)
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

func sampleView() domain.View {
	c := domain.NewCart(domain.DefaultPricingRules())
	_ = c.AddLine(catalog.Product{ID: "1", Name: "Taladro", UnitPrice: decimal.NewFromInt(40000), Stock: 10}, 2)
	return c.View()
}

func TestCartHandler_GetCart(t *testing.T) {
	svc := new(MockCartService)
	app := setupApp(svc)
	svc.On("Get", mock.Anything, testSession).Return(sampleView(), nil).Once()

	resp, err := app.Test(request("GET", "/cart", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testSession, resp.Header.Get(session.Header))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	totals := body["totals"].(map[string]any)
	assert.Equal(t, "113050", totals["total"])
	assert.Equal(t, float64(2), body["count"])
}

func TestCartHandler_AddLine(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockCartService)
		app := setupApp(svc)
		svc.On("AddLine", mock.Anything, testSession, catalog.ProductID("1"), 2).Return(sampleView(), nil).Once()

		resp, err := app.Test(request("POST", "/cart/lines", `{"productId": 1, "quantity": 2}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("DefaultsQuantityToOne", func(t *testing.T) {
		svc := new(MockCartService)
		app := setupApp(svc)
		svc.On("AddLine", mock.Anything, testSession, catalog.ProductID("abc"), 1).Return(sampleView(), nil).Once()

		resp, err := app.Test(request("POST", "/cart/lines", `{"productId": "abc"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("MissingProduct", func(t *testing.T) {
		svc := new(MockCartService)
		app := setupApp(svc)

		resp, err := app.Test(request("POST", "/cart/lines", `{"quantity": 2}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	errCases := []struct {
		name   string
		err    error
		status int
	}{
		{"NotFound", catalog.ErrProductNotFound, http.StatusNotFound},
		{"OutOfStock", domain.ErrOutOfStock, http.StatusConflict},
		{"Backend", errors.New("timeout"), http.StatusBadGateway},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockCartService)
			app := setupApp(svc)
			svc.On("AddLine", mock.Anything, testSession, catalog.ProductID("1"), 1).Return(domain.View{}, tc.err).Once()

			resp, err := app.Test(request("POST", "/cart/lines", `{"productId": "1", "quantity": 1}`))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestCartHandler_SetQuantity(t *testing.T) {
	tests := []struct {
		body     string
		expected int
	}{
		{`{"quantity": 3}`, 3},
		{`{"quantity": "4"}`, 4},
		{`{"quantity": 0}`, 0},
		{`{"quantity": -2}`, 0},
		{`{"quantity": 2.5}`, 0},
		{`{"quantity": "abc"}`, 0},
		{`{}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			svc := new(MockCartService)
			app := setupApp(svc)
			svc.On("SetQuantity", mock.Anything, testSession, catalog.ProductID("7"), tt.expected).Return(domain.View{}, nil).Once()

			resp, err := app.Test(request("PUT", "/cart/lines/7", tt.body))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			svc.AssertExpectations(t)
		})
	}
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	svc := new(MockCartService)
	app := setupApp(svc)
	svc.On("RemoveLine", mock.Anything, testSession, catalog.ProductID("7")).Return(domain.View{}, nil).Once()
	svc.On("Clear", mock.Anything, testSession).Return(domain.View{}, nil).Once()

	resp, err := app.Test(request("DELETE", "/cart/lines/7", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(request("DELETE", "/cart", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}
