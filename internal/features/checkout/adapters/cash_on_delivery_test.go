package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/core/apiclient"
	cart "storefront/internal/features/cart/domain"
	"storefront/internal/features/checkout/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() domain.PaymentRequest {
	lines := []cart.Line{{ProductID: "12", Name: "Taladro", UnitPrice: decimal.NewFromInt(40000), Quantity: 2, AvailableStock: 10}}
	return domain.PaymentRequest{
		Attempt: domain.Attempt{ID: "att-1"},
		Cart:    cart.Snapshot{Lines: lines, Totals: cart.DefaultPricingRules().Price(lines)},
		Shipping: domain.ShippingDetails{
			Name: "Juan", Email: "juan@example.com", Address: "Calle 1", City: "Bogotá",
			Department: "Cundinamarca", Phone: "3100000000",
		},
		UserID: "42",
	}
}

func TestCashOnDelivery_Initiate(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/cash-on-delivery", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"orderId":981,"status":"pending"}}`))
	}))
	defer server.Close()

	strategy := NewCashOnDelivery(apiclient.New("test", server.URL, time.Second))
	outcome, err := strategy.Initiate(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, domain.MethodCashOnDelivery, outcome.Method)
	assert.Equal(t, "981", outcome.Reference)

	lines := got["cart"].([]any)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	assert.Equal(t, float64(12), line["productId"])
	assert.Equal(t, float64(2), line["quantity"])
	assert.Equal(t, "40000", line["price"])

	info := got["customerInfo"].(map[string]any)
	assert.Equal(t, "Juan", info["name"])
	assert.Equal(t, "42", info["userId"])
}

func TestCashOnDelivery_BackendRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Stock insuficiente para Taladro"}`))
	}))
	defer server.Close()

	strategy := NewCashOnDelivery(apiclient.New("test", server.URL, time.Second))
	outcome, err := strategy.Initiate(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, "Stock insuficiente para Taladro", outcome.ErrorMessage)
}

func TestCashOnDelivery_BackendDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	strategy := NewCashOnDelivery(apiclient.New("test", server.URL, time.Second))
	outcome, err := strategy.Initiate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	assert.False(t, outcome.Success)
	assert.Equal(t, cashOnDeliveryFailure, outcome.ErrorMessage)
}

func TestCashOnDeliveryResponse_Reference(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"data":{"orderId":"A-1"}}`, "A-1"},
		{`{"data":{"id":7}}`, "7"},
		{`{"orderId":55}`, "55"},
		{`{"data":null}`, ""},
	}
	for _, tt := range tests {
		var resp cashOnDeliveryResponse
		require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
		assert.Equal(t, tt.want, resp.orderReference(), tt.body)
	}
}
