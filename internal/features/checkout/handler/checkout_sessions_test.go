package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/core/session"
	cart "storefront/internal/features/cart/domain"
	"storefront/internal/features/checkout/domain"
	"storefront/internal/features/checkout/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCart returns the same one-line cart for every session.
type stubCart struct{}

func (stubCart) Snapshot(_ context.Context, _ string) (cart.Snapshot, error) {
	lines := []cart.Line{{
		ProductID:      "1",
		Name:           "Taladro",
		UnitPrice:      decimal.NewFromInt(40000),
		Quantity:       1,
		AvailableStock: 5,
	}}
	return cart.Snapshot{Lines: lines, Totals: cart.DefaultPricingRules().Price(lines)}, nil
}

func (stubCart) Clear(_ context.Context, _ string) (cart.View, error) {
	return cart.View{}, nil
}

func sessionRequest(t *testing.T, app *fiber.App, method, target, sessionID, body string, extra map[string]string) domain.View {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range extra {
		req.Header.Set(k, v)
	}
	req.Header.Set(session.Header, sessionID)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, "%s %s", method, target)
	var view domain.View
	decode(t, resp, &view)
	return view
}

func TestCheckoutHandler_InterleavedSessionsKeepState(t *testing.T) {
	app := fiber.New()
	app.Use(session.New())
	NewCheckoutHandler(service.NewCheckoutService(stubCart{})).Register(app)

	const (
		sessA = "sess-aaaaaaaa"
		sessB = "sess-bbbbbbbbbbbbbbbbbbbb"
	)
	shipping := `{"name":"Ana","email":"ana@example.com","address":"Calle 10","city":"Bogotá","department":"Cundinamarca","phone":"3001234567"}`

	sessionRequest(t, app, http.MethodPost, "/checkout", sessA, "", nil)
	view := sessionRequest(t, app, http.MethodPost, "/checkout/shipping", sessA, shipping, nil)
	require.Equal(t, domain.StepPayment, view.Step)

	noisy := map[string]string{
		"Accept-Language": "es-CO,es;q=0.9,en;q=0.8",
		"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64)",
	}
	sessionRequest(t, app, http.MethodPost, "/checkout", sessB, "", noisy)
	sessionRequest(t, app, http.MethodGet, "/checkout?step=1", sessB, "", noisy)

	view = sessionRequest(t, app, http.MethodGet, "/checkout", sessA, "", map[string]string{"X-Request-ID": "r-1"})
	assert.Equal(t, domain.StepPayment, view.Step)
	require.NotNil(t, view.Shipping)
	assert.Equal(t, "ana@example.com", view.Shipping.Email)

	view = sessionRequest(t, app, http.MethodGet, "/checkout", sessB, "", nil)
	assert.Equal(t, domain.StepShippingInfo, view.Step)
}
