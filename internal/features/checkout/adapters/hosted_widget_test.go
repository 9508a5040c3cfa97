package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/core/apiclient"
	"storefront/internal/features/checkout/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockConverter is a mock implementation of ports.CurrencyConverter.
type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) Convert(ctx context.Context, amount decimal.Decimal, currency string) (domain.Conversion, error) {
	args := m.Called(ctx, amount, currency)
	return args.Get(0).(domain.Conversion), args.Error(1)
}

func readyWidget(t *testing.T, handler http.HandlerFunc) (*HostedWidget, *MockConverter) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/config" {
			_, _ = w.Write([]byte(`{"wompiPublicKey":"pub_test_1","redirectUrl":"https://shop/pago"}`))
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	api := apiclient.New("test", server.URL, time.Second)
	loader := newLoader(t, server.URL, &fakeProbe{readyAfter: 1}, WidgetConfig{}, 1)
	_, err := loader.Ready(context.Background())
	require.NoError(t, err)

	conv := new(MockConverter)
	s := NewHostedWidget(loader, api, conv, "usd")
	s.newRef = func() string { return "ref-123" }
	return s, conv
}

func TestHostedWidget_NotReadyFailsFast(t *testing.T) {
	server := configServer(t, `{"wompiPublicKey":"pub_1"}`, nil)
	loader := newLoader(t, server.URL, &fakeProbe{readyAfter: 1, delay: time.Second}, WidgetConfig{}, 1)
	s := NewHostedWidget(loader, apiclient.New("test", server.URL, time.Second), new(MockConverter), "USD")

	start := time.Now()
	_, err := s.Initiate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, domain.ErrWidgetNotReady)
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	assert.ErrorIs(t, s.Available(), domain.ErrWidgetNotReady)
}

func TestHostedWidget_UnconfiguredIsUnavailable(t *testing.T) {
	var hits atomic.Int32
	server := configServer(t, `{}`, &hits)
	loader := newLoader(t, server.URL, &fakeProbe{readyAfter: 1}, WidgetConfig{}, 1)
	_, err := loader.Ready(context.Background())
	require.ErrorIs(t, err, domain.ErrMethodUnavailable)
	s := NewHostedWidget(loader, apiclient.New("test", server.URL, time.Second), new(MockConverter), "USD")

	for i := 0; i < 3; i++ {
		err := s.Available()
		assert.ErrorIs(t, err, domain.ErrMethodUnavailable)
		assert.NotErrorIs(t, err, domain.ErrWidgetNotReady)
	}
	_, err = s.Initiate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, domain.ErrMethodUnavailable)

	assert.Equal(t, int32(1), hits.Load())
}

func TestHostedWidget_Initiate(t *testing.T) {
	var got map[string]any
	s, conv := readyWidget(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wompi/temp-order", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})
	require.NoError(t, s.Available())

	req := sampleRequest()
	conv.On("Convert", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(113050)) }), "USD").
		Return(domain.Conversion{Amount: decimal.RequireFromString("28.2625"), Currency: "USD", Rate: decimal.NewFromInt(4000), Warning: "approx"}, nil).Once()

	outcome, err := s.Initiate(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, outcome.Pending)
	assert.False(t, outcome.Success)
	assert.Equal(t, "ref-123", outcome.Reference)
	assert.Equal(t, "approx", outcome.Warning)

	require.NotNil(t, outcome.Action)
	require.NotNil(t, outcome.Action.Widget)
	assert.Equal(t, int64(2826), outcome.Action.Widget.AmountInCents)
	assert.Equal(t, "pub_test_1", outcome.Action.Widget.PublicKey)
	assert.Equal(t, "https://shop/pago", outcome.Action.Widget.RedirectURL)

	assert.Equal(t, "ref-123", got["reference"])
	assert.Equal(t, float64(2826), got["amountInCents"])
}

func TestHostedWidget_TempOrderFails(t *testing.T) {
	s, conv := readyWidget(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	conv.On("Convert", mock.Anything, mock.Anything, "USD").
		Return(domain.Conversion{Amount: decimal.NewFromInt(1), Currency: "USD"}, nil).Once()

	_, err := s.Initiate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
}

func TestHostedWidget_Resolve(t *testing.T) {
	s, _ := readyWidget(t, func(w http.ResponseWriter, r *http.Request) {})
	attempt := domain.Attempt{ID: "a1", Method: domain.MethodHostedWidget, Reference: "ref-123"}

	tests := []struct {
		status  string
		success bool
	}{
		{"APPROVED", true},
		{"approved", true},
		{"DECLINED", false},
		{"VOIDED", false},
		{"ERROR", false},
		{"", false},
		{"PENDING", false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			outcome, err := s.Resolve(context.Background(), attempt, domain.ProviderResult{AttemptID: "a1", Status: tt.status})
			require.NoError(t, err)
			assert.Equal(t, tt.success, outcome.Success)
			assert.Equal(t, "ref-123", outcome.Reference)
			if !tt.success {
				assert.NotEmpty(t, outcome.ErrorMessage)
			}
		})
	}
}
