package adapters

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/apiclient"

	"github.com/shopspring/decimal"
)

// BackendRateProvider reads the exchange rate from GET /api/currency/rate.
type BackendRateProvider struct {
	api *apiclient.Client
}

// NewBackendRateProvider creates a new BackendRateProvider.
func NewBackendRateProvider(api *apiclient.Client) *BackendRateProvider {
	return &BackendRateProvider{api: api}
}

type rateResponse struct {
	Success      bool             `json:"success"`
	Rate         *decimal.Decimal `json:"rate"`
	FallbackRate *decimal.Decimal `json:"fallbackRate"`
}

// FetchRate returns the current rate. When the backend reports failure or a
// non-positive rate, an error is returned together with the backend's own
// fallback rate when it sent one.
func (p *BackendRateProvider) FetchRate(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	var resp rateResponse
	if err := p.api.Get(ctx, "/api/currency/rate", &resp); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}

	fallback := decimal.Zero
	if resp.FallbackRate != nil && resp.FallbackRate.IsPositive() {
		fallback = *resp.FallbackRate
	}

	if !resp.Success || resp.Rate == nil || !resp.Rate.IsPositive() {
		return decimal.Zero, fallback, errors.New("backend did not provide a usable exchange rate")
	}
	return *resp.Rate, fallback, nil
}
