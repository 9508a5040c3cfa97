package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/logger"
	"storefront/internal/features/checkout/domain"
	"storefront/internal/features/checkout/ports"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const rateLookupTimeout = 5 * time.Second

// RateConverter converts store amounts with the server rate. Concurrent
// lookups share one backend call.
type RateConverter struct {
	rates         ports.RateProvider
	storeCurrency string
	fallback      decimal.Decimal
	group         singleflight.Group
}

// NewRateConverter creates a new RateConverter. fallback is in store
// currency units per provider currency unit.
func NewRateConverter(rates ports.RateProvider, storeCurrency string, fallback float64) *RateConverter {
	return &RateConverter{
		rates:         rates,
		storeCurrency: strings.ToUpper(storeCurrency),
		fallback:      decimal.NewFromFloat(fallback),
	}
}

type rateResult struct {
	rate    decimal.Decimal
	warning string
}

// Convert divides amount by the exchange rate. A failed lookup falls back to
// the backend fallback, then the configured one, and attaches a warning. It
// fails with domain.ErrPaymentFailed only when no positive rate is known.
func (c *RateConverter) Convert(ctx context.Context, amount decimal.Decimal, currency string) (domain.Conversion, error) {
	currency = strings.ToUpper(currency)
	if currency == "" || currency == c.storeCurrency {
		return domain.Conversion{Amount: amount, Currency: c.storeCurrency, Rate: decimal.NewFromInt(1)}, nil
	}

	ch := c.group.DoChan("rate", func() (interface{}, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rateLookupTimeout)
		defer cancel()
		return c.lookup(lookupCtx)
	})

	var res rateResult
	select {
	case r := <-ch:
		if r.Err != nil {
			return domain.Conversion{}, r.Err
		}
		res = r.Val.(rateResult)
	case <-ctx.Done():
		return domain.Conversion{}, ctx.Err()
	}

	return domain.Conversion{
		Amount:   amount.Div(res.rate),
		Currency: currency,
		Rate:     res.rate,
		Warning:  res.warning,
	}, nil
}

func (c *RateConverter) lookup(ctx context.Context) (rateResult, error) {
	rate, serverFallback, err := c.rates.FetchRate(ctx)
	if err == nil && rate.IsPositive() {
		return rateResult{rate: rate}, nil
	}
	if err == nil {
		err = fmt.Errorf("non-positive rate %s", rate)
	}

	fallback := c.fallback
	if serverFallback.IsPositive() {
		fallback = serverFallback
	}
	if !fallback.IsPositive() {
		logger.Get().Error("No usable exchange rate", zap.Error(err))
		return rateResult{}, fmt.Errorf("%w: no exchange rate available: %w", domain.ErrPaymentFailed, err)
	}
	logger.Get().Warn("Using fallback exchange rate", zap.String("rate", fallback.String()), zap.Error(err))

	return rateResult{
		rate: fallback,
		warning: fmt.Sprintf("We could not get today's exchange rate. An approximate rate of %s %s was used, so the charged amount may differ slightly.",
			fallback.StringFixed(0), c.storeCurrency),
	}, nil
}
