package ports

import (
	"context"

	cart "storefront/internal/features/cart/domain"
	"storefront/internal/features/checkout/domain"

	"github.com/shopspring/decimal"
)

// PaymentStrategy starts a payment with one provider.
type PaymentStrategy interface {
	Method() domain.Method
	// Available returns nil when the strategy is configured and usable.
	Available() error
	// Initiate starts a payment. Infrastructure failures are returned as
	// errors; provider decisions are reported in the outcome.
	Initiate(ctx context.Context, req domain.PaymentRequest) (domain.PaymentOutcome, error)
}

// Resolver is implemented by two-phase strategies whose result arrives
// out-of-band after Initiate returned a pending outcome.
type Resolver interface {
	Resolve(ctx context.Context, attempt domain.Attempt, result domain.ProviderResult) (domain.PaymentOutcome, error)
}

// CurrencyConverter converts a store amount into a provider currency.
type CurrencyConverter interface {
	Convert(ctx context.Context, amount decimal.Decimal, currency string) (domain.Conversion, error)
}

// RateProvider fetches the server-supplied exchange rate.
type RateProvider interface {
	// FetchRate returns the rate and the server's own fallback rate (zero when absent).
	FetchRate(ctx context.Context) (rate, fallback decimal.Decimal, err error)
}

// Cart is the part of the cart service the checkout depends on.
type Cart interface {
	Snapshot(ctx context.Context, sessionID string) (cart.Snapshot, error)
	Clear(ctx context.Context, sessionID string) (cart.View, error)
}

// CheckoutService is the primary port used by handlers.
type CheckoutService interface {
	Begin(ctx context.Context, sessionID string) (domain.View, error)
	Get(ctx context.Context, sessionID string) (domain.View, error)
	SubmitShipping(ctx context.Context, sessionID string, details domain.ShippingDetails) (domain.View, error)
	Back(ctx context.Context, sessionID string) (domain.View, error)
	PaymentMethods() []domain.MethodInfo
	Pay(ctx context.Context, sessionID, userID string, method domain.Method) (domain.View, error)
	Resolve(ctx context.Context, sessionID string, method domain.Method, result domain.ProviderResult) (domain.View, error)
}
