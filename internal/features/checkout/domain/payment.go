package domain

import (
	"errors"
	"time"

	cart "storefront/internal/features/cart/domain"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownMethod is returned for a payment method no strategy serves.
	ErrUnknownMethod = errors.New("unknown payment method")
	// ErrMethodUnavailable is returned when a strategy is not configured.
	ErrMethodUnavailable = errors.New("payment method unavailable")
	// ErrWidgetNotReady is returned when the hosted widget has not finished loading.
	ErrWidgetNotReady = errors.New("payment widget is not ready")
	// ErrPaymentFailed wraps network and backend failures during a payment.
	ErrPaymentFailed = errors.New("payment could not be processed")
	// ErrPaymentDeclined is returned when the provider reports a non-successful result.
	ErrPaymentDeclined = errors.New("payment declined")
)

// Method identifies a payment strategy.
type Method string

const (
	MethodCashOnDelivery Method = "cash-on-delivery"
	MethodHostedWidget   Method = "wompi"
	MethodWallet         Method = "paypal"
)

// Attempt is one initiation of a payment. Results that do not carry the
// current attempt ID are stale.
type Attempt struct {
	ID        string    `json:"id"`
	Method    Method    `json:"method"`
	Reference string    `json:"reference,omitempty"`
	StartedAt time.Time `json:"started_at"`
}

// PaymentRequest is what a strategy needs to start a payment.
type PaymentRequest struct {
	Attempt  Attempt
	Cart     cart.Snapshot
	Shipping ShippingDetails
	UserID   string
}

// WidgetParams are handed to the hosted widget in the browser.
type WidgetParams struct {
	PublicKey     string `json:"publicKey"`
	Currency      string `json:"currency"`
	AmountInCents int64  `json:"amountInCents"`
	Reference     string `json:"reference"`
	RedirectURL   string `json:"redirectUrl,omitempty"`
}

// WalletOrder is the wallet order the browser SDK approves.
type WalletOrder struct {
	OrderID    string `json:"orderId"`
	ApproveURL string `json:"approveUrl,omitempty"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
}

// PaymentAction tells the storefront what to do to finish a pending payment.
type PaymentAction struct {
	Widget *WidgetParams `json:"widget,omitempty"`
	Wallet *WalletOrder  `json:"wallet,omitempty"`
}

// PaymentOutcome is the result of Initiate or Resolve.
type PaymentOutcome struct {
	Success bool `json:"success"`
	// Pending means the provider will report back through Resolve.
	Pending      bool           `json:"pending,omitempty"`
	Method       Method         `json:"method"`
	Reference    string         `json:"reference,omitempty"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
	Warning      string         `json:"warning,omitempty"`
	Action       *PaymentAction `json:"action,omitempty"`
}

// ProviderResult is what the storefront relays back from a provider
// callback: a widget status or a wallet approval.
type ProviderResult struct {
	AttemptID     string `json:"attemptId"`
	Status        string `json:"status,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	OrderID       string `json:"orderId,omitempty"`
}

// OrderOutcome is the terminal record shown on the confirmation step.
type OrderOutcome struct {
	Method    Method `json:"method"`
	Success   bool   `json:"success"`
	Reference string `json:"reference,omitempty"`
}

// Conversion is an amount expressed in a provider currency.
type Conversion struct {
	Amount   decimal.Decimal
	Currency string
	Rate     decimal.Decimal
	// Warning is set when a fallback rate was used.
	Warning string
}

// MethodInfo describes a payment method for the selector.
type MethodInfo struct {
	Method    Method `json:"method"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
