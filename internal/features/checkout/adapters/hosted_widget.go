package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/apiclient"
	"storefront/internal/core/logger"
	"storefront/internal/features/checkout/domain"
	"storefront/internal/features/checkout/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Widget transaction statuses reported by the provider callback.
const (
	WidgetStatusApproved = "APPROVED"
	WidgetStatusDeclined = "DECLINED"
	WidgetStatusVoided   = "VOIDED"
	WidgetStatusError    = "ERROR"
)

var widgetStatusMessages = map[string]string{
	WidgetStatusDeclined: "Your payment was declined. Please try another card or payment method.",
	WidgetStatusVoided:   "Your payment was voided. No charge was made.",
	WidgetStatusError:    "The payment provider reported an error. Please try again.",
}

const widgetNotCompleted = "The payment was not completed. You can try again or choose another method."

// HostedWidget pays through the provider's hosted checkout widget. The
// storefront opens the widget with the returned parameters and relays the
// provider callback to Resolve.
type HostedWidget struct {
	loader    *WidgetLoader
	api       *apiclient.Client
	converter ports.CurrencyConverter
	currency  string
	newRef    func() string
}

// NewHostedWidget creates a new HostedWidget strategy.
func NewHostedWidget(loader *WidgetLoader, api *apiclient.Client, converter ports.CurrencyConverter, currency string) *HostedWidget {
	return &HostedWidget{
		loader:    loader,
		api:       api,
		converter: converter,
		currency:  strings.ToUpper(currency),
		newRef:    uuid.NewString,
	}
}

// Method returns MethodHostedWidget.
func (s *HostedWidget) Method() domain.Method { return domain.MethodHostedWidget }

// Available reports whether the widget finished loading. A missing or failed
// load is (re)started in the background, unless the widget is not configured.
func (s *HostedWidget) Available() error {
	if _, err := s.loader.Config(); err != nil {
		if errors.Is(err, domain.ErrMethodUnavailable) {
			return err
		}
		if initErr := s.loader.Init(); initErr != nil {
			return fmt.Errorf("%w: %w", domain.ErrMethodUnavailable, initErr)
		}
		return err
	}
	return nil
}

type tempOrderRequest struct {
	Reference     string       `json:"reference"`
	AmountInCents int64        `json:"amountInCents"`
	Currency      string       `json:"currency"`
	Cart          []orderLine  `json:"cart"`
	CustomerInfo  customerInfo `json:"customerInfo"`
}

// Initiate fails fast with domain.ErrWidgetNotReady when the widget is not
// loaded. Otherwise it converts the total, pre-registers the order by
// reference and returns a pending outcome with the widget parameters.
func (s *HostedWidget) Initiate(ctx context.Context, req domain.PaymentRequest) (domain.PaymentOutcome, error) {
	cfg, err := s.loader.Config()
	if err != nil {
		return domain.PaymentOutcome{Method: domain.MethodHostedWidget}, err
	}

	conv, err := s.converter.Convert(ctx, req.Cart.Totals.Total, s.currency)
	if err != nil {
		return domain.PaymentOutcome{Method: domain.MethodHostedWidget}, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
	}
	cents := conv.Amount.Shift(2).Round(0).IntPart()
	reference := s.newRef()

	body := tempOrderRequest{
		Reference:     reference,
		AmountInCents: cents,
		Currency:      conv.Currency,
		Cart:          orderLines(req.Cart.Lines),
		CustomerInfo:  customerInfo{ShippingDetails: req.Shipping, UserID: req.UserID},
	}
	if err := s.api.Post(ctx, "/api/wompi/temp-order", body, nil); err != nil {
		return domain.PaymentOutcome{
			Method:       domain.MethodHostedWidget,
			ErrorMessage: apiclient.MessageOf(err, "Could not start the payment. Please try again."),
		}, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
	}

	return domain.PaymentOutcome{
		Pending:   true,
		Method:    domain.MethodHostedWidget,
		Reference: reference,
		Warning:   conv.Warning,
		Action: &domain.PaymentAction{Widget: &domain.WidgetParams{
			PublicKey:     cfg.PublicKey,
			Currency:      conv.Currency,
			AmountInCents: cents,
			Reference:     reference,
			RedirectURL:   cfg.RedirectURL,
		}},
	}, nil
}

// Resolve maps the widget callback status. Only APPROVED is a success.
func (s *HostedWidget) Resolve(_ context.Context, attempt domain.Attempt, result domain.ProviderResult) (domain.PaymentOutcome, error) {
	status := strings.ToUpper(strings.TrimSpace(result.Status))

	logger.Get().Info("Hosted widget result",
		zap.String("reference", attempt.Reference),
		zap.String("status", status),
		zap.String("transaction_id", result.TransactionID),
	)

	if status == WidgetStatusApproved {
		return domain.PaymentOutcome{
			Success:   true,
			Method:    domain.MethodHostedWidget,
			Reference: attempt.Reference,
		}, nil
	}

	msg, ok := widgetStatusMessages[status]
	if !ok {
		msg = widgetNotCompleted
	}
	return domain.PaymentOutcome{
		Method:       domain.MethodHostedWidget,
		Reference:    attempt.Reference,
		ErrorMessage: msg,
	}, nil
}
