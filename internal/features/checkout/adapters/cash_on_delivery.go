package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/core/apiclient"
	cart "storefront/internal/features/cart/domain"
	catalog "storefront/internal/features/catalog/domain"
	"storefront/internal/features/checkout/domain"

	"github.com/shopspring/decimal"
)

const cashOnDeliveryFailure = "Error processing the order."

// CashOnDelivery places the order directly with the backend.
type CashOnDelivery struct {
	api *apiclient.Client
}

// NewCashOnDelivery creates a new CashOnDelivery strategy.
func NewCashOnDelivery(api *apiclient.Client) *CashOnDelivery {
	return &CashOnDelivery{api: api}
}

// orderLine is one cart entry as the backend expects it.
type orderLine struct {
	ProductID catalog.ProductID `json:"productId"`
	Quantity  int               `json:"quantity"`
	Price     decimal.Decimal   `json:"price"`
}

// customerInfo is the shipping record plus the optional user.
type customerInfo struct {
	domain.ShippingDetails
	UserID string `json:"userId,omitempty"`
}

type cashOnDeliveryRequest struct {
	Cart         []orderLine  `json:"cart"`
	CustomerInfo customerInfo `json:"customerInfo"`
}

type cashOnDeliveryResponse struct {
	Data    json.RawMessage `json:"data"`
	OrderID json.RawMessage `json:"orderId"`
}

// Method returns MethodCashOnDelivery.
func (s *CashOnDelivery) Method() domain.Method { return domain.MethodCashOnDelivery }

// Available is always nil; the backend is the only dependency.
func (s *CashOnDelivery) Available() error { return nil }

// Initiate calls POST /api/orders/cash-on-delivery. Backend rejections become
// a failed outcome carrying the backend message; transport failures are
// returned as errors wrapping domain.ErrPaymentFailed.
func (s *CashOnDelivery) Initiate(ctx context.Context, req domain.PaymentRequest) (domain.PaymentOutcome, error) {
	body := cashOnDeliveryRequest{
		Cart:         orderLines(req.Cart.Lines),
		CustomerInfo: customerInfo{ShippingDetails: req.Shipping, UserID: req.UserID},
	}

	var resp cashOnDeliveryResponse
	if err := s.api.Post(ctx, "/api/orders/cash-on-delivery", body, &resp); err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			return domain.PaymentOutcome{
				Success:      false,
				Method:       domain.MethodCashOnDelivery,
				ErrorMessage: apiclient.MessageOf(err, cashOnDeliveryFailure),
			}, nil
		}
		return domain.PaymentOutcome{
			Method:       domain.MethodCashOnDelivery,
			ErrorMessage: apiclient.MessageOf(err, cashOnDeliveryFailure),
		}, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
	}

	return domain.PaymentOutcome{
		Success:   true,
		Method:    domain.MethodCashOnDelivery,
		Reference: resp.orderReference(),
	}, nil
}

func (r cashOnDeliveryResponse) orderReference() string {
	var order struct {
		OrderID json.RawMessage `json:"orderId"`
		ID      json.RawMessage `json:"id"`
	}
	if len(r.Data) > 0 {
		_ = json.Unmarshal(r.Data, &order)
	}
	for _, raw := range []json.RawMessage{r.OrderID, order.OrderID, order.ID} {
		if len(raw) > 0 && string(raw) != "null" {
			return strings.Trim(string(raw), `"`)
		}
	}
	return ""
}

func orderLines(lines []cart.Line) []orderLine {
	out := make([]orderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, orderLine{ProductID: l.ProductID, Quantity: l.Quantity, Price: l.UnitPrice})
	}
	return out
}
