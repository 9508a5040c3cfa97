package adapters

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"storefront/internal/core/apiclient"
	"storefront/internal/core/logger"
	"storefront/internal/features/checkout/domain"
	"storefront/internal/features/checkout/ports"

	"go.uber.org/zap"
)

const walletStatusCompleted = "COMPLETED"

// WalletOptions configures the wallet strategy.
type WalletOptions struct {
	ClientID     string
	ClientSecret string
	Currency     string
}

// Wallet pays through the wallet's orders API: Initiate creates an order the
// shopper approves in the wallet UI, Resolve captures it.
type Wallet struct {
	api       *apiclient.Client
	converter ports.CurrencyConverter
	opts      WalletOptions
	now       func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

// NewWallet creates a new Wallet strategy.
func NewWallet(api *apiclient.Client, converter ports.CurrencyConverter, opts WalletOptions) *Wallet {
	opts.Currency = strings.ToUpper(opts.Currency)
	return &Wallet{api: api, converter: converter, opts: opts, now: time.Now}
}

// Method returns MethodWallet.
func (s *Wallet) Method() domain.Method { return domain.MethodWallet }

// Available requires both client credentials.
func (s *Wallet) Available() error {
	if s.opts.ClientID == "" || s.opts.ClientSecret == "" {
		return fmt.Errorf("%w: wallet credentials are not configured", domain.ErrMethodUnavailable)
	}
	return nil
}

type walletAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type walletPurchaseUnit struct {
	ReferenceID string       `json:"reference_id,omitempty"`
	Amount      walletAmount `json:"amount"`
}

type walletOrderRequest struct {
	Intent        string               `json:"intent"`
	PurchaseUnits []walletPurchaseUnit `json:"purchase_units"`
}

type walletLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type walletOrderResponse struct {
	ID            string       `json:"id"`
	Status        string       `json:"status"`
	Links         []walletLink `json:"links"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

// Initiate converts the total and creates a wallet order.
func (s *Wallet) Initiate(ctx context.Context, req domain.PaymentRequest) (domain.PaymentOutcome, error) {
	if err := s.Available(); err != nil {
		return domain.PaymentOutcome{Method: domain.MethodWallet}, err
	}

	conv, err := s.converter.Convert(ctx, req.Cart.Totals.Total, s.opts.Currency)
	if err != nil {
		return domain.PaymentOutcome{Method: domain.MethodWallet}, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
	}
	amount := conv.Amount.StringFixed(2)

	body := walletOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []walletPurchaseUnit{{
			ReferenceID: req.Attempt.ID,
			Amount:      walletAmount{CurrencyCode: conv.Currency, Value: amount},
		}},
	}

	var order walletOrderResponse
	if err := s.authorized(ctx, http.MethodPost, "/v2/checkout/orders", body, &order); err != nil {
		return domain.PaymentOutcome{
			Method:       domain.MethodWallet,
			ErrorMessage: "Could not start the wallet payment. Please try again.",
		}, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
	}

	return domain.PaymentOutcome{
		Pending:   true,
		Method:    domain.MethodWallet,
		Reference: order.ID,
		Warning:   conv.Warning,
		Action: &domain.PaymentAction{Wallet: &domain.WalletOrder{
			OrderID:    order.ID,
			ApproveURL: order.link("approve"),
			Amount:     amount,
			Currency:   conv.Currency,
		}},
	}, nil
}

// Resolve captures the approved order. Only a COMPLETED capture is a success.
func (s *Wallet) Resolve(ctx context.Context, attempt domain.Attempt, result domain.ProviderResult) (domain.PaymentOutcome, error) {
	if result.OrderID != "" && result.OrderID != attempt.Reference {
		return domain.PaymentOutcome{}, fmt.Errorf("%w: wallet order %s does not match %s", domain.ErrStaleResult, result.OrderID, attempt.Reference)
	}

	var capture walletOrderResponse
	path := "/v2/checkout/orders/" + url.PathEscape(attempt.Reference) + "/capture"
	if err := s.authorized(ctx, http.MethodPost, path, struct{}{}, &capture); err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			return domain.PaymentOutcome{
				Method:       domain.MethodWallet,
				Reference:    attempt.Reference,
				ErrorMessage: apiclient.MessageOf(err, "The wallet payment could not be captured."),
			}, nil
		}
		return domain.PaymentOutcome{Method: domain.MethodWallet}, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
	}

	logger.Get().Info("Wallet capture", zap.String("reference", capture.ID), zap.String("status", capture.Status))

	if capture.Status != walletStatusCompleted {
		return domain.PaymentOutcome{
			Method:       domain.MethodWallet,
			Reference:    attempt.Reference,
			ErrorMessage: "The wallet payment was not completed. Please try again.",
		}, nil
	}

	reference := capture.ID
	if len(capture.PurchaseUnits) > 0 && len(capture.PurchaseUnits[0].Payments.Captures) > 0 {
		reference = capture.PurchaseUnits[0].Payments.Captures[0].ID
	}
	return domain.PaymentOutcome{Success: true, Method: domain.MethodWallet, Reference: reference}, nil
}

func (o walletOrderResponse) link(rel string) string {
	for _, l := range o.Links {
		if l.Rel == rel || (rel == "approve" && l.Rel == "payer-action") {
			return l.Href
		}
	}
	return ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (s *Wallet) authorized(ctx context.Context, method, path string, body, out any) error {
	token, err := s.accessToken(ctx)
	if err != nil {
		return err
	}
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	return s.api.Do(ctx, method, path, headers, body, out)
}

// accessToken returns a cached client-credentials token, refreshing it a
// minute before expiry.
func (s *Wallet) accessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expires) {
		return s.token, nil
	}

	headers := http.Header{}
	headers.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(s.opts.ClientID+":"+s.opts.ClientSecret)))
	headers.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp tokenResponse
	if err := s.api.Do(ctx, http.MethodPost, "/v1/oauth2/token", headers, []byte("grant_type=client_credentials"), &resp); err != nil {
		return "", fmt.Errorf("failed to obtain wallet token: %w", err)
	}
	if resp.AccessToken == "" {
		return "", errors.New("wallet token response had no access_token")
	}

	s.token = resp.AccessToken
	s.expires = s.now().Add(time.Duration(resp.ExpiresIn)*time.Second - time.Minute)
	return s.token, nil
}
