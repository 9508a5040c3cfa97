package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"storefront/internal/core/logger"
	cart "storefront/internal/features/cart/domain"
	"storefront/internal/features/checkout/domain"
	"storefront/internal/features/checkout/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgWidgetNotReady    = "The payment widget is still loading. Please wait a moment or choose another method."
	msgMethodUnavailable = "This payment method is not available right now. Please choose another one."
	msgPaymentFailed     = "We could not reach the payment service. Please try again."
)

// sessionState guards one checkout session.
type sessionState struct {
	mu       sync.Mutex
	session  *domain.Session
	lastSeen time.Time // guarded by the service mutex
}

// CheckoutService sequences shipping, payment and confirmation for every
// storefront session and dispatches payments to the registered strategies.
// Provider calls run outside the session lock; their results are applied
// only if the attempt they belong to is still current.
type CheckoutService struct {
	cart       ports.Cart
	strategies map[domain.Method]ports.PaymentStrategy
	order      []domain.Method
	now        func() time.Time
	newID      func() string

	mu       sync.Mutex
	sessions map[string]*sessionState
}

// NewCheckoutService creates a new CheckoutService. Strategies are offered
// in the given order.
func NewCheckoutService(c ports.Cart, strategies ...ports.PaymentStrategy) *CheckoutService {
	s := &CheckoutService{
		cart:       c,
		strategies: make(map[domain.Method]ports.PaymentStrategy, len(strategies)),
		now:        time.Now,
		newID:      uuid.NewString,
		sessions:   make(map[string]*sessionState),
	}
	for _, st := range strategies {
		if _, dup := s.strategies[st.Method()]; !dup {
			s.order = append(s.order, st.Method())
		}
		s.strategies[st.Method()] = st
	}
	return s
}

// Begin resets the session for a fresh entry into checkout.
func (s *CheckoutService) Begin(ctx context.Context, sessionID string) (domain.View, error) {
	st := s.lock(sessionID)
	defer st.mu.Unlock()

	st.session.Reset()
	if _, err := s.guard(ctx, sessionID, st); err != nil {
		return s.view(st), err
	}
	return s.view(st), nil
}

// Get returns the current state, redirecting out when the cart is empty.
func (s *CheckoutService) Get(ctx context.Context, sessionID string) (domain.View, error) {
	st := s.lock(sessionID)
	defer st.mu.Unlock()

	if _, err := s.guard(ctx, sessionID, st); err != nil {
		return s.view(st), err
	}
	return s.view(st), nil
}

// SubmitShipping stores the shipping details and advances to payment.
func (s *CheckoutService) SubmitShipping(ctx context.Context, sessionID string, details domain.ShippingDetails) (domain.View, error) {
	st := s.lock(sessionID)
	defer st.mu.Unlock()

	if _, err := s.guard(ctx, sessionID, st); err != nil {
		return s.view(st), err
	}
	if err := st.session.SubmitShipping(details); err != nil {
		return s.view(st), err
	}
	return s.view(st), nil
}

// Back returns to the shipping step keeping the entered details.
func (s *CheckoutService) Back(ctx context.Context, sessionID string) (domain.View, error) {
	st := s.lock(sessionID)
	defer st.mu.Unlock()

	if _, err := s.guard(ctx, sessionID, st); err != nil {
		return s.view(st), err
	}
	st.session.Back()
	return s.view(st), nil
}

// PaymentMethods lists every strategy with its availability.
func (s *CheckoutService) PaymentMethods() []domain.MethodInfo {
	out := make([]domain.MethodInfo, 0, len(s.order))
	for _, m := range s.order {
		info := domain.MethodInfo{Method: m, Available: true}
		if err := s.strategies[m].Available(); err != nil {
			info.Available = false
			info.Reason = userMessage(err)
		}
		out = append(out, info)
	}
	return out
}

// Pay starts a payment with method. Synchronous strategies complete or fail
// the session immediately; two-phase strategies leave a pending attempt
// whose action the storefront carries out before calling Resolve.
func (s *CheckoutService) Pay(ctx context.Context, sessionID, userID string, method domain.Method) (domain.View, error) {
	strategy, ok := s.strategies[method]
	if !ok {
		return domain.View{}, fmt.Errorf("%w: %s", domain.ErrUnknownMethod, method)
	}
	log := logger.ForSession("checkout", sessionID).With(zap.String("method", string(method)))

	st := s.lock(sessionID)
	snap, err := s.guard(ctx, sessionID, st)
	if err != nil {
		defer st.mu.Unlock()
		return s.view(st), err
	}
	if st.session.Step() != domain.StepPayment {
		defer st.mu.Unlock()
		return s.view(st), domain.ErrInvalidTransition
	}
	if err := strategy.Available(); err != nil {
		defer st.mu.Unlock()
		v := s.view(st)
		v.LastError = userMessage(err)
		return v, err
	}

	// A one-step payment in flight may already have placed an order.
	if p := st.session.Pending(); p != nil {
		if _, twoPhase := s.strategies[p.Method].(ports.Resolver); !twoPhase {
			defer st.mu.Unlock()
			return s.view(st), fmt.Errorf("%w: %s payment already in progress", domain.ErrInvalidTransition, p.Method)
		}
	}

	attempt, err := st.session.BeginAttempt(s.newID(), method, s.now())
	if err != nil {
		defer st.mu.Unlock()
		return s.view(st), err
	}
	req := domain.PaymentRequest{
		Attempt:  attempt,
		Cart:     snap,
		Shipping: *st.session.Shipping(),
		UserID:   userID,
	}
	st.mu.Unlock()

	outcome, initErr := strategy.Initiate(ctx, req)

	st = s.lock(sessionID)
	defer st.mu.Unlock()

	if initErr != nil {
		log.Warn("Payment initiation failed", zap.String("attempt_id", attempt.ID), zap.Error(initErr))
		msg := outcome.ErrorMessage
		if msg == "" {
			msg = userMessage(initErr)
		}
		if err := st.session.Fail(attempt.ID, msg); err != nil {
			return s.view(st), err
		}
		return s.view(st), initErr
	}

	return s.apply(ctx, sessionID, st, attempt, outcome, log)
}

// Resolve applies a provider result relayed by the storefront. Results for
// an attempt that is no longer pending are discarded with ErrStaleResult.
func (s *CheckoutService) Resolve(ctx context.Context, sessionID string, method domain.Method, result domain.ProviderResult) (domain.View, error) {
	strategy, ok := s.strategies[method]
	if !ok {
		return domain.View{}, fmt.Errorf("%w: %s", domain.ErrUnknownMethod, method)
	}
	resolver, ok := strategy.(ports.Resolver)
	if !ok {
		return domain.View{}, fmt.Errorf("%w: %s has no second phase", domain.ErrInvalidTransition, method)
	}
	log := logger.ForSession("checkout", sessionID).With(zap.String("method", string(method)))

	st := s.lock(sessionID)
	if _, err := s.guard(ctx, sessionID, st); err != nil {
		defer st.mu.Unlock()
		return s.view(st), err
	}
	pending := st.session.Pending()
	if !st.session.IsCurrent(result.AttemptID) || pending.Method != method {
		defer st.mu.Unlock()
		log.Info("Discarding stale payment result", zap.String("attempt_id", result.AttemptID))
		return s.view(st), domain.ErrStaleResult
	}
	attempt := *pending
	st.mu.Unlock()

	outcome, resolveErr := resolver.Resolve(ctx, attempt, result)

	st = s.lock(sessionID)
	defer st.mu.Unlock()

	if resolveErr != nil {
		if errors.Is(resolveErr, domain.ErrStaleResult) {
			return s.view(st), resolveErr
		}
		log.Warn("Payment resolution failed", zap.String("reference", attempt.Reference), zap.Error(resolveErr))
		msg := outcome.ErrorMessage
		if msg == "" {
			msg = userMessage(resolveErr)
		}
		if err := st.session.Fail(attempt.ID, msg); err != nil {
			return s.view(st), err
		}
		return s.view(st), resolveErr
	}

	return s.apply(ctx, sessionID, st, attempt, outcome, log)
}

// EvictIdle drops sessions not touched for maxIdle.
func (s *CheckoutService) EvictIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, st := range s.sessions {
		if !st.mu.TryLock() {
			continue
		}
		if st.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
		st.mu.Unlock()
	}
	return evicted
}

// apply records outcome on the locked session and clears the cart when the
// order completed.
func (s *CheckoutService) apply(ctx context.Context, sessionID string, st *sessionState, attempt domain.Attempt, outcome domain.PaymentOutcome, log *zap.Logger) (domain.View, error) {
	completed, err := st.session.Apply(attempt.ID, outcome)
	if err != nil {
		log.Info("Discarding stale payment outcome", zap.String("attempt_id", attempt.ID))
		return s.view(st), err
	}

	if completed {
		log.Info("Order completed", zap.String("reference", outcome.Reference))
		if _, err := s.cart.Clear(context.WithoutCancel(ctx), sessionID); err != nil {
			log.Error("Failed to clear cart after order", zap.Error(err))
		}
		return s.view(st), nil
	}

	if !outcome.Success && !outcome.Pending {
		log.Info("Payment not successful", zap.String("reference", outcome.Reference), zap.String("reason", outcome.ErrorMessage))
		return s.view(st), domain.ErrPaymentDeclined
	}
	return s.view(st), nil
}

// guard redirects out of checkout when the cart is empty, unless the
// session is showing its confirmation. The session is reset in that case.
func (s *CheckoutService) guard(ctx context.Context, sessionID string, st *sessionState) (cart.Snapshot, error) {
	snap, err := s.cart.Snapshot(ctx, sessionID)
	if err != nil {
		return cart.Snapshot{}, fmt.Errorf("failed to read cart: %w", err)
	}
	if snap.IsEmpty() && st.session.Step() != domain.StepConfirmation {
		st.session.Reset()
		return snap, domain.ErrCartEmpty
	}
	return snap, nil
}

// lock returns the session state locked by the caller.
func (s *CheckoutService) lock(sessionID string) *sessionState {
	st := s.entry(sessionID)
	st.mu.Lock()
	return st
}

// entry looks up or creates the session state. lastSeen is only written
// under s.mu so EvictIdle never drops an entry a caller is about to lock.
func (s *CheckoutService) entry(sessionID string) *sessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		st = &sessionState{session: domain.NewSession()}
		s.sessions[sessionID] = st
	}
	st.lastSeen = s.now()
	return st
}

func (s *CheckoutService) view(st *sessionState) domain.View {
	v := st.session.View()
	if v.Step == domain.StepPayment {
		v.Methods = s.PaymentMethods()
	}
	return v
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMethodUnavailable):
		return msgMethodUnavailable
	case errors.Is(err, domain.ErrWidgetNotReady):
		return msgWidgetNotReady
	default:
		return msgPaymentFailed
	}
}
