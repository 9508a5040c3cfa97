package domain

import (
	"errors"
	"time"
)

var (
	// ErrCartEmpty means the shopper must be sent back to the cart.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrInvalidTransition is returned when an operation is not allowed at the current step.
	ErrInvalidTransition = errors.New("operation not allowed at this checkout step")
	// ErrStaleResult is returned for a payment result that no longer matches the session.
	ErrStaleResult = errors.New("payment result is stale")
)

// Step is a checkout stage. Steps are linear and navigable only to adjacent steps.
type Step string

const (
	StepShippingInfo Step = "shipping_info"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// Session is the checkout state machine of one storefront session.
// It is not safe for concurrent use.
type Session struct {
	step     Step
	shipping *ShippingDetails
	outcome  *OrderOutcome
	pending  *Attempt
	action   *PaymentAction

	lastError string
	warning   string
}

// NewSession returns a session at StepShippingInfo.
func NewSession() *Session {
	return &Session{step: StepShippingInfo}
}

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// Shipping returns the stored shipping details, if any.
func (s *Session) Shipping() *ShippingDetails {
	if s.shipping == nil {
		return nil
	}
	d := *s.shipping
	return &d
}

// Outcome returns the order outcome, set only at StepConfirmation.
func (s *Session) Outcome() *OrderOutcome { return s.outcome }

// Pending returns the in-flight payment attempt, if any.
func (s *Session) Pending() *Attempt { return s.pending }

// Reset returns to StepShippingInfo and discards everything.
func (s *Session) Reset() {
	*s = Session{step: StepShippingInfo}
}

// SubmitShipping validates details and advances to StepPayment. On
// validation failure nothing changes.
func (s *Session) SubmitShipping(details ShippingDetails) error {
	if s.step != StepShippingInfo {
		return ErrInvalidTransition
	}
	details = details.Normalize()
	if err := details.Validate(); err != nil {
		return err
	}
	s.shipping = &details
	s.step = StepPayment
	s.lastError = ""
	return nil
}

// Back moves from StepPayment to StepShippingInfo keeping the shipping
// details. Any pending attempt is dropped. It is a no-op at other steps.
func (s *Session) Back() {
	if s.step != StepPayment {
		return
	}
	s.step = StepShippingInfo
	s.pending = nil
	s.action = nil
	s.lastError = ""
	s.warning = ""
}

// BeginAttempt registers a new payment attempt, superseding any pending one.
func (s *Session) BeginAttempt(id string, method Method, now time.Time) (Attempt, error) {
	if s.step != StepPayment || s.shipping == nil {
		return Attempt{}, ErrInvalidTransition
	}
	a := Attempt{ID: id, Method: method, StartedAt: now}
	s.pending = &a
	s.action = nil
	s.lastError = ""
	s.warning = ""
	return a, nil
}

// IsCurrent reports whether attemptID is the pending attempt at StepPayment.
func (s *Session) IsCurrent(attemptID string) bool {
	return s.step == StepPayment && s.pending != nil && s.pending.ID == attemptID
}

// Apply records the outcome of the current attempt. A success stores the
// order outcome and advances to StepConfirmation, reporting completed=true
// exactly once. A pending outcome keeps the attempt open for Resolve. A
// failure keeps StepPayment with a retryable message.
func (s *Session) Apply(attemptID string, outcome PaymentOutcome) (completed bool, err error) {
	if !s.IsCurrent(attemptID) {
		return false, ErrStaleResult
	}

	if outcome.Warning != "" {
		s.warning = outcome.Warning
	}

	switch {
	case outcome.Success:
		s.outcome = &OrderOutcome{Method: outcome.Method, Success: true, Reference: outcome.Reference}
		s.step = StepConfirmation
		s.pending = nil
		s.action = nil
		s.lastError = ""
		return true, nil
	case outcome.Pending:
		if outcome.Reference != "" {
			s.pending.Reference = outcome.Reference
		}
		s.action = outcome.Action
		return false, nil
	default:
		s.pending = nil
		s.action = nil
		s.lastError = outcome.ErrorMessage
		if s.lastError == "" {
			s.lastError = "The payment was not completed. Please try again or choose another method."
		}
		return false, nil
	}
}

// Fail drops the current attempt with a retryable message.
func (s *Session) Fail(attemptID, message string) error {
	if !s.IsCurrent(attemptID) {
		return ErrStaleResult
	}
	s.pending = nil
	s.action = nil
	s.lastError = message
	return nil
}

// View is the checkout state returned to the storefront.
type View struct {
	Step      Step             `json:"step"`
	Shipping  *ShippingDetails `json:"shipping,omitempty"`
	Outcome   *OrderOutcome    `json:"outcome,omitempty"`
	Pending   *Attempt         `json:"pending,omitempty"`
	Action    *PaymentAction   `json:"action,omitempty"`
	LastError string           `json:"lastError,omitempty"`
	Warning   string           `json:"warning,omitempty"`
	Methods   []MethodInfo     `json:"methods,omitempty"`
}

// View snapshots the session.
func (s *Session) View() View {
	v := View{
		Step:      s.step,
		Shipping:  s.Shipping(),
		Outcome:   s.outcome,
		Action:    s.action,
		LastError: s.lastError,
		Warning:   s.warning,
	}
	if s.pending != nil {
		a := *s.pending
		v.Pending = &a
	}
	return v
}
