package handler

import (
	"errors"
	"net/http"

	"storefront/internal/core/logger"
	"storefront/internal/core/server"
	"storefront/internal/core/session"
	"storefront/internal/features/checkout/domain"
	"storefront/internal/features/checkout/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// CheckoutHandler handles HTTP requests for the checkout flow.
type CheckoutHandler struct {
	service ports.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// Register mounts the checkout routes.
func (h *CheckoutHandler) Register(router fiber.Router) {
	router.Post("/checkout", h.Begin)
	router.Get("/checkout", h.Get)
	router.Post("/checkout/shipping", h.SubmitShipping)
	router.Post("/checkout/back", h.Back)
	router.Get("/checkout/payment-methods", h.PaymentMethods)
	router.Post("/checkout/payments/:method", h.Pay)
	router.Post("/checkout/payments/:method/resolve", h.Resolve)
}

// ErrorResponse is an error that also carries the checkout state to render.
type ErrorResponse struct {
	server.ErrorResponse
	Checkout *domain.View `json:"checkout,omitempty"`
}

// Begin handles POST /checkout.
// @Summary Enter checkout
// @Description Starts a fresh checkout at the shipping step. Redirects to the cart when it is empty.
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} domain.View
// @Failure 409 {object} server.ErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Begin(c *fiber.Ctx) error {
	view, err := h.service.Begin(c.Context(), session.ID(c))
	return h.respond(c, view, err)
}

// Get handles GET /checkout.
// @Summary Get checkout state
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} domain.View
// @Failure 409 {object} server.ErrorResponse
// @Router /checkout [get]
func (h *CheckoutHandler) Get(c *fiber.Ctx) error {
	view, err := h.service.Get(c.Context(), session.ID(c))
	return h.respond(c, view, err)
}

// SubmitShipping handles POST /checkout/shipping.
// @Summary Submit shipping details
// @Description Validates the details and advances to the payment step.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body domain.ShippingDetails true "Shipping details"
// @Success 200 {object} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Failure 422 {object} server.ErrorResponse
// @Router /checkout/shipping [post]
func (h *CheckoutHandler) SubmitShipping(c *fiber.Ctx) error {
	var details domain.ShippingDetails
	if err := c.BodyParser(&details); err != nil {
		return server.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	view, err := h.service.SubmitShipping(c.Context(), session.ID(c), details)
	return h.respond(c, view, err)
}

// Back handles POST /checkout/back.
// @Summary Return to shipping
// @Description Leaves the payment step keeping the shipping details. Any pending payment is abandoned.
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} domain.View
// @Failure 409 {object} server.ErrorResponse
// @Router /checkout/back [post]
func (h *CheckoutHandler) Back(c *fiber.Ctx) error {
	view, err := h.service.Back(c.Context(), session.ID(c))
	return h.respond(c, view, err)
}

// PaymentMethods handles GET /checkout/payment-methods.
// @Summary List payment methods
// @Tags Checkout
// @Produce json
// @Success 200 {array} domain.MethodInfo
// @Router /checkout/payment-methods [get]
func (h *CheckoutHandler) PaymentMethods(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.PaymentMethods())
}

// Pay handles POST /checkout/payments/:method.
// @Summary Pay with a method
// @Description Cash on delivery completes immediately. Widget and wallet payments return a pending attempt with the action to perform.
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param X-User-ID header string false "Signed-in user"
// @Param method path string true "cash-on-delivery, wompi or paypal"
// @Success 200 {object} domain.View
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /checkout/payments/{method} [post]
func (h *CheckoutHandler) Pay(c *fiber.Ctx) error {
	view, err := h.service.Pay(c.Context(), session.ID(c), session.UserID(c), method(c))
	return h.respond(c, view, err)
}

// Resolve handles POST /checkout/payments/:method/resolve.
// @Summary Relay a provider result
// @Description Applies the widget or wallet result for the pending attempt. Results for other attempts are rejected.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param method path string true "wompi or paypal"
// @Param request body domain.ProviderResult true "Provider result"
// @Success 200 {object} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /checkout/payments/{method}/resolve [post]
func (h *CheckoutHandler) Resolve(c *fiber.Ctx) error {
	var result domain.ProviderResult
	if err := c.BodyParser(&result); err != nil {
		return server.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if result.AttemptID == "" {
		return server.ValidationError(c, "Validation failed", map[string]string{"attemptId": "attemptId is required"})
	}
	view, err := h.service.Resolve(c.Context(), session.ID(c), method(c), result)
	return h.respond(c, view, err)
}

// method copies the path parameter; it is kept in the pending attempt.
func method(c *fiber.Ctx) domain.Method {
	return domain.Method(utils.CopyString(c.Params("method")))
}

func (h *CheckoutHandler) respond(c *fiber.Ctx, view domain.View, err error) error {
	if err == nil {
		return c.Status(http.StatusOK).JSON(view)
	}

	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrCartEmpty):
		return server.Redirect(c, "Your cart is empty", "/cart")
	case errors.As(err, &verr):
		return server.ValidationError(c, "Validation failed", verr.Fields)
	case errors.Is(err, domain.ErrUnknownMethod):
		return server.Error(c, http.StatusNotFound, "Unknown payment method")
	case errors.Is(err, domain.ErrStaleResult):
		return h.withView(c, http.StatusConflict, "This payment is no longer current", view)
	case errors.Is(err, domain.ErrInvalidTransition):
		return h.withView(c, http.StatusConflict, "Not allowed at this checkout step", view)
	case errors.Is(err, domain.ErrPaymentDeclined):
		return h.withView(c, http.StatusPaymentRequired, view.LastError, view)
	case errors.Is(err, domain.ErrWidgetNotReady), errors.Is(err, domain.ErrMethodUnavailable):
		return h.withView(c, http.StatusServiceUnavailable, view.LastError, view)
	case errors.Is(err, domain.ErrPaymentFailed):
		return h.withView(c, http.StatusBadGateway, view.LastError, view)
	default:
		logger.ForSession("checkout", session.ID(c)).Error("Checkout operation failed", zap.Error(err))
		return server.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *CheckoutHandler) withView(c *fiber.Ctx, status int, message string, view domain.View) error {
	return c.Status(status).JSON(ErrorResponse{
		ErrorResponse: server.ErrorResponse{Message: message, RayID: server.RayID(c)},
		Checkout:      &view,
	})
}
