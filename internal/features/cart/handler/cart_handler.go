package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/core/logger"
	"storefront/internal/core/server"
	"storefront/internal/core/session"
	"storefront/internal/features/cart/domain"
	"storefront/internal/features/cart/ports"
	catalog "storefront/internal/features/catalog/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct {
	service ports.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Register mounts the cart routes.
func (h *CartHandler) Register(router fiber.Router) {
	router.Get("/cart", h.GetCart)
	router.Post("/cart/lines", h.AddLine)
	router.Put("/cart/lines/:id", h.SetQuantity)
	router.Delete("/cart/lines/:id", h.RemoveLine)
	router.Delete("/cart", h.ClearCart)
}

// AddLineRequest is the body of POST /cart/lines.
type AddLineRequest struct {
	ProductID catalog.ProductID `json:"productId"`
	Quantity  int               `json:"quantity"`
}

// SetQuantityRequest is the body of PUT /cart/lines/:id. Any value that is not
// a positive integer removes the line.
type SetQuantityRequest struct {
	Quantity json.RawMessage `json:"quantity" swaggertype:"integer"`
}

// GetCart handles GET /cart.
// @Summary Get the cart
// @Description Returns the session cart lines with subtotal, shipping fee, tax and total.
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} domain.View
// @Router /cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	view, err := h.service.Get(c.Context(), session.ID(c))
	if err != nil {
		return h.internal(c, "get", err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// AddLine handles POST /cart/lines.
// @Summary Add a product to the cart
// @Description Merges the quantity into an existing line. Quantities are clamped to stock.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param request body AddLineRequest true "Product and quantity"
// @Success 200 {object} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /cart/lines [post]
func (h *CartHandler) AddLine(c *fiber.Ctx) error {
	var req AddLineRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.ProductID == "" {
		return server.ValidationError(c, "Validation failed", map[string]string{"productId": "productId is required"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	view, err := h.service.AddLine(c.Context(), session.ID(c), req.ProductID, req.Quantity)
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(view)
	case errors.Is(err, catalog.ErrProductNotFound):
		return server.Error(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrOutOfStock):
		return server.Error(c, http.StatusConflict, "Product is out of stock")
	default:
		logger.ForSession("cart", session.ID(c)).Error("Failed to add line",
			zap.String("product_id", string(req.ProductID)), zap.Error(err))
		return server.Error(c, http.StatusBadGateway, "Could not add the product, please retry")
	}
}

// SetQuantity handles PUT /cart/lines/:id.
// @Summary Update a line quantity
// @Description Sets the quantity, clamped to stock. A quantity below 1 removes the line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param id path string true "Product ID"
// @Param request body SetQuantityRequest true "New quantity"
// @Success 200 {object} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Router /cart/lines/{id} [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var req SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	view, err := h.service.SetQuantity(c.Context(), session.ID(c), catalog.ProductID(utils.CopyString(c.Params("id"))), parseQuantity(req.Quantity))
	if err != nil {
		return h.internal(c, "set quantity", err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// RemoveLine handles DELETE /cart/lines/:id.
// @Summary Remove a line
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param id path string true "Product ID"
// @Success 200 {object} domain.View
// @Router /cart/lines/{id} [delete]
func (h *CartHandler) RemoveLine(c *fiber.Ctx) error {
	view, err := h.service.RemoveLine(c.Context(), session.ID(c), catalog.ProductID(utils.CopyString(c.Params("id"))))
	if err != nil {
		return h.internal(c, "remove line", err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// ClearCart handles DELETE /cart.
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} domain.View
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	view, err := h.service.Clear(c.Context(), session.ID(c))
	if err != nil {
		return h.internal(c, "clear", err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

func (h *CartHandler) internal(c *fiber.Ctx, op string, err error) error {
	logger.ForSession("cart", session.ID(c)).Error("Cart operation failed", zap.String("op", op), zap.Error(err))
	return server.Error(c, http.StatusInternalServerError, "Internal server error")
}

// parseQuantity accepts a JSON number or numeric string. Anything that is not
// a positive integer yields 0.
func parseQuantity(raw json.RawMessage) int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 1 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}
