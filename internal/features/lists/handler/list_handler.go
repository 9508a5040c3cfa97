package handler

import (
	"errors"
	"net/http"

	"storefront/internal/core/logger"
	"storefront/internal/core/server"
	"storefront/internal/core/session"
	catalog "storefront/internal/features/catalog/domain"
	"storefront/internal/features/lists/domain"
	"storefront/internal/features/lists/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// ListHandler handles HTTP requests for favorites and the compare list.
type ListHandler struct {
	service ports.ListService
}

// NewListHandler creates a new ListHandler.
func NewListHandler(service ports.ListService) *ListHandler {
	return &ListHandler{service: service}
}

// Register mounts the list routes.
func (h *ListHandler) Register(router fiber.Router) {
	router.Get("/favorites", h.GetFavorites)
	router.Post("/favorites/:id", h.ToggleFavorite)
	router.Get("/compare", h.GetCompare)
	router.Post("/compare/:id", h.ToggleCompare)
	router.Delete("/compare", h.ClearCompare)
}

// GetFavorites handles GET /favorites.
// @Summary List favorites
// @Tags Lists
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} domain.View
// @Router /favorites [get]
func (h *ListHandler) GetFavorites(c *fiber.Ctx) error {
	return h.get(c, domain.Favorites)
}

// ToggleFavorite handles POST /favorites/:id.
// @Summary Toggle a favorite
// @Tags Lists
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param id path string true "Product ID"
// @Success 200 {object} domain.View
// @Router /favorites/{id} [post]
func (h *ListHandler) ToggleFavorite(c *fiber.Ctx) error {
	return h.toggle(c, domain.Favorites)
}

// GetCompare handles GET /compare.
// @Summary List compared products
// @Tags Lists
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} domain.View
// @Router /compare [get]
func (h *ListHandler) GetCompare(c *fiber.Ctx) error {
	return h.get(c, domain.Compare)
}

// ToggleCompare handles POST /compare/:id.
// @Summary Toggle a product in the compare list
// @Description At most four products can be compared.
// @Tags Lists
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Param id path string true "Product ID"
// @Success 200 {object} domain.View
// @Failure 409 {object} server.ErrorResponse
// @Router /compare/{id} [post]
func (h *ListHandler) ToggleCompare(c *fiber.Ctx) error {
	return h.toggle(c, domain.Compare)
}

// ClearCompare handles DELETE /compare.
// @Summary Clear the compare list
// @Tags Lists
// @Produce json
// @Param X-Session-ID header string false "Storefront session"
// @Success 200 {object} domain.View
// @Router /compare [delete]
func (h *ListHandler) ClearCompare(c *fiber.Ctx) error {
	view, err := h.service.Clear(c.Context(), domain.Compare, session.ID(c))
	if err != nil {
		return h.internal(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

func (h *ListHandler) get(c *fiber.Ctx, kind domain.Kind) error {
	view, err := h.service.Get(c.Context(), kind, session.ID(c))
	if err != nil {
		return h.internal(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

func (h *ListHandler) toggle(c *fiber.Ctx, kind domain.Kind) error {
	view, err := h.service.Toggle(c.Context(), kind, session.ID(c), catalog.ProductID(utils.CopyString(c.Params("id"))))
	if err != nil {
		if errors.Is(err, domain.ErrCompareFull) {
			return server.Error(c, http.StatusConflict, "You can compare up to 4 products")
		}
		return h.internal(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

func (h *ListHandler) internal(c *fiber.Ctx, err error) error {
	logger.ForSession("lists", session.ID(c)).Error("List operation failed", zap.Error(err))
	return server.Error(c, http.StatusInternalServerError, "Internal server error")
}
