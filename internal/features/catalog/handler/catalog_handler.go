package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/core/logger"
	"storefront/internal/core/server"
	"storefront/internal/features/catalog/domain"
	"storefront/internal/features/catalog/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for products.
type CatalogHandler struct {
	service ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Register mounts the catalog routes.
func (h *CatalogHandler) Register(router fiber.Router) {
	router.Get("/products", h.ListProducts)
	router.Get("/products/:id", h.GetProduct)
}

// ListProducts handles GET /products.
// @Summary List products
// @Description Returns the catalog filtered by search term, brand, price range and minimum rating.
// @Tags Catalog
// @Produce json
// @Param search query string false "Matches name or brand"
// @Param category query string false "Brand, or 'all'"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Param rating query number false "Minimum average rating"
// @Success 200 {object} domain.Listing
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return server.Error(c, http.StatusBadRequest, err.Error())
	}

	listing, err := h.service.ListProducts(c.Context(), filter)
	if err != nil {
		logger.Get().Error("Failed to list products", zap.String("ray_id", server.RayID(c)), zap.Error(err))
		return server.Error(c, http.StatusBadGateway, "Could not load products, please retry")
	}

	return c.Status(http.StatusOK).JSON(listing)
}

// GetProduct handles GET /products/:id.
// @Summary Get a product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id := domain.ProductID(c.Params("id"))

	product, err := h.service.GetProduct(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return server.Error(c, http.StatusNotFound, "Product not found")
		}
		logger.Get().Error("Failed to get product", zap.String("product_id", string(id)), zap.Error(err))
		return server.Error(c, http.StatusBadGateway, "Could not load product, please retry")
	}

	return c.Status(http.StatusOK).JSON(product)
}

func parseFilter(c *fiber.Ctx) (domain.Filter, error) {
	filter := domain.Filter{
		Search:   c.Query("search"),
		Category: c.Query("category", domain.AllCategories),
	}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, errors.New("minPrice must be a number")
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, errors.New("maxPrice must be a number")
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errors.New("rating must be a number")
		}
		filter.MinRating = v
	}

	return filter, nil
}
