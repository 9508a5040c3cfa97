package handler

import (
	"errors"
	"net/http"

	"storefront/internal/core/apiclient"
	"storefront/internal/core/logger"
	"storefront/internal/core/server"
	"storefront/internal/core/session"
	"storefront/internal/features/reviews/domain"
	"storefront/internal/features/reviews/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Register mounts the review routes.
func (h *ReviewHandler) Register(router fiber.Router) {
	router.Get("/products/:id/reviews", h.ListReviews)
	router.Post("/products/:id/reviews", h.PostReview)
}

// ListReviews handles GET /products/:id/reviews.
// @Summary List product reviews
// @Tags Reviews
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Summary
// @Failure 502 {object} server.ErrorResponse
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	summary, err := h.service.ListReviews(c.Context(), c.Params("id"))
	if err != nil {
		logger.Get().Error("Failed to list reviews", zap.String("product_id", c.Params("id")), zap.Error(err))
		return server.Error(c, http.StatusBadGateway, "Could not load reviews, please retry")
	}
	return c.Status(http.StatusOK).JSON(summary)
}

// PostReview handles POST /products/:id/reviews.
// @Summary Post a review
// @Description The name is optional when X-User-ID is present.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param X-User-ID header string false "Authenticated user"
// @Param request body domain.Submission true "Review"
// @Success 201
// @Failure 400 {object} server.ErrorResponse
// @Failure 422 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /products/{id}/reviews [post]
func (h *ReviewHandler) PostReview(c *fiber.Ctx) error {
	var sub domain.Submission
	if err := c.BodyParser(&sub); err != nil {
		return server.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	sub.UserID = session.UserID(c)

	err := h.service.PostReview(c.Context(), c.Params("id"), sub)
	if err == nil {
		return c.SendStatus(http.StatusCreated)
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return server.ValidationError(c, "Please complete your name, rating and comment", verr.Fields)
	}

	logger.Get().Error("Failed to post review", zap.String("product_id", c.Params("id")), zap.Error(err))
	return server.Error(c, http.StatusBadGateway, apiclient.MessageOf(err, "Could not send your review, please retry"))
}
