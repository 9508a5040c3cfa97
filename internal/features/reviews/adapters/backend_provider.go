package adapters

import (
	"context"
	"fmt"
	"net/url"

	"storefront/internal/core/apiclient"
	"storefront/internal/features/reviews/domain"
)

// BackendReviewProvider reads and writes reviews through the REST backend.
type BackendReviewProvider struct {
	api *apiclient.Client
}

// NewBackendReviewProvider creates a new BackendReviewProvider.
func NewBackendReviewProvider(api *apiclient.Client) *BackendReviewProvider {
	return &BackendReviewProvider{api: api}
}

type reviewsResponse struct {
	Reviews []domain.Review `json:"reviews"`
}

// ListReviews calls GET /api/products/:id/reviews.
func (p *BackendReviewProvider) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	var resp reviewsResponse
	if err := p.api.Get(ctx, reviewsPath(productID), &resp); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return resp.Reviews, nil
}

// PostReview calls POST /api/products/:id/reviews.
func (p *BackendReviewProvider) PostReview(ctx context.Context, productID string, sub domain.Submission) error {
	if err := p.api.Post(ctx, reviewsPath(productID), sub, nil); err != nil {
		return fmt.Errorf("failed to post review: %w", err)
	}
	return nil
}

func reviewsPath(productID string) string {
	return "/api/products/" + url.PathEscape(productID) + "/reviews"
}
