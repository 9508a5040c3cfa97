package ports

import (
	"context"

	"storefront/internal/features/reviews/domain"
)

// ReviewProvider is the secondary port to the reviews backend.
type ReviewProvider interface {
	ListReviews(ctx context.Context, productID string) ([]domain.Review, error)
	PostReview(ctx context.Context, productID string, sub domain.Submission) error
}

// ReviewService is the primary port used by handlers.
type ReviewService interface {
	ListReviews(ctx context.Context, productID string) (domain.Summary, error)
	PostReview(ctx context.Context, productID string, sub domain.Submission) error
}
