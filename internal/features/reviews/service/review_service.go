package service

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/features/reviews/domain"
	"storefront/internal/features/reviews/ports"
)

// ReviewService validates submissions before they reach the backend.
type ReviewService struct {
	provider ports.ReviewProvider
}

// NewReviewService creates a new ReviewService.
func NewReviewService(provider ports.ReviewProvider) *ReviewService {
	return &ReviewService{provider: provider}
}

// ListReviews returns the reviews of a product with their average rating.
func (s *ReviewService) ListReviews(ctx context.Context, productID string) (domain.Summary, error) {
	reviews, err := s.provider.ListReviews(ctx, productID)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("service: %w", err)
	}
	return domain.Summarize(reviews), nil
}

// PostReview validates and forwards a review.
func (s *ReviewService) PostReview(ctx context.Context, productID string, sub domain.Submission) error {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Comment = strings.TrimSpace(sub.Comment)
	if err := sub.Validate(); err != nil {
		return err
	}
	if err := s.provider.PostReview(ctx, productID, sub); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}
