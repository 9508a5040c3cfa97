package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidReview is returned when a submitted review fails validation.
var ErrInvalidReview = errors.New("invalid review")

// Review is a published product review as served by the backend.
type Review struct {
	ID        int       `json:"ID_Reseña"`
	ProductID string    `json:"ID_Producto,omitempty"`
	Rating    int       `json:"Calificacion"`
	Author    string    `json:"Nombre_Usuario"`
	Comment   string    `json:"Comentario"`
	CreatedAt time.Time `json:"Fecha_Reseña"`
}

// Submission is a new review as posted by a shopper.
type Submission struct {
	UserID  string `json:"userId,omitempty"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ValidationError lists the offending fields of a Submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid review"
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidReview
}

// Validate checks the rating range and required text. A name is only
// required for anonymous shoppers.
func (s *Submission) Validate() error {
	fields := map[string]string{}

	if s.Rating < 1 || s.Rating > 5 {
		fields["rating"] = "rating must be between 1 and 5"
	}
	if strings.TrimSpace(s.Comment) == "" {
		fields["comment"] = "comment is required"
	}
	if s.UserID == "" && strings.TrimSpace(s.Name) == "" {
		fields["name"] = "name is required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Summary aggregates the reviews of a product.
type Summary struct {
	Reviews []Review `json:"reviews"`
	Count   int      `json:"count"`
	Average float64  `json:"average"`
}

// Summarize computes the count and average rating of reviews.
func Summarize(reviews []Review) Summary {
	if reviews == nil {
		reviews = []Review{}
	}
	s := Summary{Reviews: reviews, Count: len(reviews)}
	if s.Count == 0 {
		return s
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	s.Average = float64(total) / float64(s.Count)
	return s
}
