package repositories

import (
	"context"

	"bottleshop/internal/models"
)

// FeedbackRepository defines the interface for feedback data access.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	// List returns feedback matching filter, newest first, at most limit records.
	List(ctx context.Context, filter models.FeedbackFilter, limit int) ([]models.Feedback, error)
	UpdateStatus(ctx context.Context, id string, status string) (*models.Feedback, error)
}
