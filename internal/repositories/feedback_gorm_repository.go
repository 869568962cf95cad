package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bottleshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMFeedbackRepository is a GORM implementation of FeedbackRepository.
type GORMFeedbackRepository struct {
	db *gorm.DB
}

// NewGORMFeedbackRepository creates a new instance of GORMFeedbackRepository.
func NewGORMFeedbackRepository(db *gorm.DB) *GORMFeedbackRepository {
	return &GORMFeedbackRepository{db: db}
}

// Create stores a feedback record.
func (r *GORMFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// List returns feedback matching filter, newest first.
func (r *GORMFeedbackRepository) List(ctx context.Context, filter models.FeedbackFilter, limit int) ([]models.Feedback, error) {
	q := r.db.WithContext(ctx).Model(&models.Feedback{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ProductID != "" {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.Email != "" {
		q = q.Where("email = ?", filter.Email)
	}

	items := make([]models.Feedback, 0)
	if err := q.Order("created_at desc").Limit(limit).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return items, nil
}

// UpdateStatus changes the status of a feedback record and returns it.
func (r *GORMFeedbackRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.Feedback, error) {
	res := r.db.WithContext(ctx).Model(&models.Feedback{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update feedback status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("feedback with ID %s: %w", id, ErrNotFound)
	}

	var feedback models.Feedback
	if err := r.db.WithContext(ctx).First(&feedback, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("feedback with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to reload feedback %s: %w", id, err)
	}
	return &feedback, nil
}
