package services

import (
	"context"
	"strings"

	"bottleshop/internal/models"
	"bottleshop/internal/repositories"
	"bottleshop/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// FeedbackPublisher announces new feedback to interested consumers.
type FeedbackPublisher interface {
	PublishFeedbackCreated(event rabbitmq.FeedbackEvent) error
}

// FeedbackService handles business logic related to customer feedback.
type FeedbackService struct {
	repo      repositories.FeedbackRepository
	publisher FeedbackPublisher // nil disables events
	validate  *validator.Validate
}

// NewFeedbackService creates a new FeedbackService. publisher may be nil.
func NewFeedbackService(repo repositories.FeedbackRepository, publisher FeedbackPublisher) *FeedbackService {
	return &FeedbackService{
		repo:      repo,
		publisher: publisher,
		validate:  newValidator(),
	}
}

// Submit stores new feedback with status "new" and publishes a feedback.created event.
func (s *FeedbackService) Submit(ctx context.Context, in models.FeedbackInput) (*models.Feedback, error) {
	if blank(in.Type) || blank(in.Message) {
		return nil, ErrMissingFields
	}

	feedback := &models.Feedback{
		ProductID: strings.TrimSpace(in.ProductID),
		Type:      strings.TrimSpace(in.Type),
		Rating:    in.Rating,
		Message:   in.Message,
		Email:     strings.TrimSpace(in.Email),
		Status:    models.FeedbackStatusNew,
	}
	if err := validateStruct(s.validate, feedback); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	s.publishCreated(feedback)
	return feedback, nil
}

// List returns feedback matching filter, newest first, capped at models.MaxFeedbackList.
func (s *FeedbackService) List(ctx context.Context, filter models.FeedbackFilter) ([]models.Feedback, error) {
	return s.ListLatest(ctx, filter, models.MaxFeedbackList)
}

// ListLatest is List with a caller-chosen limit, clamped to 1..models.MaxFeedbackList.
func (s *FeedbackService) ListLatest(ctx context.Context, filter models.FeedbackFilter, limit int) ([]models.Feedback, error) {
	if err := validateStruct(s.validate, filter); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > models.MaxFeedbackList {
		limit = models.MaxFeedbackList
	}
	return s.repo.List(ctx, filter, limit)
}

// UpdateStatus moves feedback to one of the known statuses.
func (s *FeedbackService) UpdateStatus(ctx context.Context, id, status string) (*models.Feedback, error) {
	if blank(status) {
		return nil, ErrMissingFields
	}
	if err := s.validate.Var(status, "oneof=new reviewed closed"); err != nil {
		return nil, &ValidationError{Fields: map[string]string{
			"status": "Field 'status' failed on the 'oneof' tag",
		}}
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *FeedbackService) publishCreated(feedback *models.Feedback) {
	if s.publisher == nil {
		return
	}
	event := rabbitmq.FeedbackEvent{
		FeedbackID: feedback.ID,
		Type:       feedback.Type,
		Rating:     feedback.Rating,
		ProductID:  feedback.ProductID,
		CreatedAt:  feedback.CreatedAt,
	}
	if err := s.publisher.PublishFeedbackCreated(event); err != nil {
		logrus.WithError(err).WithField("feedback_id", feedback.ID).Warn("Failed to publish feedback.created event")
	}
}
