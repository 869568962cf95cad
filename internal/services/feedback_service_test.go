package services_test

import (
	"context"
	"errors"
	"testing"

	"bottleshop/internal/models"
	"bottleshop/internal/services"
	"bottleshop/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	args := m.Called(ctx, feedback)
	if feedback.ID == "" {
		feedback.ID = "fb-1"
	}
	return args.Error(0)
}

func (m *MockFeedbackRepository) List(ctx context.Context, filter models.FeedbackFilter, limit int) ([]models.Feedback, error) {
	args := m.Called(ctx, filter, limit)
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.Feedback, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishFeedbackCreated(event rabbitmq.FeedbackEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func TestFeedbackService_Submit(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFeedbackRepository)
	publisher := new(MockPublisher)
	service := services.NewFeedbackService(mockRepo, publisher)

	mockRepo.On("Create", ctx, mock.MatchedBy(func(f *models.Feedback) bool {
		return f.Status == models.FeedbackStatusNew && f.Type == models.FeedbackBug && f.Rating == nil
	})).Return(nil).Once()
	publisher.On("PublishFeedbackCreated", mock.MatchedBy(func(e rabbitmq.FeedbackEvent) bool {
		return e.FeedbackID == "fb-1" && e.Type == models.FeedbackBug
	})).Return(nil).Once()

	feedback, err := service.Submit(ctx, models.FeedbackInput{Type: "bug", Message: "Lid leaks"})
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackStatusNew, feedback.Status)
	assert.Nil(t, feedback.Rating)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestFeedbackService_SubmitSurvivesPublishFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFeedbackRepository)
	publisher := new(MockPublisher)
	service := services.NewFeedbackService(mockRepo, publisher)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Feedback")).Return(nil).Once()
	publisher.On("PublishFeedbackCreated", mock.Anything).Return(errors.New("channel closed")).Once()

	rating := 5
	feedback, err := service.Submit(ctx, models.FeedbackInput{Type: "compliment", Message: "Great", Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 5, *feedback.Rating)
	publisher.AssertExpectations(t)
}

func TestFeedbackService_SubmitRejections(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFeedbackRepository)
	service := services.NewFeedbackService(mockRepo, nil)

	_, err := service.Submit(ctx, models.FeedbackInput{Message: "no type"})
	assert.ErrorIs(t, err, services.ErrMissingFields)

	_, err = service.Submit(ctx, models.FeedbackInput{Type: "bug"})
	assert.ErrorIs(t, err, services.ErrMissingFields)

	var validationErr *services.ValidationError
	rating := 7
	_, err = service.Submit(ctx, models.FeedbackInput{Type: "bug", Message: "x", Rating: &rating})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "rating")

	_, err = service.Submit(ctx, models.FeedbackInput{Type: "rant", Message: "x"})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "type")

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFeedbackService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFeedbackRepository)
	service := services.NewFeedbackService(mockRepo, nil)

	filter := models.FeedbackFilter{Type: "bug"}
	mockRepo.On("List", ctx, filter, models.MaxFeedbackList).Return([]models.Feedback{{ID: "a"}}, nil).Twice()

	items, err := service.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// limits above the cap are clamped
	_, err = service.ListLatest(ctx, filter, 5000)
	require.NoError(t, err)

	mockRepo.On("List", ctx, filter, 20).Return([]models.Feedback{}, nil).Once()
	_, err = service.ListLatest(ctx, filter, 20)
	require.NoError(t, err)

	_, err = service.List(ctx, models.FeedbackFilter{Status: "archived"})
	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockRepo.AssertExpectations(t)
}

func TestFeedbackService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFeedbackRepository)
	service := services.NewFeedbackService(mockRepo, nil)

	mockRepo.On("UpdateStatus", ctx, "fb-1", "reviewed").
		Return(&models.Feedback{ID: "fb-1", Status: "reviewed"}, nil).Once()
	feedback, err := service.UpdateStatus(ctx, "fb-1", "reviewed")
	require.NoError(t, err)
	assert.Equal(t, "reviewed", feedback.Status)

	_, err = service.UpdateStatus(ctx, "fb-1", "")
	assert.ErrorIs(t, err, services.ErrMissingFields)

	_, err = service.UpdateStatus(ctx, "fb-1", "deleted")
	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockRepo.AssertExpectations(t)
}

func TestFeedbackService_SubmitKeepsFreeTextEmail(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFeedbackRepository)
	service := services.NewFeedbackService(mockRepo, nil)

	mockRepo.On("Create", ctx, mock.MatchedBy(func(f *models.Feedback) bool {
		return f.Email == "call me on 555-0100"
	})).Return(nil).Once()

	feedback, err := service.Submit(ctx, models.FeedbackInput{Type: "other", Message: "x", Email: " call me on 555-0100 "})
	require.NoError(t, err)
	assert.Equal(t, "call me on 555-0100", feedback.Email)
	mockRepo.AssertExpectations(t)
}
