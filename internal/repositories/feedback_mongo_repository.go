package repositories

import (
	"context"
	"errors"
	"fmt"

	"bottleshop/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFeedbackRepository is a MongoDB implementation of FeedbackRepository.
type MongoFeedbackRepository struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepository creates a new instance of MongoFeedbackRepository.
func NewMongoFeedbackRepository(d *mongo.Database) *MongoFeedbackRepository {
	return &MongoFeedbackRepository{coll: d.Collection(FeedbackCollection)}
}

// Create inserts a feedback document.
func (r *MongoFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = newObjectID()
	}
	ts := now()
	feedback.CreatedAt = ts
	feedback.UpdatedAt = ts
	if _, err := r.coll.InsertOne(ctx, feedback); err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// List returns feedback matching filter, newest first.
func (r *MongoFeedbackRepository) List(ctx context.Context, filter models.FeedbackFilter, limit int) ([]models.Feedback, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, feedbackQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	items := make([]models.Feedback, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return items, nil
}

// UpdateStatus changes the status of a feedback document and returns it.
func (r *MongoFeedbackRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.Feedback, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var feedback models.Feedback
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&feedback); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("feedback with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update feedback status: %w", err)
	}
	return &feedback, nil
}

// feedbackQuery turns the validated filter into an exact-match query.
func feedbackQuery(filter models.FeedbackFilter) bson.M {
	q := bson.M{}
	if filter.Type != "" {
		q["type"] = filter.Type
	}
	if filter.Status != "" {
		q["status"] = filter.Status
	}
	if filter.ProductID != "" {
		q["productId"] = filter.ProductID
	}
	if filter.Email != "" {
		q["email"] = filter.Email
	}
	return q
}
