package repositories

import (
	"context"
	"fmt"

	"bottleshop/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoContactRepository is a MongoDB implementation of ContactRepository.
type MongoContactRepository struct {
	coll *mongo.Collection
}

func NewMongoContactRepository(d *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{coll: d.Collection(ContactsCollection)}
}

func (r *MongoContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = newObjectID()
	}
	contact.CreatedAt = now()
	if _, err := r.coll.InsertOne(ctx, contact); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}
