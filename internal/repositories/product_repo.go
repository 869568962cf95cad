package repositories

import (
	"context"

	"bottleshop/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns every product, newest first.
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	// Update applies fields to the product and returns the stored result.
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error)
	// Delete removes the product. Deleting a missing product is not an error.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
