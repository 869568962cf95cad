package repositories

import (
	"context"

	"bottleshop/internal/models"
)

// ContactRepository stores contact messages. There is no read path.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
}
