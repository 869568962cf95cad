package services

import (
	"context"
	"strings"

	"bottleshop/internal/models"
	"bottleshop/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ContactService stores contact messages.
type ContactService struct {
	repo     repositories.ContactRepository
	validate *validator.Validate
}

func NewContactService(repo repositories.ContactRepository) *ContactService {
	return &ContactService{repo: repo, validate: newValidator()}
}

// Submit stores a contact message. Name, email and message are all required.
func (s *ContactService) Submit(ctx context.Context, in models.ContactInput) (*models.Contact, error) {
	if blank(in.Name) || blank(in.Email) || blank(in.Message) {
		return nil, ErrMissingFields
	}
	contact := &models.Contact{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: in.Message,
	}
	if err := validateStruct(s.validate, contact); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}
