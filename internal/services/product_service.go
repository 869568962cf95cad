package services

import (
	"context"

	"bottleshop/internal/models"
	"bottleshop/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: newValidator(),
	}
}

// GetAllProducts retrieves all products, newest first.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct validates in and stores it as a product owned by creatorID.
func (s *ProductService) CreateProduct(ctx context.Context, in models.ProductInput, creatorID string) (*models.Product, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	product := &models.Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		Image:       in.Image,
		CreatedBy:   creatorID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies the whitelisted fields of update to the product.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	if err := validateStruct(s.validate, update); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, update.Fields())
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SeedProducts stores products only when the catalogue is empty. It returns how many were added.
func (s *ProductService) SeedProducts(ctx context.Context, products []models.Product) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i := range products {
		if err := s.repo.Create(ctx, &products[i]); err != nil {
			return i, err
		}
	}
	return len(products), nil
}
