package handlers

import (
	"bottleshop/internal/middleware"
	"bottleshop/internal/models"
	"bottleshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes. Reads are public; adminOnly
// guards the mutating routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, adminOnly ...fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", guarded(adminOnly, h.HandleCreateProduct)...)
	productRoutes.Put("/:id", guarded(adminOnly, h.HandleUpdateProduct)...)
	productRoutes.Delete("/:id", guarded(adminOnly, h.HandleDeleteProduct)...)
}

// HandleGetProducts lists all products, newest first.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product owned by the calling admin.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}

	var creatorID string
	if claims := middleware.ClaimsFrom(c); claims != nil {
		creatorID = claims.UserID
	}

	product, err := h.service.CreateProduct(c.UserContext(), in, creatorID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(product)
}

// HandleUpdateProduct applies a partial update. Only title, description,
// price, category and image are read from the body.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var update models.ProductUpdate
	if err := c.BodyParser(&update); err != nil {
		return invalidBody(c, err)
	}

	product, err := h.service.UpdateProduct(c.UserContext(), c.Params("id"), update)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product. It answers the same whether or not the product existed.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return messageResponse(c, fiber.StatusOK, "Deleted")
}

// guarded appends handler to a copy of guards.
func guarded(guards []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	chain := make([]fiber.Handler, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, handler)
}
