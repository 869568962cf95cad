package handlers

import (
	"bottleshop/internal/middleware"
	"bottleshop/internal/models"
	"bottleshop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes. authenticated guards /me.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authenticated ...fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/signup", h.HandleSignup)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Get("/me", guarded(authenticated, h.HandleMe)...)
}

// HandleSignup registers a new user and returns a token.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var in models.SignupInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}

	token, user, err := h.authService.Signup(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, err)
	}

	logrus.WithField("user_id", user.ID).Info("User signed up")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Signed up",
		"token":   token,
	})
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var in models.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}

	token, err := h.authService.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Logged in",
		"token":   token,
	})
}

// HandleMe returns the caller's account; the storefront uses it to decide
// whether to show the admin panel.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return messageResponse(c, fiber.StatusUnauthorized, "No token")
	}

	user, err := h.authService.CurrentUser(c.UserContext(), claims.UserID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"_id":     user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
	})
}
