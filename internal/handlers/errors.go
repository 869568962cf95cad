package handlers

import (
	"errors"

	"bottleshop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// messageResponse writes {"message": message} with the given status.
func messageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// invalidBody answers a request whose body could not be parsed.
func invalidBody(c *fiber.Ctx, err error) error {
	logrus.WithError(err).WithField("path", c.Path()).Debug("Error parsing request body")
	return messageResponse(c, fiber.StatusBadRequest, "Invalid request body")
}

// errorResponse maps a service error onto the HTTP error taxonomy.
func errorResponse(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErr.Fields,
		})
	case errors.Is(err, services.ErrMissingFields):
		return messageResponse(c, fiber.StatusBadRequest, "Missing fields")
	case errors.Is(err, services.ErrInvalidCredentials):
		return messageResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrEmailTaken):
		return messageResponse(c, fiber.StatusConflict, "Email already registered")
	case errors.Is(err, services.ErrNotFound):
		return messageResponse(c, fiber.StatusNotFound, "Not found")
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("Request failed")
		return messageResponse(c, fiber.StatusInternalServerError, "Server error")
	}
}
