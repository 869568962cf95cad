package handlers

import (
	"bottleshop/internal/models"
	"bottleshop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleCreateContact)
}

func (h *ContactHandler) HandleCreateContact(c *fiber.Ctx) error {
	var in models.ContactInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}

	contact, err := h.service.Submit(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, err)
	}

	logrus.WithField("contact_id", contact.ID).Info("Contact saved")
	return c.JSON(fiber.Map{
		"message": "Thanks for contacting us",
		"contact": contact,
	})
}
