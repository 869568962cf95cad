package handlers

import (
	"bottleshop/internal/models"
	"bottleshop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// FeedbackHandler handles HTTP requests for customer feedback.
type FeedbackHandler struct {
	service *services.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(service *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// RegisterRoutes registers the feedback routes. Submitting is public; adminOnly
// guards listing and status changes.
func (h *FeedbackHandler) RegisterRoutes(router fiber.Router, adminOnly ...fiber.Handler) {
	feedbackRoutes := router.Group("/feedback")
	feedbackRoutes.Post("/", h.HandleCreateFeedback)
	feedbackRoutes.Get("/", guarded(adminOnly, h.HandleListFeedback)...)
	feedbackRoutes.Patch("/:id/status", guarded(adminOnly, h.HandleUpdateFeedbackStatus)...)
}

// HandleCreateFeedback stores a feedback submission.
func (h *FeedbackHandler) HandleCreateFeedback(c *fiber.Ctx) error {
	var in models.FeedbackInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}

	feedback, err := h.service.Submit(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, err)
	}

	logrus.WithFields(logrus.Fields{
		"feedback_id": feedback.ID,
		"type":        feedback.Type,
	}).Info("Feedback saved")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Feedback received",
		"feedback": feedback,
	})
}

// HandleListFeedback lists feedback, newest first, filtered by the known query parameters.
func (h *FeedbackHandler) HandleListFeedback(c *fiber.Ctx) error {
	var filter models.FeedbackFilter
	if err := c.QueryParser(&filter); err != nil {
		return messageResponse(c, fiber.StatusBadRequest, "Invalid query")
	}

	items, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(items)
}

// HandleUpdateFeedbackStatus moves feedback to a new status.
func (h *FeedbackHandler) HandleUpdateFeedbackStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c, err)
	}

	feedback, err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), body.Status)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(feedback)
}
