// Package server assembles the Fiber application: middleware, API routes and the storefront.
package server

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"bottleshop/internal/config"
	"bottleshop/internal/handlers"
	"bottleshop/internal/middleware"
	"bottleshop/internal/repositories"
	"bottleshop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators NewApp wires together.
type Deps struct {
	Config    config.Config
	Repos     *repositories.Set
	StoreName string
	// Publisher receives feedback.created events. Nil disables them.
	Publisher services.FeedbackPublisher
	// DisableAccessLog turns off the per-request logger, for tests.
	DisableAccessLog bool
}

// Services exposes the services NewApp built, for bootstrapping and tests.
type Services struct {
	Auth     *services.AuthService
	Products *services.ProductService
	Contacts *services.ContactService
	Feedback *services.FeedbackService
}

// NewApp builds the Fiber application.
func NewApp(deps Deps) (*fiber.App, *Services) {
	cfg := deps.Config

	svc := &Services{
		Auth:     services.NewAuthService(deps.Repos.Users, cfg.JWTSecret, cfg.JWTTTL),
		Products: services.NewProductService(deps.Repos.Products),
		Contacts: services.NewContactService(deps.Repos.Contacts),
		Feedback: services.NewFeedbackService(deps.Repos.Feedback, deps.Publisher),
	}

	app := fiber.New(fiber.Config{
		AppName:               "bottleshop",
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New())
	if !deps.DisableAccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  deps.StoreName,
		})
	})

	// --- API Routes ---
	authenticated := middleware.AuthRequired(svc.Auth)
	adminOnly := []fiber.Handler{authenticated, middleware.AdminRequired()}

	api := app.Group("/api")
	handlers.NewAuthHandler(svc.Auth).RegisterRoutes(api, authenticated)
	handlers.NewProductHandler(svc.Products).RegisterRoutes(api, adminOnly...)
	handlers.NewContactHandler(svc.Contacts).RegisterRoutes(api)
	handlers.NewFeedbackHandler(svc.Feedback).RegisterRoutes(api, adminOnly...)
	api.Use(func(c *fiber.Ctx) error {
		// Use matches on a bare string prefix, so /apiary lands here too.
		if p := c.Path(); p != "/api" && !strings.HasPrefix(p, "/api/") {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// --- Storefront ---
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
		index := filepath.Join(cfg.StaticDir, "index.html")
		app.Get("*", func(c *fiber.Ctx) error {
			return c.SendFile(index)
		})
	}

	return app, svc
}

// errorHandler renders every unhandled error as {"message"}.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
		if code == fiber.StatusNotFound {
			message = "Not found"
		}
	}
	if code >= fiber.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("Unhandled error")
		message = "Server error"
	}

	return c.Status(code).JSON(fiber.Map{"message": message})
}
