package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"bottleshop/internal/config"
	"bottleshop/internal/database"
	"bottleshop/internal/models"
	"bottleshop/internal/server"
	"bottleshop/internal/services"
	"bottleshop/pkg/rabbitmq"
)

const (
	portRetries    = 5
	portRetryDelay = 200 * time.Millisecond
)

func main() {
	// --- Configuration ---
	cfg := config.Load()
	config.SetupLogging(cfg)

	ctx := context.Background()

	// --- Store ---
	store, err := database.Open(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open store")
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logrus.WithError(err).Error("Error closing store")
		}
	}()

	// --- RabbitMQ (optional) ---
	var publisher services.FeedbackPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logrus.WithError(err).Fatal("Failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		publisher = mqClient

		if err := mqClient.ConsumeFeedbackEvents(logFeedbackEvent); err != nil {
			logrus.WithError(err).Error("Failed to start feedback consumer")
		}
	} else {
		logrus.Info("RABBITMQ_URL not set, feedback events disabled")
	}

	app, svc := server.NewApp(server.Deps{
		Config:    cfg,
		Repos:     store.Repos,
		StoreName: store.Driver,
		Publisher: publisher,
	})

	// --- Bootstrap ---
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := svc.Auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			logrus.WithError(err).Error("Admin bootstrap failed")
		}
	}
	if cfg.SeedProducts {
		seedProducts(ctx, svc.Products)
	}

	// --- Start HTTP Server ---
	ln, err := listenWithRetry(cfg.Port, portRetries)
	if err != nil {
		logrus.WithError(err).Fatal("Server failed to start")
	}
	logrus.WithField("addr", ln.Addr().String()).Info("Server running")

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listener(ln); err != nil {
			logrus.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	<-quit
	logrus.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logrus.WithError(err).Error("Error during Fiber shutdown")
	}
	logrus.Info("Server gracefully stopped")
}

// listenWithRetry listens on port, moving to the next port while the address is in use.
func listenWithRetry(port, retries int) (net.Listener, error) {
	for attempt := 0; ; attempt++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			return ln, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) || attempt >= retries {
			return nil, err
		}
		logrus.Warnf("Port %d in use, trying %d...", port, port+1)
		port++
		time.Sleep(portRetryDelay)
	}
}

// logFeedbackEvent is the triage consumer for feedback.created events.
func logFeedbackEvent(event rabbitmq.FeedbackEvent) error {
	entry := logrus.WithFields(logrus.Fields{
		"feedback_id": event.FeedbackID,
		"type":        event.Type,
	})
	if event.Rating != nil {
		entry = entry.WithField("rating", *event.Rating)
	}
	if event.Type == models.FeedbackBug {
		entry.Warn("New bug report")
		return nil
	}
	entry.Info("New feedback")
	return nil
}

// demoProducts is the catalogue seeded into an empty store.
func demoProducts() []models.Product {
	return []models.Product{
		{Title: "Steel Bottle 750ml", Description: "Double-walled stainless steel, keeps drinks cold for 24h", Price: 29.00, Category: "Bottles"},
		{Title: "Glass Bottle 500ml", Description: "Borosilicate glass with bamboo lid", Price: 19.50, Category: "Bottles"},
		{Title: "Kids Bottle 350ml", Description: "Leak-proof straw lid, BPA free", Price: 14.00, Category: "Kids"},
		{Title: "Bottle Brush Set", Description: "Plant-fibre brushes for narrow necks", Price: 7.50, Category: "Accessories"},
	}
}

// seedProducts populates an empty catalogue with demo data.
func seedProducts(ctx context.Context, productService *services.ProductService) {
	n, err := productService.SeedProducts(ctx, demoProducts())
	if err != nil {
		logrus.WithError(err).Error("Error seeding products")
		return
	}
	if n > 0 {
		logrus.WithField("count", n).Info("Seeded demo products")
	}
}
