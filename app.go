package main

import (
	"fmt"
	"log"
	"time"

	"inventory/internal/config"
	"inventory/internal/database"
	"inventory/internal/handlers"
	"inventory/internal/middleware"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp wires storage, the optional event publisher, services and handlers
// into a Fiber app. The returned cleanup releases the database and broker
// connections and must be called after the app has shut down.
func NewApp(cfg *config.Config) (*fiber.App, func(), error) {
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Printf("Error during cleanup: %v", err)
			}
		}
	}

	// --- Storage ---
	var productRepo repositories.ProductRepository
	if cfg.DBDriver == config.DriverMemory {
		productRepo = repositories.NewMockProductRepository()
	} else {
		db, err := database.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() error { return database.Close(db) })
		productRepo = repositories.NewGORMProductRepository(db)
	}

	// --- Events ---
	// The interface stays nil when events are disabled so the service skips publishing.
	var events services.EventPublisher
	if cfg.EventsEnabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.ProductEventsQueue})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		closers = append(closers, mqClient.Close)
		events = mqClient
	} else {
		log.Println("RABBITMQ_URL is not set. Product events are disabled.")
	}

	productService := services.NewProductService(productRepo, events)
	productHandler := handlers.NewProductHandler(productService)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	productHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, cleanup, nil
}
