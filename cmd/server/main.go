// Package main is the entry point for the money-movement service.
// It wires configuration, storage, collaborator clients, the sagas and
// the HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"remit/internal/clients"
	"remit/internal/config"
	"remit/internal/handlers"
	"remit/internal/repositories"
	"remit/internal/routes"
	"remit/internal/services/cash"
	"remit/internal/services/notification"
	"remit/internal/services/risk"
	"remit/internal/services/transfer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("failed to get database instance: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("failed to close database connection: %v", err)
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("failed to close redis connection: %v", err)
			}
		}
	}()

	// Collaborator clients
	collab := config.LoadCollaborators()
	ledgerClient := clients.NewLedgerClient(collab.LedgerURL, collab.Timeout, repositories.CacheService)
	riskClient := clients.NewRiskClient(collab.RiskURL, collab.Timeout)
	converterClient := clients.NewConverterClient(collab.ConverterURL, collab.Timeout)
	notifierClient := clients.NewNotifierClient(collab.NotifierURL, collab.Timeout)

	// Stores and services
	store := repositories.NewTransactionStore(repositories.DB)
	outbox := repositories.NewNotificationOutbox(repositories.DB)
	notifier := notification.NewService(outbox)
	cashSaga := cash.NewService(store, ledgerClient, riskClient, notifier)
	transferSaga := transfer.NewService(store, ledgerClient, riskClient, converterClient, notifier)
	riskScreen := risk.NewService(risk.LimitsFromEnv())

	// Outbox dispatcher
	dispatcherCtx, stopDispatcher := context.WithCancel(context.Background())
	defer stopDispatcher()
	go notification.NewDispatcher(outbox, notifierClient).Run(dispatcherCtx)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use("/api", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT", 60),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, routes.Handlers{
		Cash:        handlers.NewCashHandler(cashSaga),
		Transfer:    handlers.NewTransferHandler(transferSaga),
		Transaction: handlers.NewTransactionHandler(store),
		Risk:        handlers.NewRiskHandler(riskScreen),
	})

	// Graceful shutdown so in-flight sagas finish through notification
	// enqueue.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		stopDispatcher()
		if err := app.Shutdown(); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
