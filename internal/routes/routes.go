// Package routes defines the API routing configuration.
package routes

import (
	"remit/internal/handlers"
	"remit/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Cash        *handlers.CashHandler
	Transfer    *handlers.TransferHandler
	Transaction *handlers.TransactionHandler
	Risk        *handlers.RiskHandler
}

// SetupRoutes wires all HTTP routes.
func SetupRoutes(app *fiber.App, h Handlers) {
	app.Get("/health", handlers.HealthCheck)

	// Risk screen endpoints, consumed by the risk client. No user auth:
	// callers are services, not customers.
	riskGroup := app.Group("/risk")
	riskGroup.Post("/check/cash", h.Risk.CheckCash)
	riskGroup.Post("/check/transfer", h.Risk.CheckTransfer)

	api := app.Group("/api", middleware.Auth)
	api.Post("/cash", h.Cash.Operate)
	api.Post("/transfers", h.Transfer.Transfer)
	api.Get("/transactions", h.Transaction.History)
	api.Get("/transactions/:reference", h.Transaction.Get)
}
