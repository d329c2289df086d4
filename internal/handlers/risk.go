package handlers

import (
	"remit/internal/services/risk"
	"remit/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// RiskHandler exposes the risk screen over HTTP. The sagas reach it
// through the risk client, so the screen stays an independently
// addressable collaborator even when it runs in the same binary.
type RiskHandler struct {
	screen *risk.Service
}

// NewRiskHandler creates a new RiskHandler.
func NewRiskHandler(screen *risk.Service) *RiskHandler {
	return &RiskHandler{screen: screen}
}

// CheckCash handles POST /risk/check/cash.
func (h *RiskHandler) CheckCash(c *fiber.Ctx) error {
	var req struct {
		Currency  string  `json:"currency"`
		Amount    float64 `json:"amount"`
		Direction string  `json:"direction"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}
	return c.JSON(h.screen.EvaluateCash(req.Currency, req.Amount, req.Direction))
}

// CheckTransfer handles POST /risk/check/transfer.
func (h *RiskHandler) CheckTransfer(c *fiber.Ctx) error {
	var req struct {
		FromCurrency string  `json:"from_currency"`
		ToCurrency   string  `json:"to_currency"`
		Amount       float64 `json:"amount"`
		Self         bool    `json:"self"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}
	return c.JSON(h.screen.EvaluateTransfer(req.FromCurrency, req.ToCurrency, req.Amount, req.Self))
}
