// Package handlers exposes the HTTP endpoints and maps saga results to
// status codes: success 200, business failure 422, bad input 400,
// unknown login 404, collaborator down 503.
package handlers

import (
	"context"
	"errors"
	"log"

	"remit/internal/clients"
	"remit/internal/models"
	"remit/internal/services/operation"
	"remit/internal/utils/response"
	"remit/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CashSaga is the handler's view of the cash service.
type CashSaga interface {
	Process(ctx context.Context, login, currency string, amount float64, direction string) (*operation.Outcome, error)
}

// CashHandler exposes deposit/withdraw endpoints.
type CashHandler struct {
	saga CashSaga
}

// NewCashHandler creates a new CashHandler.
func NewCashHandler(saga CashSaga) *CashHandler { return &CashHandler{saga: saga} }

// Operate handles POST /api/cash requests. The acting login comes from
// the bearer token, never from the body.
func (h *CashHandler) Operate(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		Currency  string  `json:"currency"`
		Amount    float64 `json:"amount"`
		Direction string  `json:"direction"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	v := validation.New()
	v.Currency("currency", req.Currency)
	v.Amount("amount", req.Amount)
	v.Direction("direction", req.Direction)
	if !v.Valid() {
		return response.ValidationError(c, v.Errors)
	}

	outcome, err := h.saga.Process(c.Context(), claims.Login, req.Currency, req.Amount, req.Direction)
	if err != nil {
		return respondSagaError(c, err)
	}
	if !outcome.OK() {
		return response.UnprocessableEntity(c, outcome)
	}
	return response.Success(c, "cash operation completed", outcome)
}

// respondSagaError translates non-business saga errors to HTTP status.
func respondSagaError(c *fiber.Ctx, err error) error {
	var unavailable *clients.UnavailableError
	switch {
	case errors.As(err, &unavailable):
		return response.ServiceUnavailable(c, unavailable.Error())
	case errors.Is(err, clients.ErrProfileNotFound):
		return response.NotFound(c, "account not found")
	default:
		log.Printf("operation failed unexpectedly: %v", err)
		return response.ServerError(c, "operation could not be processed")
	}
}
