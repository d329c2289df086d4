package handlers

import (
	"context"

	"remit/internal/models"
	"remit/internal/services/operation"
	"remit/internal/utils/response"
	"remit/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TransferSaga is the handler's view of the transfer service.
type TransferSaga interface {
	Process(ctx context.Context, fromLogin, fromCurrency, toLogin, toCurrency string, amount float64) (*operation.Outcome, error)
}

// TransferHandler exposes the transfer endpoint.
type TransferHandler struct {
	saga TransferSaga
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(saga TransferSaga) *TransferHandler {
	return &TransferHandler{saga: saga}
}

// Transfer handles POST /api/transfers requests. The sending login
// comes from the bearer token; sending from someone else's account is
// not expressible.
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		ToLogin      string  `json:"to_login"`
		FromCurrency string  `json:"from_currency"`
		ToCurrency   string  `json:"to_currency"`
		Amount       float64 `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	v := validation.New()
	v.Login("to_login", req.ToLogin)
	v.Currency("from_currency", req.FromCurrency)
	v.Currency("to_currency", req.ToCurrency)
	v.Amount("amount", req.Amount)
	if !v.Valid() {
		return response.ValidationError(c, v.Errors)
	}

	outcome, err := h.saga.Process(c.Context(), claims.Login, req.FromCurrency, req.ToLogin, req.ToCurrency, req.Amount)
	if err != nil {
		return respondSagaError(c, err)
	}
	if !outcome.OK() {
		return response.UnprocessableEntity(c, outcome)
	}
	return response.Success(c, "transfer completed", outcome)
}
