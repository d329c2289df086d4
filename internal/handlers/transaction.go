package handlers

import (
	"errors"

	"remit/internal/models"
	"remit/internal/repositories"
	"remit/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// TransactionReader is the handler's view of the transaction store.
type TransactionReader interface {
	ListByLogin(login string, limit, offset int) ([]models.TransactionRecord, error)
	GetByReference(referenceID string) (*models.TransactionRecord, error)
}

// TransactionHandler exposes the operation history endpoints.
type TransactionHandler struct {
	store TransactionReader
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(store TransactionReader) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// History handles GET /api/transactions for the acting login.
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit < 1 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	recs, err := h.store.ListByLogin(claims.Login, limit, offset)
	if err != nil {
		return response.ServerError(c, "failed to load transactions")
	}
	return response.Success(c, "transactions", recs)
}

// Get handles GET /api/transactions/:reference. A record belonging to
// neither party reads as absent, so reference ids leak nothing.
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	rec, err := h.store.GetByReference(c.Params("reference"))
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return response.NotFound(c, "transaction not found")
	}
	if err != nil {
		return response.ServerError(c, "failed to load transaction")
	}
	if rec.FromLogin != claims.Login && rec.ToLogin != claims.Login {
		return response.NotFound(c, "transaction not found")
	}
	return response.Success(c, "transaction", rec)
}
