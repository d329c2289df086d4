package operation

import (
	"context"

	"remit/internal/clients"
	"remit/internal/models"
	"remit/internal/services/risk"
)

// Ledger is the saga's view of the ledger service.
type Ledger interface {
	GetProfile(ctx context.Context, login string) (*models.Profile, error)
	ApplyCash(ctx context.Context, m clients.CashMutation) (*clients.LedgerResult, error)
	ApplyTransfer(ctx context.Context, m clients.TransferMutation) (*clients.LedgerResult, error)
}

// RiskChecker is the saga's view of the risk screen.
type RiskChecker interface {
	CheckCash(ctx context.Context, currency string, amount float64, direction string) (risk.CheckResult, error)
	CheckTransfer(ctx context.Context, fromCurrency, toCurrency string, amount float64, self bool) (risk.CheckResult, error)
}

// Converter is the saga's view of the currency converter.
type Converter interface {
	Convert(ctx context.Context, from, to string, amount float64) (float64, error)
}

// Notifier records a notification intent. Implementations enqueue to
// the outbox so the saga never blocks on delivery.
type Notifier interface {
	Publish(ctx context.Context, email, message string) error
}

// Store is the durable record of every attempted operation.
type Store interface {
	Create(rec *models.TransactionRecord) error
	Update(rec *models.TransactionRecord) error
}
