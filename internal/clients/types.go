package clients

// Ledger mutation statuses
const (
	LedgerStatusSuccess = "success"
	LedgerStatusFailed  = "failed"
)

// LedgerResult is the ledger's answer to a mutation: either success or
// a list of human-readable business errors (insufficient funds, no
// account in that currency, ...).
type LedgerResult struct {
	Status string   `json:"status"`
	Errors []string `json:"errors"`
}

// OK reports whether the mutation was applied.
func (r *LedgerResult) OK() bool { return r.Status == LedgerStatusSuccess }

// CashMutation asks the ledger to credit or debit a single account.
type CashMutation struct {
	Login     string  `json:"login"`
	Currency  string  `json:"currency"`
	Amount    float64 `json:"amount"`
	Direction string  `json:"direction"`
}

// TransferMutation asks the ledger to move funds between two accounts.
// The ledger applies both legs atomically on its side.
type TransferMutation struct {
	FromLogin    string  `json:"from_login"`
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
	FromAmount   float64 `json:"from_amount"`
	ToAmount     float64 `json:"to_amount"`
	ToLogin      string  `json:"to_login"`
}
