package risk

// Operation kinds as seen by the screen.
const (
	KindCash     = "cash"
	KindTransfer = "transfer"
)

// Leg types. A cash leg is physical money at the counter; an account
// leg is a ledger account.
const (
	LegCash    = "cash"
	LegAccount = "account"
)

// CheckRequest describes one operation to screen.
type CheckRequest struct {
	Kind         string
	Direction    string // deposit/withdraw, cash only
	FromCurrency string
	ToCurrency   string
	Amount       float64
	Self         bool // transfer between the holder's own accounts
	SourceLeg    string
	TargetLeg    string
}

// CheckResult is the screen's verdict. Reason is set exactly when
// Blocked is true.
type CheckResult struct {
	Blocked bool   `json:"blocked"`
	Reason  string `json:"reason,omitempty"`
}

// Filter is one link of the screening chain. It either returns its own
// blocking verdict or delegates to next.
type Filter func(req CheckRequest, next func(CheckRequest) CheckResult) CheckResult
