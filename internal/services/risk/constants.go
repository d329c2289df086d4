package risk

import "remit/internal/config"

// Block reasons
const (
	ReasonWithdrawalLimit = "withdrawal limit exceeded"
	ReasonMisrouted       = "operation not valid for this service"
	ReasonTransferLimit   = "transfer limit exceeded for third parties"
)

// Fallback limits for currencies without an explicit entry
const (
	DefaultWithdrawalLimit = 5_000.0
	DefaultTransferLimit   = 8_000.0
)

// Limits holds the per-currency thresholds the filters enforce.
type Limits struct {
	CashWithdrawal     map[string]float64
	ThirdPartyTransfer map[string]float64
}

// DefaultLimits returns the stock thresholds.
func DefaultLimits() Limits {
	return Limits{
		CashWithdrawal: map[string]float64{
			"RUB": 150_000,
			"USD": 2_000,
			"EUR": 2_000,
			"CNY": 15_000,
			"JPY": 300_000,
		},
		ThirdPartyTransfer: map[string]float64{
			"RUB": 600_000,
			"USD": 8_000,
			"EUR": 8_000,
			"CNY": 60_000,
			"JPY": 1_200_000,
		},
	}
}

// LimitsFromEnv returns the stock thresholds with per-currency
// overrides read from RISK_WITHDRAWAL_LIMIT_<CUR> and
// RISK_TRANSFER_LIMIT_<CUR> environment variables.
func LimitsFromEnv() Limits {
	l := DefaultLimits()
	for cur, limit := range l.CashWithdrawal {
		l.CashWithdrawal[cur] = config.GetFloatEnv("RISK_WITHDRAWAL_LIMIT_"+cur, limit)
	}
	for cur, limit := range l.ThirdPartyTransfer {
		l.ThirdPartyTransfer[cur] = config.GetFloatEnv("RISK_TRANSFER_LIMIT_"+cur, limit)
	}
	return l
}

func (l Limits) withdrawalLimit(currency string) float64 {
	if v, ok := l.CashWithdrawal[currency]; ok {
		return v
	}
	return DefaultWithdrawalLimit
}

func (l Limits) transferLimit(currency string) float64 {
	if v, ok := l.ThirdPartyTransfer[currency]; ok {
		return v
	}
	return DefaultTransferLimit
}
