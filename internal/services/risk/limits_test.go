package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitsFromEnv_DefaultsWithoutOverrides(t *testing.T) {
	limits := LimitsFromEnv()
	assert.Equal(t, DefaultLimits(), limits)
}

func TestLimitsFromEnv_OverridesPerCurrency(t *testing.T) {
	t.Setenv("RISK_WITHDRAWAL_LIMIT_RUB", "100000")
	t.Setenv("RISK_TRANSFER_LIMIT_USD", "5000")

	limits := LimitsFromEnv()
	assert.Equal(t, 100_000.0, limits.CashWithdrawal["RUB"])
	assert.Equal(t, 5_000.0, limits.ThirdPartyTransfer["USD"])

	// Currencies without an override keep the stock values.
	assert.Equal(t, 2_000.0, limits.CashWithdrawal["USD"])
	assert.Equal(t, 600_000.0, limits.ThirdPartyTransfer["RUB"])
}

func TestLimitsFromEnv_OverriddenLimitIsEnforced(t *testing.T) {
	t.Setenv("RISK_WITHDRAWAL_LIMIT_RUB", "100000")

	screen := NewService(LimitsFromEnv())
	assert.False(t, screen.EvaluateCash("RUB", 100_000, "withdraw").Blocked)

	result := screen.EvaluateCash("RUB", 100_001, "withdraw")
	assert.True(t, result.Blocked)
	assert.Equal(t, ReasonWithdrawalLimit, result.Reason)
}

func TestLimitsFromEnv_MalformedValueFallsBack(t *testing.T) {
	t.Setenv("RISK_WITHDRAWAL_LIMIT_RUB", "a lot")

	limits := LimitsFromEnv()
	assert.Equal(t, 150_000.0, limits.CashWithdrawal["RUB"])
}
