package cash

import (
	"fmt"
	"strings"

	"remit/internal/currency"
	"remit/internal/models"
)

func opName(rec *models.TransactionRecord) string {
	if rec.Direction == models.DirectionWithdraw {
		return "withdrawal"
	}
	return "deposit"
}

func blockedMessage(rec *models.TransactionRecord, reason string) string {
	return fmt.Sprintf("Your %s of %s was declined: %s.",
		opName(rec), currency.Format(rec.FromCurrency, rec.FromAmount), reason)
}

func resultMessage(rec *models.TransactionRecord, errs []string) string {
	amount := currency.Format(rec.FromCurrency, rec.FromAmount)
	if rec.Succeeded {
		if rec.Direction == models.DirectionWithdraw {
			return fmt.Sprintf("Withdrawal of %s from your account is complete.", amount)
		}
		return fmt.Sprintf("Deposit of %s to your account is complete.", amount)
	}
	return fmt.Sprintf("Your %s of %s failed: %s.",
		opName(rec), amount, strings.Join(errs, "; "))
}

func abortMessage(rec *models.TransactionRecord) string {
	return fmt.Sprintf("We could not process your %s of %s. Please try again later.",
		opName(rec), currency.Format(rec.FromCurrency, rec.FromAmount))
}
