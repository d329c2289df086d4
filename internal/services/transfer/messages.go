package transfer

import (
	"fmt"
	"strings"

	"remit/internal/currency"
	"remit/internal/models"
)

func fromAmount(rec *models.TransactionRecord) string {
	return currency.Format(rec.FromCurrency, rec.FromAmount)
}

func toAmount(rec *models.TransactionRecord) string {
	if rec.ToAmount == nil {
		return currency.Format(rec.ToCurrency, 0)
	}
	return currency.Format(rec.ToCurrency, *rec.ToAmount)
}

func blockedMessage(rec *models.TransactionRecord, reason string) string {
	return fmt.Sprintf("Your transfer of %s was declined: %s.", fromAmount(rec), reason)
}

func selfSuccessMessage(rec *models.TransactionRecord) string {
	return fmt.Sprintf("Transfer between your accounts is complete: %s converted to %s.",
		fromAmount(rec), toAmount(rec))
}

func senderSuccessMessage(rec *models.TransactionRecord, recipientName string) string {
	return fmt.Sprintf("You sent %s to %s.", fromAmount(rec), recipientName)
}

func recipientSuccessMessage(rec *models.TransactionRecord, senderName string) string {
	return fmt.Sprintf("You received %s from %s.", toAmount(rec), senderName)
}

func failureMessage(rec *models.TransactionRecord, errs []string) string {
	return fmt.Sprintf("Your transfer of %s failed: %s.",
		fromAmount(rec), strings.Join(errs, "; "))
}

func abortMessage(rec *models.TransactionRecord) string {
	return fmt.Sprintf("We could not process your transfer of %s. Please try again later.",
		fromAmount(rec))
}
