// Package currency knows the precision of the currencies the ledger
// supports and rounds converted amounts to it.
package currency

import (
	"math"
	"strconv"
)

// DefaultPrecision is the number of decimal places used for currencies
// not listed in the precision table.
const DefaultPrecision = 2

var precisions = map[string]int{
	"RUB": 2,
	"USD": 2,
	"EUR": 2,
	"CNY": 2,
	"JPY": 0,
	"KWD": 3,
}

// Precision returns the number of decimal places for a currency code.
func Precision(code string) int {
	if p, ok := precisions[code]; ok {
		return p
	}
	return DefaultPrecision
}

// Round rounds an amount to the precision of the given currency.
func Round(code string, amount float64) float64 {
	factor := math.Pow10(Precision(code))
	return math.Round(amount*factor) / factor
}

// Format renders an amount with the currency's precision, e.g.
// "10000.00 RUB".
func Format(code string, amount float64) string {
	return strconv.FormatFloat(amount, 'f', Precision(code), 64) + " " + code
}

// IsSupported reports whether the currency code is known.
func IsSupported(code string) bool {
	_, ok := precisions[code]
	return ok
}
