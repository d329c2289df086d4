// Package validation rejects malformed input before a saga runs, so
// bad requests never leave a transaction record behind.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"remit/internal/models"
)

const (
	// Amount limits
	MinOperationAmount = 0.01
	MaxOperationAmount = 100_000_000.00

	// String lengths
	MaxLoginLength = 64
)

var (
	loginRegex    = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Validator collects field errors.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Login validates an account login.
func (v *Validator) Login(field, login string) {
	trimmed := strings.TrimSpace(login)
	v.Check(trimmed != "", field, "must not be empty")
	if trimmed == "" {
		return
	}
	v.Check(len(trimmed) <= MaxLoginLength, field, fmt.Sprintf("must not be more than %d characters long", MaxLoginLength))
	v.Check(loginRegex.MatchString(trimmed), field, "must contain only letters, digits, dots, dashes and underscores")
}

// Currency validates an ISO 4217 style currency code.
func (v *Validator) Currency(field, code string) {
	v.Check(currencyRegex.MatchString(code), field, "must be a three-letter currency code")
}

// Amount validates an operation amount.
func (v *Validator) Amount(field string, amount float64) {
	v.Check(amount >= MinOperationAmount, field, fmt.Sprintf("must be at least %.2f", MinOperationAmount))
	v.Check(amount <= MaxOperationAmount, field, fmt.Sprintf("must not exceed %.2f", MaxOperationAmount))
}

// Direction validates a cash direction.
func (v *Validator) Direction(field, direction string) {
	v.Check(direction == models.DirectionDeposit || direction == models.DirectionWithdraw,
		field, "must be either 'deposit' or 'withdraw'")
}
