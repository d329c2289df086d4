package clients

import (
	"errors"
	"fmt"
)

// Collaborator tags which downstream service an error came from.
type Collaborator string

// Downstream collaborators
const (
	CollaboratorLedger    Collaborator = "ledger"
	CollaboratorRisk      Collaborator = "risk"
	CollaboratorConverter Collaborator = "converter"
	CollaboratorNotifier  Collaborator = "notifier"
)

// ErrProfileNotFound is returned when the ledger does not know a login.
var ErrProfileNotFound = errors.New("profile not found")

// UnavailableError is returned once the retry budget against a
// collaborator is exhausted. The tag lets the boundary distinguish
// "risk service down" from "ledger down".
type UnavailableError struct {
	Collaborator Collaborator
	Err          error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s service unavailable: %v", e.Collaborator, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// IsUnavailable reports whether err is a collaborator-unavailable
// condition.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}
