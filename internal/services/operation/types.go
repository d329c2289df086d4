// Package operation holds the types shared by the cash and transfer
// sagas: the outcome they hand back to the HTTP layer and the
// collaborator interfaces they are wired with.
package operation

// Outcome statuses
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Outcome is the terminal result of one money-movement operation.
// Business failures travel here as data; only downstream-unavailable
// and unexpected conditions surface as errors.
type Outcome struct {
	Status      string   `json:"status"`
	Errors      []string `json:"errors,omitempty"`
	ReferenceID string   `json:"reference_id"`
}

// Success builds a successful outcome.
func Success(referenceID string) *Outcome {
	return &Outcome{Status: StatusSuccess, ReferenceID: referenceID}
}

// Failed builds a failed outcome carrying the business error list.
func Failed(referenceID string, errs ...string) *Outcome {
	return &Outcome{Status: StatusFailed, Errors: errs, ReferenceID: referenceID}
}

// OK reports whether the operation succeeded.
func (o *Outcome) OK() bool { return o.Status == StatusSuccess }
