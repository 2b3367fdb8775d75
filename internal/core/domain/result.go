package domain

import "fmt"

// Outcome classifies the result of one remote API call. Expected-negative
// answers (a 401 on introspection, rejected credentials) are outcomes like any
// other, so callers branch on data instead of unwinding through errors.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeDenied      Outcome = "denied"      // 401
	OutcomeRejected    Outcome = "rejected"    // other 4xx
	OutcomeUnavailable Outcome = "unavailable" // 5xx
	OutcomeTransport   Outcome = "transport"   // request never completed
)

// CallResult is the explicit result of a remote call. Status is the HTTP
// status code, or 0 when the request never completed. Err carries the
// underlying cause for diagnostics only; it is never used for control flow.
type CallResult struct {
	Outcome Outcome
	Status  int
	Err     error
}

func (r CallResult) OK() bool { return r.Outcome == OutcomeOK }

func (r CallResult) Denied() bool { return r.Outcome == OutcomeDenied }

// Transient reports whether the failure was a transport error or a
// server-side fault rather than a deliberate rejection.
func (r CallResult) Transient() bool {
	return r.Outcome == OutcomeTransport || r.Outcome == OutcomeUnavailable
}

// Cause returns an error describing the failure, for logging or propagation.
// It returns nil for successful results.
func (r CallResult) Cause() error {
	if r.Outcome == OutcomeOK {
		return nil
	}
	if r.Err != nil {
		return r.Err
	}
	return fmt.Errorf("remote API returned status %d", r.Status)
}
