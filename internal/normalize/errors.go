// Package normalize coerces raw model output into the application's typed
// shapes. Missing or mis-typed optional fields take documented defaults, and
// list items lacking identifiers are back-filled.
package normalize

import "fmt"

// MalformedResponseError represents a response that claimed to be JSON but
// could not be used as such.
type MalformedResponseError struct {
	Capability string
	Message    string
	Cause      error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed %s response: %s: %v", e.Capability, e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed %s response: %s", e.Capability, e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
