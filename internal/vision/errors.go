package vision

import "fmt"

// TransportError reports a failed call to the vision endpoint: either a
// non-200 status (Status and Body set) or a network-level failure (Cause
// set). Cancellation and deadline expiry surface through Cause.
type TransportError struct {
	Status int
	Body   string
	Cause  error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vision request failed: %v", e.Cause)
	}
	return fmt.Sprintf("vision endpoint returned status %d: %s", e.Status, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
