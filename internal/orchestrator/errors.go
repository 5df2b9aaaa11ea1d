package orchestrator

import "fmt"

// ErrIncompleteSubmission indicates the property record is missing one of the
// required fields (type, price, location). No network call was issued.
type ErrIncompleteSubmission struct {
	Cause error
}

func (e *ErrIncompleteSubmission) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("incomplete submission: %v", e.Cause)
	}
	return "incomplete submission"
}

func (e *ErrIncompleteSubmission) Unwrap() error {
	return e.Cause
}
