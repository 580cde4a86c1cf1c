package extraction

import "fmt"

// DecodeError represents a hard failure decoding the input PDF. It is the
// only error class the import pipeline can surface; heuristic misses degrade
// to empty fields instead.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf decode failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf decode failed: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
