package duty

import "fmt"

// ValidationError marks a caller error: malformed HS code or country code,
// non-positive values, or a missing quantity. Never retried, surfaced
// verbatim to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ErrMissingQuantity reports that a specific-rate duty is in effect but no
// quantity was supplied.
func ErrMissingQuantity() *ValidationError {
	return &ValidationError{
		Field:   "quantity",
		Message: "quantity is required when a specific rate applies",
	}
}
