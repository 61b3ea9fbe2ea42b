// Package errors provides domain error types shared across the bot's
// validation and command layers.
package errors

import (
	"errors"
	"fmt"
)

// InvalidInputError reports user input that failed validation. It is always
// user-correctable: commands render it inline and make no backend call.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewInvalidInput creates an InvalidInputError for the given field.
func NewInvalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

// AsInvalidInput unwraps err into an InvalidInputError, or returns nil.
func AsInvalidInput(err error) *InvalidInputError {
	var ie *InvalidInputError
	if errors.As(err, &ie) {
		return ie
	}
	return nil
}
