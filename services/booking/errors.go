package booking

import (
	"errors"
	"fmt"
)

// Validation error codes. All are recoverable-by-the-user: handlers surface
// them as 400s and the in-progress session state is left untouched.
const (
	CodeNotFound             = "notFound"
	CodeDuplicateSelection   = "duplicateSelection"
	CodeBelowMinimum         = "belowMinimum"
	CodeEmptyCart            = "emptyCart"
	CodeMissingRequiredField = "missingRequiredField"
	CodeMissingPaymentProof  = "missingPaymentProof"
)

// ValidationError is a user-correctable rejection detected before any
// external call is made.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// AsValidation returns the ValidationError inside err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
