package pkg

import (
	"errors"
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every invalid field of a request body, and is written
// to the client as {message, errors}.
type ValidationError struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		Message: message,
		Errors:  []FieldError{},
	}
}

func (e *ValidationError) Add(field, format string, args ...any) *ValidationError {
	e.Errors = append(e.Errors, FieldError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
	return e
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// OrNil returns nil when no field errors were collected, so callers can
// `return verr.OrNil()` from a Validate method.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("%s [%s]", e.Message, strings.Join(fields, "; "))
}

func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
