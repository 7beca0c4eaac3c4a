package relocator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState indicates a Builder was asked to build before it
	// was fully configured.
	ErrInvalidState = errors.New("invalid builder state")
	// ErrMissingRequiredField indicates a required Builder field was unset or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

// BuildError is returned by [Builder.Build] when required fields are
// missing. It matches both [ErrInvalidState] and [ErrMissingRequiredField].
type BuildError struct {
	Fields FieldErrors
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%v: %v: %v", ErrInvalidState, ErrMissingRequiredField, e.Fields)
}

func (e *BuildError) Unwrap() []error {
	return []error{ErrInvalidState, ErrMissingRequiredField, e.Fields}
}
