package movie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumericField indicates a year, runtime or score that does not parse.
	ErrInvalidNumericField = errors.New("invalid numeric field")

	// ErrUnknownField indicates a field identifier outside the six movie attributes.
	ErrUnknownField = errors.New("unknown field")
)

// FieldError describes a rejected field value.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrUnknownField) {
		return fmt.Sprintf("unknown field %q", e.Field)
	}
	return fmt.Sprintf("%s: %q is not a valid number", e.Field, e.Value)
}

// Is implements errors.Is support
func (e *FieldError) Is(target error) bool {
	return target == e.Err
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
