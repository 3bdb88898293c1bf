package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig wraps all field validation failures returned by Build.
	ErrInvalidConfig = errors.New("builder: invalid server configuration")
)

// FieldError describes a single field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

func IsFieldError(err error) bool {
	var e *FieldError
	return errors.As(err, &e)
}
