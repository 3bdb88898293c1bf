package singleton

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInit is returned when a nil initializer is supplied.
	ErrNilInit = errors.New("singleton: nil initializer")

	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the config struct.
	ErrParsingConfig = errors.New("singleton: failed to parse environment into config")
)

// TypeMismatchError is returned by Instance when a key already holds a value
// of a different type than the one requested.
type TypeMismatchError struct {
	Key  string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("singleton: instance %q holds %s, requested %s", e.Key, e.Got, e.Want)
}

func IsTypeMismatchError(err error) bool {
	var e *TypeMismatchError
	return errors.As(err, &e)
}
