package factory

import (
	"errors"
	"fmt"
)

var (
	// ErrNilConstructor is returned when registering a nil constructor.
	ErrNilConstructor = errors.New("factory: nil constructor")

	// ErrEmptyName is returned when registering under an empty name.
	ErrEmptyName = errors.New("factory: empty name")
)

// AlreadyRegisteredError is returned when a name is registered twice.
type AlreadyRegisteredError struct {
	Name string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("factory: %q is already registered", e.Name)
}

func IsAlreadyRegisteredError(err error) bool {
	var e *AlreadyRegisteredError
	return errors.As(err, &e)
}

// UnknownNameError is returned when requesting a product under an
// unregistered name. Known carries the sorted registered names for
// diagnostics.
type UnknownNameError struct {
	Name  string
	Known []string
}

func (e *UnknownNameError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("factory: unknown name %q (registry is empty)", e.Name)
	}
	return fmt.Sprintf("factory: unknown name %q (known: %v)", e.Name, e.Known)
}

func IsUnknownNameError(err error) bool {
	var e *UnknownNameError
	return errors.As(err, &e)
}
