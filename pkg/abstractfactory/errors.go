package abstractfactory

import (
	"errors"
	"fmt"
)

// UnknownFormatError is returned by For when no codec family is registered
// under the requested name.
type UnknownFormatError struct {
	Name  string
	Known []string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("abstractfactory: unknown format %q (known: %v)", e.Name, e.Known)
}

func IsUnknownFormatError(err error) bool {
	var e *UnknownFormatError
	return errors.As(err, &e)
}
