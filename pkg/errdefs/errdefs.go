// Package errdefs defines the error kinds shared by imgref packages and the
// helpers attaching a kind to a detailed error.
package errdefs

import (
	"context"
	"errors"
	"fmt"
)

// Newf returns an error of kind base carrying the formatted detail. Both
// base and the detail are reachable with errors.Is and errors.As.
func Newf(base error, format string, args ...any) error {
	return errors.Join(base, fmt.Errorf(format, args...))
}

// NewE attaches the kind base to err. A nil err or an err already of kind
// base is returned unchanged.
func NewE(base error, err error) error {
	if err == nil || errors.Is(err, base) {
		return err
	}
	return errors.Join(base, err)
}

// FromContext attaches ErrCanceled or ErrDeadlineExceeded to an error
// caused by a done context.Context. Other errors are returned unchanged.
func FromContext(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return NewE(ErrCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return NewE(ErrDeadlineExceeded, err)
	}
	return err
}
