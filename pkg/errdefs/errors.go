package errdefs

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound signals that the requested object doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidParameter signals that the user input is invalid.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnavailable signals that the requested action/subsystem is not available.
	ErrUnavailable = errors.New("unavailable")

	// ErrSystem signals that some internal error occurred.
	ErrSystem = errors.New("system error")

	// ErrCanceled signals that the action was canceled.
	ErrCanceled = errors.New("canceled")

	// ErrDeadlineExceeded signals that the deadline was reached before the action completed.
	ErrDeadlineExceeded = errors.New("deadline exceeded")

	// ErrUnsupported indicates that the action was not supported.
	ErrUnsupported = errors.New("unsupported")
)

var statusCodes = []struct {
	err    error
	status int
}{
	{ErrInvalidParameter, http.StatusBadRequest},
	{ErrNotFound, http.StatusNotFound},
	{ErrUnsupported, http.StatusNotImplemented},
	{ErrUnavailable, http.StatusServiceUnavailable},
	{ErrCanceled, 499},
	{ErrDeadlineExceeded, http.StatusGatewayTimeout},
	{ErrSystem, http.StatusInternalServerError},
}

// HTTPStatus returns the HTTP status code matching the kind of err. The
// first matching kind wins, unknown errors map to 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	for _, sc := range statusCodes {
		if errors.Is(err, sc.err) {
			return sc.status
		}
	}
	return http.StatusInternalServerError
}
