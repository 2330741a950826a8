package errdefs_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wuxler/imgref/pkg/errdefs"
)

var errTest = errors.New("this is a test")

func TestErrors(t *testing.T) {
	testcases := []struct {
		name   string
		err    error
		status int
	}{
		{"NotFound", errdefs.ErrNotFound, http.StatusNotFound},
		{"InvalidParameter", errdefs.ErrInvalidParameter, http.StatusBadRequest},
		{"Unavailable", errdefs.ErrUnavailable, http.StatusServiceUnavailable},
		{"System", errdefs.ErrSystem, http.StatusInternalServerError},
		{"Canceled", errdefs.ErrCanceled, 499},
		{"DeadlineExceeded", errdefs.ErrDeadlineExceeded, http.StatusGatewayTimeout},
		{"Unsupported", errdefs.ErrUnsupported, http.StatusNotImplemented},
	}

	for _, tc := range testcases {
		t.Run("NewE_"+tc.name, func(t *testing.T) {
			assert.NotErrorIs(t, errTest, tc.err)
			e := errdefs.NewE(tc.err, errTest)
			assert.ErrorIs(t, e, tc.err)
			assert.ErrorIs(t, e, errTest)
		})
	}

	for _, tc := range testcases {
		t.Run("Newf_"+tc.name, func(t *testing.T) {
			e := errdefs.Newf(tc.err, "this is a test")
			assert.ErrorIs(t, e, tc.err)
			assert.Equal(t, tc.status, errdefs.HTTPStatus(e))
		})
	}
}

func TestNewE(t *testing.T) {
	assert.NoError(t, errdefs.NewE(errdefs.ErrNotFound, nil))

	wrapped := errdefs.Newf(errdefs.ErrNotFound, "missing")
	assert.Same(t, wrapped, errdefs.NewE(errdefs.ErrNotFound, wrapped))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, errdefs.HTTPStatus(nil))
	assert.Equal(t, http.StatusInternalServerError, errdefs.HTTPStatus(errTest))
}

func TestFromContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, errdefs.FromContext(ctx.Err()), errdefs.ErrCanceled)
	assert.Equal(t, 499, errdefs.HTTPStatus(errdefs.FromContext(ctx.Err())))

	ctx, cancel = context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()
	assert.ErrorIs(t, errdefs.FromContext(ctx.Err()), errdefs.ErrDeadlineExceeded)

	assert.Same(t, errTest, errdefs.FromContext(errTest))
	assert.NoError(t, errdefs.FromContext(nil))
}
