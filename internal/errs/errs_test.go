package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analyticsops/uaconf/internal/platform/analytics"
)

func TestNewValidation(t *testing.T) {
	err := NewValidation(http.StatusPreconditionFailed, "description has no account id")

	assert.Equal(t, 412, err.Status)
	assert.Equal(t, 41200, err.Code)
	assert.Equal(t, "validation failed (status 412, code 41200): description has no account id", err.Error())

	assert.True(t, IsValidation(err))
	assert.True(t, IsValidation(fmt.Errorf("outer: %w", err)))
	assert.False(t, IsValidation(errors.New("plain")))
	assert.False(t, IsValidation(nil))
}

func TestIsRemote(t *testing.T) {
	remote := &analytics.Error{Code: 503, Errors: []analytics.ErrorItem{{Reason: "backendError"}}}

	assert.True(t, IsRemote(remote))
	assert.True(t, IsRemote(fmt.Errorf("wrapped: %w", remote)))
	assert.False(t, IsRemote(errors.New("plain")))

	assert.True(t, IsTransientRemote(remote))
	assert.False(t, IsTransientRemote(&analytics.Error{Code: 403, Errors: []analytics.ErrorItem{{Reason: "insufficientPermissions"}}}))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap("apply", nil))

	cause := errors.New("connection reset")
	err := Wrap("reconcile", cause)

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "reconcile: connection reset", se.Error())
	assert.Equal(t, []string{"reconcile"}, se.Chain())
	assert.ErrorIs(t, err, cause)
}

func TestWrapExtendsChain(t *testing.T) {
	cause := NewValidation(http.StatusPreconditionFailed, "no account id")
	err := Wrap("apply", Wrap("reconcile", cause))

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"reconcile", "apply"}, se.Chain())

	// The original taxonomy remains reachable through the wrapper.
	assert.True(t, IsValidation(err))

	record := se.Record()
	assert.Contains(t, record, "chain")
	assert.Contains(t, record, "reconcile,apply")

	verbose := se.Verbose()
	assert.Contains(t, verbose, "apply:")
	assert.Contains(t, verbose, "  reconcile\n")
	assert.Contains(t, verbose, "cause: "+cause.Error())
}
