package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorHelpers(t *testing.T) {
	err := NewAPIError(409, "Este artículo ya se usó en remitos. Se desactivó")
	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, 409, StatusOf(err))
	assert.Equal(t, "Este artículo ya se usó en remitos. Se desactivó", ServerMessage(err))
}

func TestWrappedErrorsUnwrap(t *testing.T) {
	err := fmt.Errorf("deleting articulo: %w", NewAPIError(404, ""))
	assert.True(t, IsNotFound(err))
	assert.Equal(t, 404, StatusOf(err))
}

func TestNonAPIErrors(t *testing.T) {
	err := errors.New("boom")
	assert.Nil(t, AsAPIError(err))
	assert.Equal(t, 0, StatusOf(err))
	assert.Empty(t, ServerMessage(err))
	assert.False(t, IsConflict(err))
}

func TestTransportErrorHasNoStatus(t *testing.T) {
	err := NewTransportError(errors.New("connection refused"))
	assert.Equal(t, 0, err.Status)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestTransportErrorHasNoServerMessage(t *testing.T) {
	// The wrapped Go error stays available for logs via Error(), but it
	// must never surface as a user-facing server message.
	err := NewTransportError(errors.New(`dial tcp 127.0.0.1:5095: connect: connection refused`))
	assert.Empty(t, ServerMessage(err))
}
