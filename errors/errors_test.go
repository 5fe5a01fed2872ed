package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(New("something else")))
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(Wrap(ErrNotFound, "no object for designation")))
	assert.True(t, IsNotFoundError(NewNotFoundError("no NEO with name %q", "Eros")))
}

func TestIsMalformedInputError(t *testing.T) {
	assert.False(t, IsMalformedInputError(nil))
	assert.False(t, IsMalformedInputError(ErrNotFound))
	assert.True(t, IsMalformedInputError(NewMalformedInputError("missing column %q", "pdes")))
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, Is(ErrNotFound, ErrMalformedInput))
	assert.False(t, Is(ErrMalformedInput, ErrInvalidRequest))
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(Wrap(ErrMalformedInput, "missing header"), "loading objects")
	require.Error(t, err)
	assert.True(t, Is(err, ErrMalformedInput))
	assert.Contains(t, err.Error(), "loading objects")
}
