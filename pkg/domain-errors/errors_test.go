package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapfFormatsMessageAndKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")

	err := Wrapf(cause, CodeNotFound, "tenant %s not found", "acme")
	require.Error(t, err)
	assert.Equal(t, "tenant acme not found: connection refused", err.Error())
	assert.Equal(t, CodeNotFound, CodeOf(err))
	assert.ErrorIs(t, err, cause)
}

func TestWrapfNilErrorIsNil(t *testing.T) {
	assert.NoError(t, Wrapf(nil, CodeInternal, "ignored %d", 1))
}

func TestHasCodeWalksWrappedChain(t *testing.T) {
	inner := New(CodeForbidden, "tenant not visible")
	outer := Wrapf(inner, CodeInternal, "create role")

	assert.True(t, HasCode(outer, CodeInternal))
	assert.True(t, HasCode(outer, CodeForbidden))
	assert.False(t, HasCode(outer, CodeTimeout))
	assert.Equal(t, CodeInternal, CodeOf(outer))
}
