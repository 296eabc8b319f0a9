package regerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorRendersPrefix(t *testing.T) {
	err := New(CodeCodeExists, "company code acme is taken")
	assert.Equal(t, "REGISTRATION_CODE_EXISTS: company code acme is taken", err.Error())
}

func TestWrapDoesNotNestCodes(t *testing.T) {
	inner := New(CodeStockLocationAssignFailed, "stock location not attached")
	wrapped := Wrap(inner, CodeProvisioningFailed, "provisioning failed")

	assert.Same(t, inner, wrapped)
	assert.Equal(t, CodeStockLocationAssignFailed, CodeOf(wrapped))
}

func TestWrapUncodedError(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := Wrap(cause, CodeTenantCreateFailed, "could not create tenant")

	require.Error(t, wrapped)
	assert.True(t, Is(wrapped, CodeTenantCreateFailed))
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "REGISTRATION_TENANT_CREATE_FAILED: could not create tenant", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, CodeProvisioningFailed, "ignored"))
}

func TestCodeOfUncoded(t *testing.T) {
	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
	assert.False(t, Is(errors.New("plain"), CodeProvisioningFailed))
}
