package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"sokoni/internal/registration/regerr"
	dErrors "sokoni/pkg/domain-errors"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"rate limited is 429", dErrors.New(dErrors.CodeRateLimited, "too many attempts"), http.StatusTooManyRequests},
		{"transaction timeout is 504", dErrors.New(dErrors.CodeTimeout, "transaction aborted"), http.StatusGatewayTimeout},
		{"bad request is 400", dErrors.New(dErrors.CodeBadRequest, "invalid body"), http.StatusBadRequest},
		{"forbidden is 403", dErrors.New(dErrors.CodeForbidden, "tenant not visible"), http.StatusForbidden},
		{"duplicate code is 409", regerr.New(regerr.CodeCodeExists, "code taken"), http.StatusConflict},
		{"missing zones is 412", regerr.New(regerr.CodeZonesMissing, "no default zones"), http.StatusPreconditionFailed},
		{"uncoded is 500", errors.New("pool exhausted"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestWriteErrorHidesUncodedDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, rec.Body.String(), "internal server error")
}
