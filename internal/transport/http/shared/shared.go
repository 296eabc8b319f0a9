// Package shared holds response helpers used by every HTTP handler.
package shared

import (
	"encoding/json"
	"net/http"

	"sokoni/internal/registration/regerr"
	dErrors "sokoni/pkg/domain-errors"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// WriteJSON renders v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps coded errors onto HTTP statuses. Registration codes map to
// client or server errors depending on which step failed; uncoded errors are
// a 500 with no detail leaked.
func WriteError(w http.ResponseWriter, err error) {
	if code := regerr.CodeOf(err); code != "" {
		WriteJSON(w, registrationStatus(code), errorResponse{
			Error: err.Error(),
			Code:  "REGISTRATION_" + string(code),
		})
		return
	}

	status := http.StatusInternalServerError
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation, dErrors.CodeInvalidInput, dErrors.CodeBadRequest:
		status = http.StatusBadRequest
	case dErrors.CodeNotFound:
		status = http.StatusNotFound
	case dErrors.CodeConflict:
		status = http.StatusConflict
	case dErrors.CodeForbidden:
		status = http.StatusForbidden
	case dErrors.CodeUnauthorized:
		status = http.StatusUnauthorized
	case dErrors.CodeRateLimited:
		status = http.StatusTooManyRequests
	case dErrors.CodeTimeout:
		status = http.StatusGatewayTimeout
	}
	if status == http.StatusInternalServerError {
		WriteJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	WriteJSON(w, status, errorResponse{Error: err.Error()})
}

func registrationStatus(code regerr.Code) int {
	switch code {
	case regerr.CodeCurrencyInvalid, regerr.CodeStoreNameRequired:
		return http.StatusBadRequest
	case regerr.CodeCodeExists, regerr.CodeEmailExists:
		return http.StatusConflict
	case regerr.CodeZonesMissing:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}
