package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carbontrade/carboncert/internal/apperrors"
)

// errorEnvelope is the JSON error body returned to callers.
type errorEnvelope struct {
	StatusCode int `json:"statusCode"`
	// Message is a string for most errors and a []string for
	// field-level validation failures.
	Message any `json:"message"`
}

// writeJSON serializes v to the response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto the HTTP error envelope.
// Validation failures keep their field-level messages; credential and
// ownership failures stay deliberately generic.
func writeError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.AsValidation(err); ok {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{
			StatusCode: http.StatusBadRequest,
			Message:    ve.Messages,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorEnvelope{
			StatusCode: http.StatusConflict,
			Message:    "User with that email already exists",
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		writeJSON(w, http.StatusBadRequest, errorEnvelope{
			StatusCode: http.StatusBadRequest,
			Message:    "Wrong credentials provided",
		})
	case errors.Is(err, apperrors.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorEnvelope{
			StatusCode: http.StatusUnauthorized,
			Message:    "Unauthorized",
		})
	case errors.Is(err, apperrors.ErrCertificateNotFound):
		writeJSON(w, http.StatusNotFound, errorEnvelope{
			StatusCode: http.StatusNotFound,
			Message:    "Not Found",
		})
	default:
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
		})
	}
}
