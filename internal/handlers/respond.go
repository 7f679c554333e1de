// Package handlers exposes the HTTP surface: OAuth login, Drive listing
// and indexing triggers, the query endpoint, and a health check.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"drivemind/internal/contextutil"
	"drivemind/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// handleServiceError maps service errors to appropriate HTTP status codes.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(r.Context())
	logger.ErrorContext(r.Context(), "service error", "error", err)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}
	if errors.Is(err, service.ErrUnauthenticated) {
		writeError(w, http.StatusUnauthorized, "User is not authenticated. Log in first.")
		return
	}
	if errors.Is(err, service.ErrNoListings) {
		writeError(w, http.StatusBadRequest, "No file listings loaded. Load Drive files first.")
		return
	}

	writeError(w, http.StatusInternalServerError, defaultMsg)
}
