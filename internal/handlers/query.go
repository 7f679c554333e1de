package handlers

import (
	"encoding/json"
	"net/http"

	"drivemind/internal/answer"
	"drivemind/internal/contextutil"
	"drivemind/internal/service"
)

// QueryHandler handles HTTP requests for querying Drive contents.
type QueryHandler struct {
	svc service.DriveQueryService
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(svc service.DriveQueryService) *QueryHandler {
	return &QueryHandler{svc: svc}
}

// QueryRequest represents the HTTP request payload for a query.
type QueryRequest struct {
	UserID  string        `json:"user_id"`
	Query   string        `json:"query"`
	History []answer.Turn `json:"history"`
}

// ServeHTTP answers a free-text question about the user's Drive.
func (h *QueryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.Query(ctx, service.QueryRequest{
		UserID:  req.UserID,
		Query:   req.Query,
		History: req.History,
	})
	if err != nil {
		handleServiceError(w, r, err, "Failed to answer query")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
