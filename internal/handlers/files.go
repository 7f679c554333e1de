package handlers

import (
	"net/http"

	"drivemind/internal/contextutil"
	"drivemind/internal/service"
)

// FilesHandler handles HTTP requests for loading Drive file listings.
type FilesHandler struct {
	svc service.DriveQueryService
}

// NewFilesHandler creates a new FilesHandler.
func NewFilesHandler(svc service.DriveQueryService) *FilesHandler {
	return &FilesHandler{svc: svc}
}

// FilesResponse represents the response from the files endpoint.
type FilesResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ServeHTTP loads (or reuses) the user's Drive listing.
func (h *FilesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		logger.WarnContext(ctx, "files request without user_id")
		writeError(w, http.StatusBadRequest, "Missing user_id")
		return
	}
	force := r.URL.Query().Get("force") == "true"

	count, refreshed, err := h.svc.LoadFiles(ctx, userID, force)
	if err != nil {
		handleServiceError(w, r, err, "Failed to load Drive files")
		return
	}

	message := "Loaded stored file listing."
	if refreshed {
		message = "Fetched file listing from Google Drive."
	}
	writeJSON(w, http.StatusOK, FilesResponse{Message: message, Count: count})
}
