package handlers

import (
	"net/http"

	"drivemind/internal/contextutil"
	"drivemind/internal/service"
)

// IndexHandler handles HTTP requests for building the metadata index.
type IndexHandler struct {
	svc service.DriveQueryService
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(svc service.DriveQueryService) *IndexHandler {
	return &IndexHandler{svc: svc}
}

// IndexResponse represents the response from the index endpoint.
type IndexResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ServeHTTP rebuilds the user's metadata index. Unlike listing loads this
// is synchronous; callers poll nothing and get the final count back.
func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		logger.WarnContext(ctx, "index request without user_id")
		writeError(w, http.StatusBadRequest, "Missing user_id")
		return
	}
	force := r.URL.Query().Get("force") == "true"

	count, rebuilt, err := h.svc.IndexMetadata(ctx, userID, force)
	if err != nil {
		handleServiceError(w, r, err, "Failed to build index")
		return
	}

	if !rebuilt {
		writeJSON(w, http.StatusOK, IndexResponse{
			Message: "Index already exists. Use force=true to rebuild.",
		})
		return
	}
	writeJSON(w, http.StatusOK, IndexResponse{
		Message: "Metadata index built.",
		Count:   count,
	})
}
