package handlers

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"drivemind/internal/auth"
	"drivemind/internal/contextutil"
	"drivemind/internal/service"
	"drivemind/internal/storage"
)

// AuthHandler handles the Google OAuth login flow.
type AuthHandler struct {
	authenticator auth.Authenticator
	credentials   storage.CredentialStore
	artifacts     service.ArtifactStore
	frontendURL   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authenticator auth.Authenticator, credentials storage.CredentialStore, artifacts service.ArtifactStore, frontendURL string) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		credentials:   credentials,
		artifacts:     artifacts,
		frontendURL:   frontendURL,
	}
}

// Login redirects the browser to Google's consent screen.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.Redirect(w, r, h.authenticator.LoginURL(state), http.StatusTemporaryRedirect)
}

// Callback completes the OAuth exchange, stores the credential, and sends
// the browser back to the frontend with the user id attached.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	code := r.URL.Query().Get("code")
	if code == "" {
		logger.WarnContext(ctx, "oauth callback without code")
		writeError(w, http.StatusBadRequest, "Missing authorization code")
		return
	}

	cred, err := h.authenticator.Exchange(ctx, code)
	if err != nil {
		logger.ErrorContext(ctx, "oauth exchange failed", "error", err)
		writeError(w, http.StatusUnauthorized, "Authorization failed")
		return
	}

	if err := h.credentials.Upsert(ctx, &storage.CredentialRecord{
		UserID:       cred.UserID,
		Email:        cred.Email,
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
	}); err != nil {
		logger.ErrorContext(ctx, "failed to store credential", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store credential")
		return
	}

	// A fresh login may belong to a different Drive state; stale cached
	// downloads must not leak into the new session.
	if err := h.artifacts.ClearDownloads(cred.UserID); err != nil {
		logger.WarnContext(ctx, "failed to clear cached downloads", "user_id", cred.UserID, "error", err)
	}

	logger.InfoContext(ctx, "user logged in", "user_id", cred.UserID)
	http.Redirect(w, r, h.frontendURL+"?user_id="+url.QueryEscape(cred.UserID), http.StatusTemporaryRedirect)
}
