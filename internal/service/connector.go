package service

import (
	"context"

	"drivemind/internal/auth"
	"drivemind/internal/drive"
	"drivemind/internal/storage"
)

// GoogleConnector builds Drive clients backed by a self-refreshing OAuth
// token source.
type GoogleConnector struct {
	auth *auth.Google
}

// NewGoogleConnector creates a connector over the given authenticator.
func NewGoogleConnector(a *auth.Google) *GoogleConnector {
	return &GoogleConnector{auth: a}
}

// ProviderFor builds a Drive client for a stored credential.
func (c *GoogleConnector) ProviderFor(ctx context.Context, cred *storage.CredentialRecord) (drive.Provider, error) {
	ts := c.auth.TokenSource(ctx, auth.Credential{
		UserID:       cred.UserID,
		Email:        cred.Email,
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
	})
	return drive.NewGoogleProvider(ctx, ts)
}
