// Package auth implements the Google OAuth2 login flow: building the
// consent URL, exchanging the authorization code, and verifying the ID
// token to establish a stable user identity.
package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

//go:generate mockgen -destination=mocks/mock_auth.go -package=mocks drivemind/internal/auth Authenticator

// Scopes requested at consent time. Read-only: the system never writes to
// the user's Drive.
var Scopes = []string{
	"https://www.googleapis.com/auth/drive.readonly",
	"https://www.googleapis.com/auth/spreadsheets.readonly",
	"openid",
	"email",
}

// Credential is the outcome of a completed login: the verified identity
// plus the tokens needed for later Drive access. UserID is the ID token's
// subject claim, stable across logins.
type Credential struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
}

// Authenticator is the login flow as seen by the HTTP layer.
type Authenticator interface {
	// LoginURL builds the Google consent URL carrying the given CSRF state.
	LoginURL(state string) string

	// Exchange trades an authorization code for a verified Credential.
	Exchange(ctx context.Context, code string) (Credential, error)
}

// Google implements Authenticator against Google's OAuth2 endpoints.
type Google struct {
	oauth *oauth2.Config
}

// NewGoogle builds the flow for one OAuth client registration.
func NewGoogle(clientID, clientSecret, redirectURL string) *Google {
	return &Google{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       Scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

// LoginURL builds the consent URL. Offline access plus forced consent so
// Google issues a refresh token on every login, not just the first.
func (g *Google) LoginURL(state string) string {
	return g.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades the authorization code for tokens and verifies the ID
// token against our client ID. The subject claim becomes the user ID.
func (g *Google) Exchange(ctx context.Context, code string) (Credential, error) {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return Credential{}, fmt.Errorf("auth: exchange code: %w", err)
	}

	rawID, ok := token.Extra("id_token").(string)
	if !ok || rawID == "" {
		return Credential{}, fmt.Errorf("auth: token response carried no id_token")
	}

	payload, err := idtoken.Validate(ctx, rawID, g.oauth.ClientID)
	if err != nil {
		return Credential{}, fmt.Errorf("auth: verify id token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	return Credential{
		UserID:       payload.Subject,
		Email:        email,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

// TokenSource builds a self-refreshing token source from stored tokens.
// Passing an expired access token is fine; the refresh token renews it on
// first use.
func (g *Google) TokenSource(ctx context.Context, cred Credential) oauth2.TokenSource {
	return g.oauth.TokenSource(ctx, &oauth2.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
	})
}
