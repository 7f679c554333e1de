package storage

//go:generate mockgen -destination=mocks/mock_credential_store.go -package=mocks drivemind/internal/storage CredentialStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// CredentialRecord holds one user's OAuth tokens and verified email.
type CredentialRecord struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
}

// CredentialStore defines the interface for credential storage operations.
type CredentialStore interface {
	// Get returns a user's stored credential.
	// Returns nil and ErrNotFound if the user has never logged in.
	Get(ctx context.Context, userID string) (*CredentialRecord, error)
	// Upsert inserts a new credential or replaces an existing one.
	Upsert(ctx context.Context, cred *CredentialRecord) error
}

// CredentialRepo provides methods for credential operations.
// It implements the CredentialStore interface.
type CredentialRepo struct {
	db *sql.DB
}

// NewCredentialRepo creates a new CredentialRepo.
func NewCredentialRepo(db *sql.DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Get returns a user's stored credential.
// Returns nil and ErrNotFound if the user has never logged in.
func (r *CredentialRepo) Get(ctx context.Context, userID string) (*CredentialRecord, error) {
	var cred CredentialRecord
	var refresh sql.NullString

	err := r.db.QueryRowContext(ctx,
		"SELECT user_id, email, access_token, refresh_token FROM credentials WHERE user_id = ?",
		userID,
	).Scan(&cred.UserID, &cred.Email, &cred.AccessToken, &refresh)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query credential: %w", err)
	}

	cred.RefreshToken = refresh.String
	return &cred, nil
}

// Upsert inserts a new credential or replaces an existing one. A refresh
// token is only overwritten with a non-empty value so a re-login that
// omits one does not lose the token we already hold.
func (r *CredentialRepo) Upsert(ctx context.Context, cred *CredentialRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO credentials (user_id, email, access_token, refresh_token, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id) DO UPDATE SET
		 email = excluded.email,
		 access_token = excluded.access_token,
		 refresh_token = CASE WHEN excluded.refresh_token != '' THEN excluded.refresh_token ELSE credentials.refresh_token END,
		 updated_at = CURRENT_TIMESTAMP`,
		cred.UserID, cred.Email, cred.AccessToken, cred.RefreshToken,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert credential: %w", err)
	}

	return nil
}
