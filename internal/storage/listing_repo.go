package storage

//go:generate mockgen -destination=mocks/mock_listing_store.go -package=mocks drivemind/internal/storage ListingStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"drivemind/internal/drive"
)

// ListingStore caches the raw Drive file list per user so reindexing does
// not require another full Drive crawl. One row per user, replaced
// wholesale on every fetch.
type ListingStore interface {
	// Get returns the cached listings for a user.
	// Returns nil and ErrNotFound when nothing has been fetched yet.
	Get(ctx context.Context, userID string) ([]drive.Listing, error)
	// Exists reports whether a cached listing is present for the user.
	Exists(ctx context.Context, userID string) (bool, error)
	// Save replaces the user's cached listings.
	Save(ctx context.Context, userID string, listings []drive.Listing) error
}

// ListingRepo provides methods for listing cache operations.
// It implements the ListingStore interface.
type ListingRepo struct {
	db *sql.DB
}

// NewListingRepo creates a new ListingRepo.
func NewListingRepo(db *sql.DB) *ListingRepo {
	return &ListingRepo{db: db}
}

// Get returns the cached listings for a user.
func (r *ListingRepo) Get(ctx context.Context, userID string) ([]drive.Listing, error) {
	var payload string

	err := r.db.QueryRowContext(ctx,
		"SELECT payload FROM listings WHERE user_id = ?",
		userID,
	).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}

	var listings []drive.Listing
	if err := json.Unmarshal([]byte(payload), &listings); err != nil {
		return nil, fmt.Errorf("failed to decode cached listings: %w", err)
	}
	return listings, nil
}

// Exists reports whether a cached listing is present for the user.
func (r *ListingRepo) Exists(ctx context.Context, userID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM listings WHERE user_id = ?",
		userID,
	).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check listings: %w", err)
	}
	return true, nil
}

// Save replaces the user's cached listings.
func (r *ListingRepo) Save(ctx context.Context, userID string, listings []drive.Listing) error {
	payload, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("failed to encode listings: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO listings (user_id, payload, file_count, fetched_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id) DO UPDATE SET
		 payload = excluded.payload,
		 file_count = excluded.file_count,
		 fetched_at = CURRENT_TIMESTAMP`,
		userID, string(payload), len(listings),
	)
	if err != nil {
		return fmt.Errorf("failed to save listings: %w", err)
	}

	return nil
}
