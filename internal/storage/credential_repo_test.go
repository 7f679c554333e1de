package storage

import (
	"context"
	"testing"
)

func openTestDB(t *testing.T) *CredentialRepo {
	t.Helper()

	db, err := New(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return NewCredentialRepo(db)
}

func TestCredentialRepo_GetNotFound(t *testing.T) {
	repo := openTestDB(t)

	if _, err := repo.Get(context.Background(), "nobody"); err != ErrNotFound {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestCredentialRepo_UpsertAndGet(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	cred := &CredentialRecord{
		UserID:       "sub-123",
		Email:        "user@example.com",
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
	}
	if err := repo.Upsert(ctx, cred); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := repo.Get(ctx, "sub-123")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if *got != *cred {
		t.Errorf("Get() = %+v, want %+v", got, cred)
	}
}

func TestCredentialRepo_UpsertPreservesRefreshToken(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	first := &CredentialRecord{UserID: "sub-123", Email: "user@example.com", AccessToken: "at-1", RefreshToken: "rt-1"}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	// Re-login without a refresh token must keep the stored one.
	second := &CredentialRecord{UserID: "sub-123", Email: "user@example.com", AccessToken: "at-2"}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := repo.Get(ctx, "sub-123")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.AccessToken != "at-2" {
		t.Errorf("AccessToken = %q, want at-2", got.AccessToken)
	}
	if got.RefreshToken != "rt-1" {
		t.Errorf("RefreshToken = %q, want preserved rt-1", got.RefreshToken)
	}
}
