// Package drive wraps the Google Drive v3 API behind a small Provider
// interface so the indexer and answer composer can be tested without
// network access.
package drive

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks drivemind/internal/drive Provider

// Listing is one Drive file as returned by the files.list endpoint,
// restricted to the fields the rest of the system needs. ModifiedTime is
// kept as the RFC 3339 string Drive returns; callers that only want the
// day truncate it themselves.
type Listing struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	MimeType       string   `json:"mimeType"`
	ModifiedTime   string   `json:"modifiedTime,omitempty"`
	Parents        []string `json:"parents,omitempty"`
	WebViewLink    string   `json:"webViewLink,omitempty"`
	WebContentLink string   `json:"webContentLink,omitempty"`
	ThumbnailLink  string   `json:"thumbnailLink,omitempty"`
}

// Provider is a per-user view of Google Drive. Implementations carry the
// user's credentials; one Provider never sees another user's files.
type Provider interface {
	// ListAll pages through every file visible to the user.
	ListAll(ctx context.Context) ([]Listing, error)

	// ListChildren returns up to limit direct, non-trashed children of a
	// folder.
	ListChildren(ctx context.Context, folderID string, limit int) ([]Listing, error)

	// Download streams a binary file's content. The caller closes the
	// reader.
	Download(ctx context.Context, fileID string) (io.ReadCloser, error)

	// Export streams a Google Workspace file converted to mimeType. The
	// caller closes the reader.
	Export(ctx context.Context, fileID, mimeType string) (io.ReadCloser, error)
}
