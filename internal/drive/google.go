package drive

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/oauth2"
	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Google Workspace MIME types and their export targets.
const (
	MimeTypeGoogleDoc    = "application/vnd.google-apps.document"
	MimeTypeGoogleSheet  = "application/vnd.google-apps.spreadsheet"
	MimeTypeGoogleSlides = "application/vnd.google-apps.presentation"
	MimeTypeFolder       = "application/vnd.google-apps.folder"

	ExportMimeText = "text/plain"
	ExportMimeCSV  = "text/csv"
	ExportMimePDF  = "application/pdf"
)

// ExportMimeFor returns the export format for a Google Workspace MIME
// type, or "" when the type is not exportable.
func ExportMimeFor(mimeType string) string {
	switch mimeType {
	case MimeTypeGoogleDoc:
		return ExportMimeText
	case MimeTypeGoogleSheet:
		return ExportMimeCSV
	case MimeTypeGoogleSlides:
		return ExportMimePDF
	}
	return ""
}

const (
	listPageSize = 1000
	listFields   = "nextPageToken, files(id, name, mimeType, modifiedTime, parents, webViewLink, webContentLink, thumbnailLink)"
)

// GoogleProvider implements Provider on the official Drive v3 client.
type GoogleProvider struct {
	svc *drivev3.Service
}

// NewGoogleProvider builds a Drive client over the user's token source.
// The token source refreshes expired access tokens transparently.
func NewGoogleProvider(ctx context.Context, ts oauth2.TokenSource) (*GoogleProvider, error) {
	svc, err := drivev3.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("drive: create service: %w", err)
	}
	return &GoogleProvider{svc: svc}, nil
}

// ListAll pages through files.list until the page token runs out.
func (p *GoogleProvider) ListAll(ctx context.Context) ([]Listing, error) {
	var out []Listing
	pageToken := ""
	for {
		call := p.svc.Files.List().
			Context(ctx).
			PageSize(listPageSize).
			Fields(listFields)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("drive: list files: %w", err)
		}
		for _, f := range page.Files {
			out = append(out, toListing(f))
		}
		if page.NextPageToken == "" {
			return out, nil
		}
		pageToken = page.NextPageToken
	}
}

// ListChildren returns up to limit direct, non-trashed children of folderID.
func (p *GoogleProvider) ListChildren(ctx context.Context, folderID string, limit int) ([]Listing, error) {
	call := p.svc.Files.List().
		Context(ctx).
		Q(fmt.Sprintf("'%s' in parents and trashed = false", folderID)).
		PageSize(int64(limit)).
		Fields(listFields)

	page, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("drive: list folder %s: %w", folderID, err)
	}

	out := make([]Listing, 0, len(page.Files))
	for _, f := range page.Files {
		out = append(out, toListing(f))
	}
	return out, nil
}

// Download streams a regular file's bytes.
func (p *GoogleProvider) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	resp, err := p.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("drive: download %s: %w", fileID, err)
	}
	return resp.Body, nil
}

// Export streams a Google Workspace file converted to mimeType.
func (p *GoogleProvider) Export(ctx context.Context, fileID, mimeType string) (io.ReadCloser, error) {
	resp, err := p.svc.Files.Export(fileID, mimeType).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("drive: export %s as %s: %w", fileID, mimeType, err)
	}
	return resp.Body, nil
}

func toListing(f *drivev3.File) Listing {
	return Listing{
		ID:             f.Id,
		Name:           f.Name,
		MimeType:       f.MimeType,
		ModifiedTime:   f.ModifiedTime,
		Parents:        f.Parents,
		WebViewLink:    f.WebViewLink,
		WebContentLink: f.WebContentLink,
		ThumbnailLink:  f.ThumbnailLink,
	}
}
