// Package assemble turns text-capable search hits into a single grounding
// context: acquire content through a per-user disk cache, extract plain
// text, chunk it, and keep each document's chunks most similar to the
// query.
package assemble

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"drivemind/internal/artifact"
	"drivemind/internal/drive"
	"drivemind/internal/extract"
	"drivemind/internal/filemeta"
	"drivemind/internal/llm"
)

// Assembler builds grounding context strings from matched records.
type Assembler struct {
	embedder  llm.EmbeddingService
	registry  *extract.Registry
	artifacts *artifact.Store
	logger    *slog.Logger
}

// NewAssembler creates an assembler.
func NewAssembler(embedder llm.EmbeddingService, registry *extract.Registry, artifacts *artifact.Store) *Assembler {
	return &Assembler{
		embedder:  embedder,
		registry:  registry,
		artifacts: artifacts,
		logger:    slog.Default(),
	}
}

// BuildContext acquires and extracts every record's content, ranks its
// chunks against the query, and assembles one context string with a
// "### <name>" header per document, documents in hit order. Records whose
// content cannot be acquired or yields no text are skipped, not fatal.
// The second return value lists the records that contributed context.
func (a *Assembler) BuildContext(ctx context.Context, provider drive.Provider, userID, query string, records []filemeta.Record) (string, []filemeta.Record, error) {
	var parts []string
	var used []filemeta.Record

	for _, rec := range records {
		path, acquiredType, err := a.acquire(ctx, provider, userID, rec)
		if err != nil {
			a.logger.WarnContext(ctx, "skipping document, content unavailable",
				"file_id", rec.ID, "name", rec.Name, "error", err)
			continue
		}

		text := a.registry.Extract(ctx, acquiredType, path)
		if strings.TrimSpace(text) == "" {
			continue
		}

		chunks := chunkWords(text, chunkSize, chunkOverlap)
		best, err := rankChunks(ctx, a.embedder, query, chunks, chunksPerDocument)
		if err != nil {
			return "", nil, err
		}
		if len(best) == 0 {
			continue
		}

		parts = append(parts, "### "+rec.Name+"\n"+strings.Join(best, "\n"))
		used = append(used, rec)
	}

	return strings.Join(parts, "\n\n"), used, nil
}

// acquire materializes the record's content on disk and returns the local
// path plus the canonical type of what was actually written (exports
// change the format). Content is cached per user by file id; the cache is
// only ever cleared wholesale.
func (a *Assembler) acquire(ctx context.Context, provider drive.Provider, userID string, rec filemeta.Record) (string, filemeta.Type, error) {
	dir := a.artifacts.DownloadDir(userID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("assemble: create cache dir: %w", err)
	}

	fetch := func(acquiredType filemeta.Type, open func() (io.ReadCloser, error)) (string, filemeta.Type, error) {
		path := filepath.Join(dir, rec.ID+"."+cacheExt(acquiredType))
		if _, err := os.Stat(path); err == nil {
			return path, acquiredType, nil
		}
		body, err := open()
		if err != nil {
			return "", "", err
		}
		defer func() {
			_ = body.Close()
		}()
		if err := writeFile(path, body); err != nil {
			return "", "", err
		}
		return path, acquiredType, nil
	}

	switch rec.Type {
	case filemeta.TypeGoogleDoc:
		path, acquiredType, err := fetch(filemeta.TypeGoogleDoc, func() (io.ReadCloser, error) {
			return provider.Export(ctx, rec.ID, drive.ExportMimeText)
		})
		if err == nil {
			return path, acquiredType, nil
		}
		// Some "document" records are uploaded Word files; fall back to a
		// raw download.
		return fetch(filemeta.TypeDocx, func() (io.ReadCloser, error) {
			return provider.Download(ctx, rec.ID)
		})
	case filemeta.TypeGoogleSheet:
		return fetch(filemeta.TypeGoogleSheet, func() (io.ReadCloser, error) {
			return provider.Export(ctx, rec.ID, drive.ExportMimeCSV)
		})
	case filemeta.TypeGoogleSlide:
		return fetch(filemeta.TypeGoogleSlide, func() (io.ReadCloser, error) {
			return provider.Export(ctx, rec.ID, drive.ExportMimePDF)
		})
	default:
		return fetch(rec.Type, func() (io.ReadCloser, error) {
			return provider.Download(ctx, rec.ID)
		})
	}
}

// cacheExt returns the cache file extension for an acquired type. The
// extension reflects the on-disk format, not the Drive MIME type.
func cacheExt(t filemeta.Type) string {
	switch t {
	case filemeta.TypeGoogleDoc, filemeta.TypeText:
		return "txt"
	case filemeta.TypeGoogleSheet, filemeta.TypeCSV:
		return "csv"
	case filemeta.TypeGoogleSlide, filemeta.TypePDF:
		return "pdf"
	case filemeta.TypeDocx:
		return "docx"
	case filemeta.TypeXlsx, filemeta.TypeSpreadsheet:
		return "xlsx"
	case filemeta.TypePptx, filemeta.TypePresentation:
		return "pptx"
	case filemeta.TypeMarkdown:
		return "md"
	default:
		return "bin"
	}
}

func writeFile(path string, body io.Reader) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("assemble: create cache file: %w", err)
	}
	if _, err := io.Copy(file, body); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return fmt.Errorf("assemble: write cache file: %w", err)
	}
	return file.Close()
}
