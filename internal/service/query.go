// Package service orchestrates the three user-facing operations: loading
// Drive file listings, building the metadata index, and answering queries.
// Interfaces here are defined from the service layer's perspective
// (consumer-first); the concrete implementations live in their own packages.
package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_query.go -package=mocks drivemind/internal/service DriveConnector,IntentExtractor,Searcher,Answerer,Indexer,ArtifactStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_drive_query_service.go -package=mocks drivemind/internal/service DriveQueryService

import (
	"context"
	"errors"
	"strings"

	"drivemind/internal/answer"
	"drivemind/internal/contextutil"
	"drivemind/internal/drive"
	"drivemind/internal/filemeta"
	"drivemind/internal/intent"
	"drivemind/internal/llm"
	"drivemind/internal/search"
	"drivemind/internal/storage"
)

// DriveConnector builds an authenticated Drive client for a stored
// credential. A fresh provider is built per request so token refresh is
// handled per user, not per process.
type DriveConnector interface {
	ProviderFor(ctx context.Context, cred *storage.CredentialRecord) (drive.Provider, error)
}

// IntentExtractor derives structured search intent from a free-text query.
type IntentExtractor interface {
	ExtractMetadata(ctx context.Context, query string) intent.Metadata
	ExtractKeywords(ctx context.Context, query string) []string
}

// Searcher runs a hybrid vector-plus-keyword search over a user's index.
type Searcher interface {
	Search(ctx context.Context, userID string, queryVec []float32, keywords []string, topK int) ([]search.Hit, error)
}

// Answerer composes the final conversational answer from search hits.
type Answerer interface {
	Compose(ctx context.Context, provider drive.Provider, userID, query string, hits []search.Hit, history []answer.Turn) (answer.Result, error)
}

// Indexer rebuilds a user's metadata index from file listings.
type Indexer interface {
	Rebuild(ctx context.Context, userID string, listings []drive.Listing) (int, error)
}

// ArtifactStore exposes the index-state checks the service needs.
type ArtifactStore interface {
	Exists(userID string) bool
	ClearDownloads(userID string) error
}

// QueryRequest represents a query request in the domain layer.
type QueryRequest struct {
	UserID  string `validate:"required"`
	Query   string `validate:"required"`
	History []answer.Turn
}

// DriveQueryService is the surface the HTTP layer consumes.
type DriveQueryService interface {
	// LoadFiles fetches and stores the user's Drive listing. Returns the
	// file count and whether a fresh fetch happened.
	LoadFiles(ctx context.Context, userID string, force bool) (int, bool, error)
	// IndexMetadata rebuilds the metadata index from the stored listing.
	// Returns the indexed record count and whether a rebuild happened.
	IndexMetadata(ctx context.Context, userID string, force bool) (int, bool, error)
	// Query answers a free-text question about the user's Drive.
	Query(ctx context.Context, req QueryRequest) (answer.Result, error)
}

// QueryService ties the pipeline together: listings, index, and answers.
type QueryService struct {
	credentials storage.CredentialStore
	listings    storage.ListingStore
	artifacts   ArtifactStore
	connector   DriveConnector
	extractor   IntentExtractor
	embedder    llm.EmbeddingService
	searcher    Searcher
	answerer    Answerer
	indexer     Indexer
}

// Deps lists everything a QueryService needs.
type Deps struct {
	Credentials storage.CredentialStore
	Listings    storage.ListingStore
	Artifacts   ArtifactStore
	Connector   DriveConnector
	Extractor   IntentExtractor
	Embedder    llm.EmbeddingService
	Searcher    Searcher
	Answerer    Answerer
	Indexer     Indexer
}

// NewQueryService creates a new QueryService.
func NewQueryService(deps Deps) *QueryService {
	return &QueryService{
		credentials: deps.Credentials,
		listings:    deps.Listings,
		artifacts:   deps.Artifacts,
		connector:   deps.Connector,
		extractor:   deps.Extractor,
		embedder:    deps.Embedder,
		searcher:    deps.Searcher,
		answerer:    deps.Answerer,
		indexer:     deps.Indexer,
	}
}

// LoadFiles fetches the user's full Drive listing and persists it. When a
// listing is already stored and force is false, the stored one is reused.
// A forced reload also clears the user's cached downloads, since cached
// content may belong to files that no longer exist.
func (s *QueryService) LoadFiles(ctx context.Context, userID string, force bool) (int, bool, error) {
	logger := contextutil.LoggerFromContext(ctx)

	cred, err := s.credentials.Get(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, false, ErrUnauthenticated
	}
	if err != nil {
		return 0, false, WrapError(err, "failed to load credential")
	}

	if !force {
		stored, err := s.listings.Get(ctx, userID)
		if err == nil {
			logger.InfoContext(ctx, "reusing stored listing", "user_id", userID, "file_count", len(stored))
			return len(stored), false, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return 0, false, WrapError(err, "failed to load stored listing")
		}
	} else if err := s.artifacts.ClearDownloads(userID); err != nil {
		logger.WarnContext(ctx, "failed to clear cached downloads", "user_id", userID, "error", err)
	}

	provider, err := s.connector.ProviderFor(ctx, cred)
	if err != nil {
		return 0, false, WrapError(err, "failed to build drive client")
	}
	all, err := provider.ListAll(ctx)
	if err != nil {
		return 0, false, WrapError(err, "failed to list drive files")
	}
	if err := s.listings.Save(ctx, userID, all); err != nil {
		return 0, false, WrapError(err, "failed to save listing")
	}

	logger.InfoContext(ctx, "drive listing loaded", "user_id", userID, "file_count", len(all))
	return len(all), true, nil
}

// IndexMetadata rebuilds the user's metadata index from the stored listing.
// An existing index is kept unless force is true. Returns ErrNoListings if
// LoadFiles has never run for the user.
func (s *QueryService) IndexMetadata(ctx context.Context, userID string, force bool) (int, bool, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if !force && s.artifacts.Exists(userID) {
		logger.InfoContext(ctx, "index already exists, skipping rebuild", "user_id", userID)
		return 0, false, nil
	}

	stored, err := s.listings.Get(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, false, ErrNoListings
	}
	if err != nil {
		return 0, false, WrapError(err, "failed to load stored listing")
	}

	count, err := s.indexer.Rebuild(ctx, userID, stored)
	if err != nil {
		return 0, false, WrapError(err, "failed to rebuild index")
	}

	logger.InfoContext(ctx, "metadata index rebuilt", "user_id", userID, "record_count", count)
	return count, true, nil
}

// Query answers a free-text question about the user's Drive. The query is
// first distilled into structured intent, embedded, and searched; the hits
// are then handed to the answer composer.
func (s *QueryService) Query(ctx context.Context, req QueryRequest) (answer.Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.UserID == "" {
		return answer.Result{}, &ValidationError{Field: "user_id", Message: "cannot be empty"}
	}
	if strings.TrimSpace(req.Query) == "" {
		return answer.Result{}, &ValidationError{Field: "query", Message: "cannot be empty"}
	}

	cred, err := s.credentials.Get(ctx, req.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return answer.Result{}, ErrUnauthenticated
	}
	if err != nil {
		return answer.Result{}, WrapError(err, "failed to load credential")
	}
	provider, err := s.connector.ProviderFor(ctx, cred)
	if err != nil {
		return answer.Result{}, WrapError(err, "failed to build drive client")
	}

	meta := s.extractor.ExtractMetadata(ctx, req.Query)
	keywords := s.extractor.ExtractKeywords(ctx, req.Query)
	sentence := filemeta.BuildQuerySentence(meta.Name, string(filemeta.NormalizeHint(meta.Type)), meta.Date, keywords)

	vec, err := s.embedder.Embed(ctx, sentence)
	if err != nil {
		return answer.Result{}, WrapError(err, "failed to embed query")
	}
	hits, err := s.searcher.Search(ctx, req.UserID, vec, keywords, search.DefaultTopK)
	if err != nil {
		return answer.Result{}, WrapError(err, "search failed")
	}

	result, err := s.answerer.Compose(ctx, provider, req.UserID, req.Query, hits, req.History)
	if err != nil {
		return answer.Result{}, WrapError(err, "failed to compose answer")
	}

	logger.InfoContext(ctx, "query answered", "user_id", req.UserID, "hits", len(hits), "keywords", len(keywords))
	return result, nil
}
