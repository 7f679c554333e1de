package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"drivemind/internal/answer"
	"drivemind/internal/artifact"
	"drivemind/internal/assemble"
	"drivemind/internal/auth"
	"drivemind/internal/config"
	"drivemind/internal/extract"
	"drivemind/internal/http"
	"drivemind/internal/indexer"
	"drivemind/internal/intent"
	"drivemind/internal/llm"
	"drivemind/internal/search"
	"drivemind/internal/service"
	"drivemind/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	credentialRepo := storage.NewCredentialRepo(db)
	listingRepo := storage.NewListingRepo(db)

	// OpenAI-backed completion and embedding clients
	api := openai.NewClient(cfg.OpenAIAPIKey)
	completer := llm.NewClient(api, cfg.ChatModel)
	embedder := llm.NewEmbedder(api, cfg.EmbeddingModel, cfg.EmbeddingVectorSize)

	// Validate embedding vector size (fail-fast)
	ctx := context.Background()
	testVec, err := embedder.Embed(ctx, "test")
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testVec) != cfg.EmbeddingVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.EmbeddingVectorSize, len(testVec))
	}
	slog.Info("Embedding client validated", "model", cfg.EmbeddingModel, "vector_size", cfg.EmbeddingVectorSize)

	artifacts := artifact.NewStore(cfg.DataDir)
	pipeline := indexer.NewPipeline(embedder, artifacts)
	engine := search.NewEngine(artifacts, float32(cfg.SearchThreshold), float32(cfg.FallbackThreshold))

	registry := extract.NewRegistry(nil)
	assembler := assemble.NewAssembler(embedder, registry, artifacts)
	composer := answer.NewComposer(completer, assembler)
	extractor := intent.NewExtractor(completer)

	google := auth.NewGoogle(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)

	svc := service.NewQueryService(service.Deps{
		Credentials: credentialRepo,
		Listings:    listingRepo,
		Artifacts:   artifacts,
		Connector:   service.NewGoogleConnector(google),
		Extractor:   extractor,
		Embedder:    embedder,
		Searcher:    engine,
		Answerer:    composer,
		Indexer:     pipeline,
	})
	slog.Info("Query service initialized")

	router := http.NewRouter(&http.Deps{
		Service:       svc,
		Authenticator: google,
		Credentials:   credentialRepo,
		Artifacts:     artifacts,
		DB:            db,
		FrontendURL:   cfg.FrontendURL,
	})

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}

// parseLogLevel maps a config string to a slog level, defaulting to info.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
