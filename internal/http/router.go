package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"drivemind/internal/auth"
	"drivemind/internal/handlers"
	"drivemind/internal/service"
	"drivemind/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Service       service.DriveQueryService
	Authenticator auth.Authenticator
	Credentials   storage.CredentialStore
	Artifacts     service.ArtifactStore
	DB            *sql.DB
	FrontendURL   string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	authHandler := handlers.NewAuthHandler(deps.Authenticator, deps.Credentials, deps.Artifacts, deps.FrontendURL)
	r.Get("/auth/login", authHandler.Login)
	r.Get("/auth/callback", authHandler.Callback)

	r.Method(http.MethodGet, "/drive/files", handlers.NewFilesHandler(deps.Service))
	r.Method(http.MethodPost, "/drive/index", handlers.NewIndexHandler(deps.Service))

	r.Method(http.MethodPost, "/query", handlers.NewQueryHandler(deps.Service))

	r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.DB))

	return r
}
