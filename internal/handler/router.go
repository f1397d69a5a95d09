package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/cscm/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig collects what NewRouter wires together
type RouterConfig struct {
	Logger         *slog.Logger
	Compile        *CompileHandler
	CompilationLog *CompilationLogHandler
	Timeout        time.Duration
}

// NewRouter builds the HTTP API
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", Health)

	r.Group(func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json", "text/plain"))
		r.Post("/compile", cfg.Compile.Compile)
	})

	r.Route("/compilations", func(r chi.Router) {
		r.Get("/", cfg.CompilationLog.ListCompilations)
		r.Get("/{id}", cfg.CompilationLog.GetCompilation)
	})

	return r
}

// Health reports that the server is up
func Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
