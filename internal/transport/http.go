package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/importer"
	"github.com/rpggio/stageboard/internal/listing"
	"github.com/rpggio/stageboard/internal/metrics"
)

// Services are the domain services behind the HTTP API.
type Services struct {
	Projects *project.Service
	Stages   *stage.Service
	Activity *activity.Service
	Importer *importer.Pipeline
}

// Config configures the HTTP server.
type Config struct {
	Services Services
	// MCP, when set, is mounted at /mcp.
	MCP      http.Handler
	PageSize int
	Logger   *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	services Services
	pageSize int
	logger   *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(cfg Config) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = listing.DefaultPageSize
	}
	srv := &Server{services: cfg.Services, pageSize: pageSize, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))
	r.Use(metrics.Middleware)

	r.Get("/health", srv.handleHealth)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", srv.listProjects)
			r.Post("/", srv.createProject)
			r.Get("/check-number", srv.checkProjectNumber)
			r.Post("/import", srv.importProjects)
			r.Get("/export", srv.exportProjects)
			r.Get("/template", srv.exportTemplate)
			r.Get("/{id}", srv.getProject)
			r.Put("/{id}", srv.updateProject)
			r.Delete("/{id}", srv.deleteProject)
		})
		r.Route("/stages", func(r chi.Router) {
			r.Get("/", srv.listStages)
			r.Post("/", srv.createStage)
			r.Get("/{id}", srv.getStage)
			r.Put("/{id}", srv.updateStage)
			r.Delete("/{id}", srv.deleteStage)
		})
		r.Get("/dashboard", srv.dashboard)
		r.Get("/activity", srv.listActivity)
	})

	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
		r.Handle("/mcp/*", cfg.MCP)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
