package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/jsxtext/internal/config"
	"github.com/dgallion1/jsxtext/internal/metrics"
	"github.com/dgallion1/jsxtext/internal/pipeline"
	"github.com/dgallion1/jsxtext/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the HTTP API server for jsxtext.
type Server struct {
	router    chi.Router
	extractor *pipeline.Extractor
	store     *store.Store
	stats     *metrics.LatencyStats
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server. st may be nil, in which
// case catalogs are returned from /api/extract but never persisted.
func NewServer(ex *pipeline.Extractor, st *store.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		extractor: ex,
		store:     st,
		stats:     metrics.NewLatencyStats(cfg.StatsWindow, cfg.StatsMaxSamples),
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/parse", s.handleParse)
		r.Post("/api/text", s.handleText)
		r.Post("/api/extract", s.handleExtract)

		r.Get("/api/catalogs", s.handleListCatalogs)
		r.Get("/api/catalogs/{namespace}", s.handleGetCatalog)
		r.Delete("/api/catalogs/{namespace}", s.handleDeleteCatalog)

		r.Get("/api/stats/latency", s.handleLatencyStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
