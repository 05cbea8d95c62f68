// Package server provides the HTTP API for Duala.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dualahq/duala/internal/config"
	"github.com/dualahq/duala/internal/lexicon"
	"github.com/dualahq/duala/internal/metrics"
	"github.com/dualahq/duala/internal/search"
	"github.com/dualahq/duala/internal/store"
)

// Server is the HTTP server for the Duala API.
type Server struct {
	engine   *search.Engine
	store    store.ListingStore
	lexicons *lexicon.Provider
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	engine *search.Engine,
	store store.ListingStore,
	lexicons *lexicon.Provider,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if lexicons == nil {
		lexicons = lexicon.NewProvider(nil)
	}
	return &Server{
		engine:   engine,
		store:    store,
		lexicons: lexicons,
		config:   cfg,
		logger:   logger,
	}
}

// routes builds the router. Split out from Start so handler tests can drive
// the full middleware and routing stack without a listener.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(metrics.Middleware())

	r.Get("/search", s.handleSearch)
	r.Get("/search/advanced", s.handleAdvancedSearch)
	r.Get("/services/location", s.handleByLocation)

	r.Post("/listings", s.handleCreateListing)
	r.Get("/listings", s.handleListListings)
	r.Get("/listings/{id}", s.handleGetListing)
	r.Put("/listings/{id}", s.handleUpdateListing)
	r.Delete("/listings/{id}", s.handleDeleteListing)

	r.Get("/health", s.handleHealth)
	r.Get("/status", s.handleStatus)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.routes(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
