// Package server exposes the analysis engine over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fineprint-dev/fineprint/internal/engine"
	"github.com/fineprint-dev/fineprint/internal/service"
)

// Server wraps the HTTP surface around the analysis engine. The storage
// collaborator is optional; without it the history endpoint is disabled and
// results are not cached.
type Server struct {
	analyzer *engine.Analyzer
	store    service.Storage
	router   *gin.Engine
	http     *http.Server
}

// Config holds server configuration options.
type Config struct {
	Addr string
	// MaxBodyBytes bounds request payloads; defaults to 1 MiB, comfortably
	// above the 50,000-character text cap plus JSON overhead.
	MaxBodyBytes int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8420",
		MaxBodyBytes: 1 << 20,
	}
}

// New creates a server with all routes registered. store may be nil.
func New(analyzer *engine.Analyzer, store service.Storage, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultConfig().MaxBodyBytes
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(corsMiddleware())
	router.Use(bodyLimitMiddleware(cfg.MaxBodyBytes))
	router.Use(metricsMiddleware())

	s := &Server{
		analyzer: analyzer,
		store:    store,
		router:   router,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	v1.POST("/analyze", s.handleAnalyze)
	v1.POST("/analyze/batch", s.handleBatch)
	v1.GET("/categories", s.handleCategories)
	v1.GET("/history", s.handleHistory)

	return s
}

// Start runs the HTTP server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("fineprint server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
