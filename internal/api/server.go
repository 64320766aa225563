// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

/*
Package api wires together the HTTP router, middleware chain, and all
content handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vitrinehq/vitrine/internal/content/company"
	"github.com/vitrinehq/vitrine/internal/content/heromedia"
	"github.com/vitrinehq/vitrine/internal/content/portfolio"
	"github.com/vitrinehq/vitrine/internal/content/product"
	"github.com/vitrinehq/vitrine/internal/content/upload"
	"github.com/vitrinehq/vitrine/internal/platform/config"
	"github.com/vitrinehq/vitrine/internal/platform/constants"
	"github.com/vitrinehq/vitrine/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all content-domain HTTP handler sets.
//
// # Usage
//
// New collections add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Company manages the singleton company profile.
	Company *company.Handler

	// HeroMedia manages the hero section rotation.
	HeroMedia *heromedia.Handler

	// Portfolio manages case-study projects.
	Portfolio *portfolio.Handler

	// Product manages the catalogue.
	Product *product.Handler

	// Upload streams dashboard assets into blob storage.
	Upload *upload.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Collection route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/company-info", h.Company.RegisterRoutes)
		api.Route("/hero-media", h.HeroMedia.RegisterRoutes)
		api.Route("/portfolio", h.Portfolio.RegisterRoutes)
		api.Route("/products", h.Product.RegisterRoutes)
		api.Route("/uploads", h.Upload.RegisterRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
