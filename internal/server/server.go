package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/sodikinson/valentine/internal/config"
	"github.com/sodikinson/valentine/internal/handlers/accepted"
	"github.com/sodikinson/valentine/internal/handlers/health"
	"github.com/sodikinson/valentine/internal/handlers/home"
	"github.com/sodikinson/valentine/internal/images"
	"github.com/sodikinson/valentine/internal/middleware"
	"github.com/sodikinson/valentine/internal/proposal"
	"github.com/sodikinson/valentine/internal/services"
	"github.com/sodikinson/valentine/internal/web"
	"github.com/sodikinson/valentine/internal/web/pages"
)

type Server struct {
	config   config.Config
	services *services.Services
}

// New checks the page images against the allowlist and wires the services.
func New(cfg config.Config) (*Server, error) {
	if err := images.ValidateAll(images.CuteCat, images.HuggingCharacters); err != nil {
		return nil, fmt.Errorf("page images: %w", err)
	}

	svc, err := services.New(cfg)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:   cfg,
		services: svc,
	}, nil
}

// Handler returns the routed and wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", web.StaticHandler()))

	// Health check endpoint
	mux.HandleFunc("GET /health", health.Handler(s.config.InstanceName))

	// Proposal
	mux.HandleFunc("GET /{$}", home.Handler(s.services.Sessions))
	mux.HandleFunc("POST "+pages.NoRoute, home.NoHandler(s.services.Sessions))
	mux.HandleFunc("GET "+proposal.AcceptedRoute, accepted.Handler(s.services.Sessions, s.config.ShareLinkEnabled))

	var h http.Handler = mux
	h = middleware.WithSecurityHeaders(h)
	h = middleware.WithLogging(h)
	h = middleware.WithTracing(otel.GetTracerProvider(), h)
	return h
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Printf("Serving on port %s...", s.config.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		log.Printf("Shutting down...")
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
