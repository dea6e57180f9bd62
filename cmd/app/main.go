package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sodikinson/valentine/internal/config"
	"github.com/sodikinson/valentine/internal/logger"
	"github.com/sodikinson/valentine/internal/server"
	"github.com/sodikinson/valentine/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JSON logging
	log.SetFlags(0)
	log.SetOutput(&logger.JSONLogger{Instance: cfg.InstanceName})

	if err := run(cfg); err != nil {
		log.Printf("ERROR: %v", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			log.Printf("WARN: flush traces: %v", err)
		}
	}()

	// Create and start server
	srv, err := server.New(cfg)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
