package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/tubespark/server/internal/config"
	"codeberg.org/tubespark/server/internal/logger"
)

// @title TubeSpark API
// @version 1.0
// @description Usage-gated YouTube video idea generation and idea management
// @description
// @description Features:
// @description - Idea generation through a hosted text model, metered against a monthly plan quota
// @description - Saved ideas with status tracking (saved, planned, published)
// @description - Per-plan usage reporting and dashboard statistics

// @contact.name API Support
// @contact.url https://codeberg.org/tubespark/server

// @host api.tubespark.app

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authenticated requests. Format: Bearer {token}

func main() {
	flags := config.ParseServerFlags(os.Args[1:])

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.SetDefault(logger.New(cfg.Environment, os.Getenv("LOG_LEVEL")))
	logger.Info("starting tubespark server")

	// create server with all dependencies
	srv, err := NewServer(cfg, flags)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	port := cfg.Port
	if flags.Port != "" {
		port = flags.Port
	}

	// generation may legitimately run up to the configured timeout
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.GenerationTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown, in-flight generations get their full timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.GenerationTimeout+5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	srv.Close()

	logger.Info("server stopped")
}
