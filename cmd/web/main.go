// cmd/web/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeanmonodalex/partage-web/internal/adapters/api"
	"github.com/jeanmonodalex/partage-web/internal/core/services"
	"github.com/jeanmonodalex/partage-web/internal/pkg/config"
	"github.com/jeanmonodalex/partage-web/internal/pkg/logger"
	"github.com/jeanmonodalex/partage-web/internal/web"
	"github.com/jeanmonodalex/partage-web/internal/web/middleware"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting partage web gateway",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	slogger.Info("loading configuration")
	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("backend", cfg.Backend.BaseURL),
	)

	server, cleanup, err := buildServer(cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	httpServer := setupHTTPServer(cfg, server, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			httpServer.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// buildServer wires the backend client, listing service and web server.
func buildServer(cfg *config.Config, slogger *slog.Logger) (*web.Server, func(), error) {
	client, err := api.NewClient(api.Config{
		BaseURL:     cfg.Backend.BaseURL,
		Timeout:     cfg.Backend.Timeout,
		SearchLimit: cfg.Backend.SearchLimit,
	}, slogger)
	if err != nil {
		return nil, nil, err
	}

	listing := services.NewListingService(client, slogger)

	server := web.NewServer(listing, client, client, client, client, cfg.Security, slogger)

	cleanup := func() {
		// Aborts in-flight backend requests on teardown.
		server.Close()
	}
	return server, cleanup, nil
}

func setupHTTPServer(cfg *config.Config, server *web.Server, slogger *slog.Logger) *http.Server {
	var handler http.Handler = server

	// Apply middleware in reverse order (innermost first)
	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}
	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}
	handler = middleware.Recovery(slogger)(handler)
	handler = middleware.Logger(slogger)(handler)
	handler = middleware.RequestID(handler)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}
}
