package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"realert-server/internal/api"
	"realert-server/internal/config"
	"realert-server/internal/logging"
	"realert-server/internal/obs"
	"realert-server/internal/services"
)

func main() {
	// Setup structured logging
	zerolog.TimeFieldFormat = time.RFC3339
	console := zerolog.ConsoleWriter{Out: os.Stderr}
	log.Logger = log.Output(console)

	// Load configuration
	cfg := config.Load()

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Optionally tee logs into the embedded Logdy web UI
	if cfg.LogdyEnabled {
		tee, url, err := logging.StartLogdy(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to start Logdy, continuing with console only")
		} else {
			log.Logger = log.Output(zerolog.MultiLevelWriter(console, tee))
			log.Info().Str("url", url).Msg("Log tee enabled")
		}
	}

	obs.Init()

	log.Info().
		Str("server_id", cfg.ServerID).
		Str("version", cfg.Version).
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Dur("debounce_window", cfg.DebounceWindow).
		Msg("Starting Realert alert server")

	// Wire storage, messaging and the intake pipeline
	ctx := context.Background()
	container, err := services.NewServiceContainer(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	server := api.NewServer(cfg, container)
	if err := server.Setup(); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up server")
	}

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutdown signal received")

	// Graceful shutdown: stop accepting requests, then let in-flight
	// alert dispatches drain before closing storage.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := container.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Service shutdown incomplete")
	} else {
		log.Info().Msg("Shutdown complete")
	}
}
