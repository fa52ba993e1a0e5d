// Package main implements the entry point for the Solitaire HTTP server,
// which exposes the Solitaire cipher and the deck shuffler as a JSON API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/solitaire/internal/config"
	"github.com/phrazzld/solitaire/internal/platform/logger"
)

// main is the entry point for the solitaire server.
// It loads configuration, sets up logging, wires the services and runs the
// HTTP server until it receives SIGINT or SIGTERM.
func main() {
	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app := newApplication(cfg, l)
	if err := app.Run(context.Background()); err != nil {
		l.Error("Application stopped with error", slog.String("error", err.Error()))
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up the logger.
// Returns the loaded config, the logger, and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Duration("shutdown_timeout", cfg.Server.ShutdownTimeout))
	l.Debug("Deck defaults",
		slog.Int("decks", cfg.Deck.Decks),
		slog.Int("jokers", cfg.Deck.Jokers),
		slog.Int("riffles", cfg.Deck.Riffles),
		slog.Int("noise", cfg.Deck.Noise))

	return cfg, l, nil
}
