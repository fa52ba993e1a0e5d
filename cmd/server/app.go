package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/phrazzld/solitaire/internal/config"
	"github.com/phrazzld/solitaire/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	cipherService service.CipherService
	deckService   service.DeckService

	// listener, when set, is served instead of listening on the configured port.
	listener net.Listener
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	if logger == nil {
		logger = slog.Default()
	}
	return &application{
		config:        cfg,
		logger:        logger,
		cipherService: service.NewCipherService(logger),
		deckService:   service.NewDeckService(logger),
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
