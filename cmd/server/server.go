package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// readHeaderTimeout bounds how long a client may take to send request headers.
const readHeaderTimeout = 5 * time.Second

// startHTTPServer starts the HTTP server with graceful shutdown support.
// It returns once ctx is canceled or SIGINT/SIGTERM arrives and the server
// has drained, or when the server fails.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	listener := app.listener
	if listener == nil {
		var err error
		listener, err = net.Listen("tcp", fmt.Sprintf(":%d", app.config.Server.Port))
		if err != nil {
			return fmt.Errorf("failed to listen on port %d: %w", app.config.Server.Port, err)
		}
	}

	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-shutdownCh:
		app.logger.Info("Shutting down server...")
	case <-ctx.Done():
		app.logger.Info("Server context canceled, shutting down...")
	case err := <-serveErr:
		app.logger.Error("Server failed", "error", err)
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	// Wait for the serve goroutine to return.
	<-serveErr

	app.cleanup()

	app.logger.Info("Server shutdown completed")
	return nil
}
