package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/solitaire/internal/api"
	apiMiddleware "github.com/phrazzld/solitaire/internal/api/middleware"
	"github.com/phrazzld/solitaire/internal/service"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	cipherHandler := api.NewCipherHandler(app.cipherService)
	deckHandler := api.NewDeckHandler(app.deckService, service.DefaultShuffleRequest(app.config.Deck))

	r.Route("/api", func(r chi.Router) {
		r.Post("/encrypt", cipherHandler.Encrypt)
		r.Post("/decrypt", cipherHandler.Decrypt)
		r.Post("/keystream", cipherHandler.KeyStream)
		r.Post("/deck/shuffle", deckHandler.Shuffle)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
