package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/vocab-drill/internal/api"
	apiMiddleware "github.com/phrazzld/vocab-drill/internal/api/middleware"
	"github.com/phrazzld/vocab-drill/internal/api/shared"
	"github.com/rs/cors"
)

// requestTimeout bounds a single request.
const requestTimeout = 30 * time.Second

// middlewares returns the global middleware in the order it is applied.
// Recoverer sits ahead of the trace and CORS layers so panics raised there
// still become a 500.
func (app *application) middlewares() []func(http.Handler) http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         app.config.CORS.MaxAge,
	})

	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		apiMiddleware.Trace(app.logger),
		corsHandler.Handler,
		middleware.Timeout(requestTimeout),
	}
}

// setupRouter creates the router with middleware and the drill routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(app.middlewares()...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	trainerHandler := api.NewTrainerHandler(app.trainer, app.logger)

	r.Get("/health", trainerHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", trainerHandler.GetStatus)
		r.Get("/score", trainerHandler.GetScore)

		r.Get("/exercise", trainerHandler.GetExercise)
		r.Post("/exercise/answer", trainerHandler.SubmitAnswer)
		r.Post("/exercise/advance", trainerHandler.Advance)
		r.Post("/session/reset", trainerHandler.ResetSession)
	})

	return r
}
