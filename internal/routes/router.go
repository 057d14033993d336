package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"skyward-labs/flightdeck/internal/api"
	"skyward-labs/flightdeck/internal/middleware"
)

// NewRouter builds the chi router with the shared middleware chain and
// all API routes.
func NewRouter(deps *api.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-VA-Id", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimitMiddleware)

	handlers := api.NewHandlers(deps)

	r.Get("/healthCheck", handlers.HealthCheck)

	registerAPIRoutes(r, deps, handlers)

	return r
}
