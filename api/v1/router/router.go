// Package router wires the v1 handlers and middleware into a chi router.
package router

import (
	"net/http"
	"time"

	"github.com/GHutch55/fibonacci/api/v1/handlers"
	"github.com/GHutch55/fibonacci/api/v1/middleware"
	"github.com/GHutch55/fibonacci/config"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func New(cfg *config.Config, calc handlers.Calculator) http.Handler {
	fibonacciHandler := handlers.NewFibonacciHandler(calc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFoundHandler)
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler)

	r.Get("/", handlers.HomeHandler)
	r.Get("/health", handlers.HealthHandler)

	r.Route("/fibonacci", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

		r.Get("/{n}", fibonacciHandler.GetFibonacci)
		r.Get("/{n}/sequence", fibonacciHandler.GetFibonacciSequence)
	})

	return r
}
