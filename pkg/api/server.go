// Package api serves the Bifrost document store over REST.
//
// Routes are versioned under /api/v1 and protected by an X-API-Key header.
// The /metrics endpoint is left open for Prometheus scraping.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ssargent/bifrost/pkg/store"
)

// Routes builds the full router for the server.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	m := s.metrics
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(m.InstrumentAuthMiddleware(requireAPIKey(s.config.APIKey)))

		r.Get("/health", m.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		r.Post("/documents", m.InstrumentHandler("POST", "/api/v1/documents", s.handleCreate))
		r.Get("/documents", m.InstrumentHandler("GET", "/api/v1/documents", s.handleList))
		r.Put("/documents/{id}", m.InstrumentHandler("PUT", "/api/v1/documents/{id}", s.handlePut))
		r.Get("/documents/{id}", m.InstrumentHandler("GET", "/api/v1/documents/{id}", s.handleGet))
		r.Delete("/documents/{id}", m.InstrumentHandler("DELETE", "/api/v1/documents/{id}", s.handleDelete))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(kv store.Store, config ServerConfig) error {
	server := NewServer(kv, config, NewMetrics())

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting Bifrost REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	return http.ListenAndServe(addr, server.Routes())
}
