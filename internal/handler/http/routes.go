package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the ops router: health, build info and, when configured,
// the prometheus scrape endpoint.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, middleware.GetHead)

	router.Get("/healthz", h.health)
	router.Get("/version", h.version)
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics)
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
