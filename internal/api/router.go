// Package api exposes statement upload and vendor tagging over HTTP.
package api

import (
	"net/http"

	"askbudget/budget-buddy/internal/logging"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the handlers. Routes keep their trailing slash so
// existing dashboard clients work unchanged.
func NewRouter(h *Handlers, allowedOrigins []string, logger logging.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(CORS(allowedOrigins))
	r.Use(AccessLog(logger))

	r.Get("/health", h.Health)
	r.Post("/upload/", h.Upload)
	r.Post("/tag/", h.Tag)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	return r
}
