package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// withLogging logs one line per ops request. Scrapes and health probes
// stay at debug, server errors are raised to warn.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log := logger.FromRequest(r)
		event := log.Debug()
		if ww.Status() >= http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("size", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("ops request served")
	})
}
