package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records request counters labelled by the matched route pattern,
// so /api/favorites/5 and /api/favorites/6 share one series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		mw := newResponseWriter(w)
		next.ServeHTTP(mw, r)

		pattern := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				pattern = p
			}
		}
		h.metrics.ObserveHTTP(r.Method, pattern, mw.statusOrOK(), time.Since(start))
	})
}
