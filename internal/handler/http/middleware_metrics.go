package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records request count, latency and in-flight requests. Routes
// are labelled by their chi pattern so that task ids do not create series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		h.metrics.RequestStarted()
		defer h.metrics.RequestFinished()

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		h.metrics.ObserveRequest(r.Method, routePattern(r), fmt.Sprintf("%dxx", rw.Status()/100), time.Since(start))
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
