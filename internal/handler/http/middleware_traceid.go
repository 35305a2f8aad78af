package http

import (
	"net/http"
	"regexp"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// validTraceID limits caller-supplied trace ids to what ends up in log lines.
var validTraceID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// withTraceID attaches a request-scoped child logger carrying trace_id to the
// request context and echoes the id in the response header. A well-formed
// X-Trace-ID from the caller is reused; otherwise a new one is generated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID.MatchString(traceID) {
			traceID = utils.NewID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
