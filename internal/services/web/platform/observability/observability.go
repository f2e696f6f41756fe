// Package observability provides request logging for the web service.
package observability

import (
	"log"
	"net/http"
	"time"

	"github.com/rkprasad/portfolio/internal/services/web/platform/httpx"
)

// RequestLogger logs one key=value line per request after it completes.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := httpx.NewStatusRecorder(w)
			next.ServeHTTP(rec, r)
			logger.Printf(
				"http request method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				r.Method,
				r.URL.Path,
				rec.StatusCode(),
				rec.Bytes,
				time.Since(start).Round(time.Microsecond),
				httpx.RequestIDFrom(r),
			)
		})
	}
}
