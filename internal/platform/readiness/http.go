package readiness

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// RetryAfterSeconds is advertised to clients served the loader.
const RetryAfterSeconds = 1

// Middleware answers requests with loading while the gate is closed. Requests
// for which bypass reports true always reach next.
func (g *Gate) Middleware(loading http.Handler, bypass func(*http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g.Ready() || (bypass != nil && bypass(r)) {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Retry-After", strconv.Itoa(RetryAfterSeconds))
			w.Header().Set("Cache-Control", "no-store")
			if loading == nil {
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
				return
			}
			loading.ServeHTTP(w, r)
		})
	}
}

type statusPayload struct {
	Ready bool   `json:"ready"`
	Error string `json:"error,omitempty"`
}

// Handler reports gate state as JSON: 200 when ready, 503 while loading.
// Preparation errors are only exposed in development.
func (g *Gate) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		payload := statusPayload{Ready: g.Ready()}
		if g.development {
			if err := g.Err(); err != nil {
				payload.Error = err.Error()
			}
		}
		status := http.StatusOK
		if !payload.Ready {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	})
}
