package httpapi

import "net/http"

// requireAPIKey rejects requests whose X-API-Key header does not exactly
// match the configured shared secret. The root page, metrics, and CORS
// preflights never pass through this middleware.
func requireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-API-Key") != key {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
