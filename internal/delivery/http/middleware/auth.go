package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"eventcheckin/internal/delivery/http/helpers"
)

// AuthOptions configures the shared-secret gate. An empty Secret disables it.
type AuthOptions struct {
	Secret string
}

// RequireSharedSecret returns a wrapper that requires every request to carry
// "Authorization: Bearer <secret>". Requests without it get 401 and next is
// not called. With no secret configured the wrapper returns next unchanged.
func RequireSharedSecret(opts AuthOptions, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if opts.Secret == "" {
			return next
		}
		secret := []byte(opts.Secret)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "missing token")
				return
			}
			if subtle.ConstantTimeCompare([]byte(token), secret) != 1 {
				logger.DebugContext(r.Context(), "rejected bearer token", "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()))
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
