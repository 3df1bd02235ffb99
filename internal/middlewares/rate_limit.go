package middlewares

import (
	"net/http"
	"strconv"

	"dashboard/internal/cache"
	apierrors "dashboard/internal/errors"
	"dashboard/internal/helpers"

	"go.uber.org/zap"
)

// RateLimit limits every client address to requestsPerMinute. A nil cache
// or a zero limit disables it.
func RateLimit(c cache.ICache, requestsPerMinute int, trustedProxies []string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c == nil || requestsPerMinute <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			identifier := helpers.GetClientIP(r, trustedProxies)
			retryAfter, err := c.GetRateLimit(r.Context(), identifier, requestsPerMinute)
			if err != nil {
				// Serve the request when the cache is unavailable.
				GetLogger(r.Context()).Warn("Rate limit check failed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if retryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				helpers.RespondWithError(w, http.StatusTooManyRequests, []string{apierrors.ErrTooManyRequests})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
