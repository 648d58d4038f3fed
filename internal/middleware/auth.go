package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/syodo-shop/storefront/internal/config"
)

// APIKeyHeader carries the client API key
const APIKeyHeader = "X-API-Key"

// APIKeyAuth middleware rejects requests without a configured API key
func APIKeyAuth(cfg config.AuthConfig, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(APIKeyHeader)

			if apiKey == "" {
				http.Error(w, "Unauthorized: API key required", http.StatusUnauthorized)
				return
			}

			if !validKey(cfg.APIKeys, apiKey) {
				logger.Warn("rejected API key", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				http.Error(w, "Forbidden: Invalid API key", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func validKey(keys []string, apiKey string) bool {
	for _, validKey := range keys {
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(validKey)) == 1 {
			return true
		}
	}
	return false
}
