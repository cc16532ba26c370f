package middleware

import (
	"fmt"
	"net/http"

	"github.com/mrbennbenn/universal/config"
)

// CacheControlValue builds the Cache-Control value for dynamic responses.
// Every directive is always present, zero included.
func CacheControlValue(cfg config.RenderConfig) string {
	s := cfg.Resolve()
	return fmt.Sprintf("public, max-age=%d, s-maxage=%d, stale-while-revalidate=%d",
		s.Browser, s.CDN, s.StaleWhileRevalidate)
}

// CacheControl sets a fixed Cache-Control header on every response and
// always continues the chain
func CacheControl(value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", value)
			next.ServeHTTP(w, r)
		})
	}
}
