package httpkit

import (
	"net/http"
	"time"

	"folio/internal/platform/net/middleware"
)

// CommonStack returns the baseline middleware for JSON API scopes. Request ids, real ip
// and access logging are applied once at the root by middleware.Site
func CommonStack(cors middleware.CORSOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// cross-origin (tweak config in main if needed)
		middleware.CORS(cors),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}

// PageStack returns the baseline middleware for server-rendered pages and fragments
func PageStack(timeout time.Duration) []func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RecoverHTML,
		middleware.Timeout(timeout),
	}
}
