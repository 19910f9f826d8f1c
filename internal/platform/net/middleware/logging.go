package middleware

import (
	"net/http"

	"folio/internal/platform/logger"
	pnet "folio/internal/platform/net"
)

// RequestContext copies the chi request id and the request path into both the
// platform net context and the logger context, so logger.C(ctx) carries them
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := pnet.RequestID(r.Context())
		ctx := pnet.WithRequest(r.Context(), reqID, r.URL.Path)
		ctx = logger.WithRequest(ctx, reqID, r.URL.Path)
		if reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
