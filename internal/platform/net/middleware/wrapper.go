// Package middleware wraps chi's middleware and adds the site's own request logging
// and recovery, so callers never import chi directly
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"

	pstrings "folio/internal/platform/strings"
)

// Middleware is the net/http decorator shape every function here returns
type Middleware = func(http.Handler) http.Handler

func RequestID() Middleware                   { return chimw.RequestID }
func RealIP() Middleware                      { return chimw.RealIP }
func NoCache() Middleware                     { return chimw.NoCache }
func CleanPath() Middleware                   { return chimw.CleanPath }
func StripSlashes() Middleware                { return chimw.StripSlashes }
func Timeout(d time.Duration) Middleware      { return chimw.Timeout(d) }
func SetHeader(name, value string) Middleware { return chimw.SetHeader(name, value) }

// Heartbeat answers GET path with 200 before routing, for load balancer probes
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// Compress negotiates gzip or deflate. chi's default content types include html, css,
// js, json and svg
func Compress(level int) Middleware {
	return chimw.NewCompressor(level).Handler
}

// CORSOptions is the part of go-chi/cors the API exposes
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS fills empty lists with the read-only API's defaults
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodHead, http.MethodOptions}),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders:   pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID"}),
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// Site is the root stack shared by pages, fragments and the API, outermost first
func Site(slow time.Duration) []Middleware {
	return []Middleware{
		RealIP(),
		RequestID(),
		RequestContext,
		AccessLogZerolog(AccessLogOptions{Slow: slow}),
		CleanPath(),
		Compress(flate.BestSpeed),
	}
}
