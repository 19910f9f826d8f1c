// Package httpkit is what service modules import for routing and responses, so they
// stay off the platform http package
package httpkit

import (
	"net/http"

	phttp "folio/internal/platform/net/http"
)

type (
	Router   = phttp.Router
	Handler  = phttp.Handler
	Envelope = phttp.Envelope
)

// Query binds the query string into T and sends fn's result as an envelope
func Query[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.Query(fn) }

// Call sends fn's result as an envelope
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.Call(fn) }

// HTML writes a rendered page or fragment
func HTML(w http.ResponseWriter, status int, body []byte) { phttp.HTML(w, status, body) }

// SVG writes a standalone SVG document
func SVG(w http.ResponseWriter, status int, body []byte) { phttp.SVG(w, status, body) }
