package modkit

import (
	"net/http"

	"folio/internal/modkit/httpkit"
)

// Option adjusts how a module is built
type Option func(*Built)

// Built is the resolved option set a module constructor reads
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	SwaggerOn bool

	// Subrouter wraps the module router before routes are registered; identity by default
	Subrouter func(httpkit.Router) httpkit.Router
	// Register attaches extra routes after the module's own; no-op by default
	Register func(httpkit.Router)
}

// Build applies opts in order. Later options win, middlewares accumulate
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	if b.Subrouter == nil {
		b.Subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if b.Register == nil {
		b.Register = func(httpkit.Router) {}
	}
	return b
}

// WithName names the module in logs and in the port registry
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module under prefix
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends per module middleware
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithSwagger registers the module's docs with the swagger spec
func WithSwagger(enabled bool) Option { return func(b *Built) { b.SwaggerOn = enabled } }

// WithSubrouter sets the router wrapper
func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(b *Built) { b.Subrouter = fn }
}

// WithRegister adds routes next to the module's own
func WithRegister(fn func(httpkit.Router)) Option { return func(b *Built) { b.Register = fn } }
