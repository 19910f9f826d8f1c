// Package module wires health, readiness and version endpoints into the API
package module

import (
	"net/http"
	"time"

	modkit "folio/internal/modkit"
	"folio/internal/modkit/httpkit"
	"folio/internal/modkit/swaggerkit"
	str "folio/internal/platform/strings"

	syshttp "folio/internal/services/api/system/http"
)

// Options configure the system module
type Options struct {
	ServiceName string
	Checks      map[string]syshttp.Checker
	Order       []string
}

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// New constructs a system module with the provided dependencies and options
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("system"),
		modkit.WithPrefix("/system"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		syshttp.Register(r, syshttp.Deps{
			ServiceName: str.MustString(o.ServiceName, "service name"),
			StartedAt:   m.startedAt,
			Checks:      o.Checks,
			Order:       o.Order,
		})
		if external != nil {
			external(r)
		}
	}
	if m.swaggerOn {
		swaggerkit.Register(syshttp.Docs(m.Prefix()))
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "system") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
