// Package module wires the commit history views into the API using modkit
package module

import (
	"net/http"

	modkit "folio/internal/modkit"
	"folio/internal/modkit/httpkit"
	"folio/internal/modkit/swaggerkit"
	str "folio/internal/platform/strings"
	metahttp "folio/internal/services/api/meta/http"
	metasvc "folio/internal/services/api/meta/service"
	"folio/internal/services/dataset"
)

// Module implements the meta module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *metasvc.Svc
}

// New constructs the meta module over ds
func New(deps modkit.Deps, ds *dataset.Dataset, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)

	svc := metasvc.New(ds)
	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Views: svc, Colors: svc.Colors()}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	if m.swaggerOn {
		swaggerkit.Register(metahttp.Docs(m.Prefix()))
	}
	return m
}

// MountRoutes mounts the module routes on the given router
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

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
