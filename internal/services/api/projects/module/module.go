// Package module wires the project gallery into the API using modkit
package module

import (
	"net/http"

	modkit "folio/internal/modkit"
	"folio/internal/modkit/httpkit"
	"folio/internal/modkit/swaggerkit"
	str "folio/internal/platform/strings"
	"folio/internal/services/api/projects/domain"
	projhttp "folio/internal/services/api/projects/http"
	projsvc "folio/internal/services/api/projects/service"
	"folio/internal/services/dataset"
)

// Ports is what the projects module offers other modules
type Ports struct {
	Gallery domain.ServicePort
}

// Module implements the projects module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the projects module over ds
func New(deps modkit.Deps, ds *dataset.Dataset, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("projects"), modkit.WithPrefix("/projects")}, opts...)...)

	svc := projsvc.New(ds)
	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		ports:     Ports{Gallery: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		projhttp.Register(r, svc)
		if external != nil {
			external(r)
		}
	}
	if m.swaggerOn {
		swaggerkit.Register(projhttp.Docs(m.Prefix()))
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
