// Package module wires the server-rendered site under its base path using modkit
package module

import (
	"net/http"
	"strings"
	"time"

	modkit "folio/internal/modkit"
	"folio/internal/modkit/httpkit"
	"folio/internal/modkit/module"
	"folio/internal/platform/logger"
	"folio/internal/platform/net/middleware"
	str "folio/internal/platform/strings"
	metamod "folio/internal/services/api/meta/module"
	projmod "folio/internal/services/api/projects/module"
	"folio/internal/services/dataset"
	"folio/internal/services/site/domain"
	sitehttp "folio/internal/services/site/http"
	"folio/internal/services/site/render"
	"folio/internal/services/site/web"
)

// Options configure the site
type Options struct {
	// BasePath is where the site lives, "/" or "/folio/"
	BasePath      string
	ContactAction string
	GitHubUser    string
	// Nav replaces the embedded navigation when set
	Nav     []domain.NavPage
	Dataset *dataset.Dataset
	// ImagesDir serves project images from disk under <base>images/ when set
	ImagesDir string
	Timeout   time.Duration
}

// Module implements the site module. It reads the meta and projects ports from the
// registry, so it must be mounted after the API
type Module struct {
	deps modkit.Deps
	name string
	base string
	mws  []func(http.Handler) http.Handler
	opt  Options
	rd   *render.Renderer

	register func(httpkit.Router)
}

// New constructs the site module
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("site")}, opts...)...)

	base := str.BasePath(o.BasePath)
	if len(o.Nav) == 0 {
		o.Nav = mustDefaultNav()
	}
	rd, err := render.New(web.Templates(), base)
	if err != nil {
		panic(err)
	}
	return &Module{
		deps:     deps,
		name:     b.Name,
		base:     base,
		mws:      append(httpkit.PageStack(o.Timeout), b.Mw...),
		opt:      o,
		rd:       rd,
		register: b.Register,
	}
}

// MountRoutes mounts pages, fragments and assets under the base path
func (m *Module) MountRoutes(r httpkit.Router) {
	meta := module.MustPortsAs[metamod.Ports]("meta")
	proj := module.MustPortsAs[projmod.Ports]("projects")

	d := sitehttp.Deps{
		Render:        m.rd,
		Base:          m.base,
		Nav:           m.opt.Nav,
		Meta:          meta.Views,
		Projects:      proj.Gallery,
		ContactAction: m.opt.ContactAction,
		GitHubUser:    m.opt.GitHubUser,
	}
	if ds := m.opt.Dataset; ds != nil {
		d.Resume = ds.Resume
	}
	if m.deps.GitHub != nil {
		d.Profiles = m.deps.GitHub
	}

	mount := func(rr httpkit.Router) {
		rr.Use(m.mws...)
		rr.Handle("/static/*", middleware.SetHeader("Cache-Control", "public, max-age=3600")(
			http.StripPrefix(m.base+"static/", http.FileServer(http.FS(web.Static())))))
		if m.opt.ImagesDir != "" {
			rr.Handle("/images/*", http.StripPrefix(m.base+"images/", http.FileServer(http.Dir(m.opt.ImagesDir))))
		}
		sitehttp.Register(rr, d)
		if m.register != nil {
			m.register(rr)
		}
	}
	if m.base == "/" {
		r.Group(mount)
	} else {
		r.Route(strings.TrimSuffix(m.base, "/"), mount)
	}
	logger.Named("site").Info().Str("base", m.base).Bool("images", m.opt.ImagesDir != "").Msg("site mounted")
}

// Ports returns nil; the site offers nothing to other modules
func (m *Module) Ports() any { return nil }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the base path
func (m *Module) Prefix() string { return m.base }

// Middlewares returns the page middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

func mustDefaultNav() []domain.NavPage {
	f, err := web.Nav()
	if err != nil {
		panic(err)
	}
	defer f.Close()
	pages, err := domain.ParseNav(f)
	if err != nil {
		panic(err)
	}
	return pages
}
