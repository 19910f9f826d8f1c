// Package http serves the site's pages, fragments and form posts
package http

import (
	"context"
	"html/template"
	stdhttp "net/http"

	"folio/internal/adapters/github"
	"folio/internal/modkit/httpkit"
	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
	pnet "folio/internal/platform/net"
	metadomain "folio/internal/services/api/meta/domain"
	projdomain "folio/internal/services/api/projects/domain"
	"folio/internal/services/site/domain"
	"folio/internal/services/site/render"
)

// Profiles fetches the GitHub profile shown on the home page
type Profiles interface {
	Profile(ctx context.Context, username string) (github.Profile, error)
}

// Deps are what the site handlers read from
type Deps struct {
	Render *render.Renderer
	// Base is the site's base path, always ending in a slash
	Base     string
	Nav      []domain.NavPage
	Meta     metadomain.ServicePort
	Projects projdomain.ServicePort
	Resume   func() template.HTML
	// Profiles is nil when no GitHub user is configured
	Profiles      Profiles
	GitHubUser    string
	ContactAction string
}

type handlers struct{ Deps }

// Register mounts the site routes relative to the base path
func Register(r httpkit.Router, d Deps) {
	h := &handlers{Deps: d}

	// pages
	r.Get("/", h.home)
	r.Get("/projects", h.projects)
	r.Get("/contact", h.contact)
	r.Get("/resume", h.resume)
	r.Get("/meta", h.meta)

	// forms
	r.Post("/contact", h.submitContact)
	r.Post("/theme", h.setTheme)

	// fragments
	r.Get("/projects/fragments/gallery", h.galleryFragment)
	r.Get("/meta/fragments/scatter", h.scatterFragment)
	r.Get("/meta/fragments/stats", h.statsFragment)
	r.Get("/meta/fragments/files", h.filesFragment)
	r.Get("/meta/fragments/brush", h.brushFragment)
	r.Get("/meta/fragments/scroll", h.scrollFragment)
	r.Get("/meta/fragments/scroll-files", h.scrollFilesFragment)

	r.NotFound(h.notFound)
}

func (h *handlers) frame(r *stdhttp.Request, title string, data any) render.Page {
	return render.Page{
		Title:  title,
		Base:   h.Base,
		Path:   r.URL.Path,
		Theme:  domain.SchemeFrom(r),
		Themes: domain.ThemeOptions,
		Nav:    domain.Resolve(h.Nav, h.Base, r.URL.Path),
		Data:   data,
	}
}

func (h *handlers) page(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, name, title string, data any) {
	body, err := h.Render.Page(name, h.frame(r, title, data))
	if err != nil {
		logger.C(r.Context()).Error().Err(err).Str("page", name).Msg("render failed")
		stdhttp.Error(w, stdhttp.StatusText(stdhttp.StatusInternalServerError), stdhttp.StatusInternalServerError)
		return
	}
	httpkit.HTML(w, status, body)
}

type errorData struct {
	Status     int
	StatusText string
	Message    string
	RequestID  string
}

// fail renders the error page with the status mapped from err
func (h *handlers) fail(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status := perr.HTTPStatus(err)
	msg := perr.WireFrom(err).Message
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Int("status", status).Msg("page failed")
		if !perr.IsCode(err, perr.ErrorCodeDisabled) {
			msg = "Something went wrong."
		}
	}
	h.page(w, r, status, render.PageError, stdhttp.StatusText(status), errorData{
		Status:     status,
		StatusText: stdhttp.StatusText(status),
		Message:    msg,
		RequestID:  pnet.RequestID(r.Context()),
	})
}

func (h *handlers) notFound(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	h.fail(w, r, perr.NotFoundf("No page lives at %s.", r.URL.Path))
}

// fragment renders name with data, or a small error paragraph with the mapped status
func (h *handlers) fragment(w stdhttp.ResponseWriter, r *stdhttp.Request, name string, data any, err error) {
	if err == nil {
		var body []byte
		if body, err = h.Render.Fragment(name, data); err == nil {
			httpkit.HTML(w, stdhttp.StatusOK, body)
			return
		}
	}
	status := perr.HTTPStatus(err)
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Str("fragment", name).Int("status", status).Msg("fragment failed")
	}
	body := []byte(`<p class="error" role="alert">` + template.HTMLEscapeString(perr.WireFrom(err).Message) + `</p>`)
	httpkit.HTML(w, status, body)
}
