package http

import (
	"bytes"
	"html"
	"html/template"
	stdhttp "net/http"
	"net/url"
	"strconv"

	"folio/internal/adapters/github"
	"folio/internal/core/brush"
	"folio/internal/core/pie"
	"folio/internal/core/scatter"
	"folio/internal/core/scrolly"
	"folio/internal/platform/logger"
	"folio/internal/platform/net/http/bind"
	metadomain "folio/internal/services/api/meta/domain"
	projdomain "folio/internal/services/api/projects/domain"
	"folio/internal/services/site/domain"
	"folio/internal/services/site/render"
)

// LatestCount is how many projects the home page lists
const LatestCount = 3

type homeData struct {
	Profile *github.Profile
	Latest  []projdomain.ProjectView
}

func (h *handlers) home(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()
	log := logger.C(ctx)

	var data homeData
	latest, err := h.Projects.Latest(ctx, LatestCount)
	if err != nil {
		log.Warn().Err(err).Msg("latest projects unavailable")
	}
	data.Latest = latest

	if h.Profiles != nil && h.GitHubUser != "" {
		p, err := h.Profiles.Profile(ctx, h.GitHubUser)
		if err != nil {
			log.Warn().Err(err).Str("user", h.GitHubUser).Msg("github profile unavailable")
		} else {
			data.Profile = &p
		}
	}
	h.page(w, r, stdhttp.StatusOK, render.PageHome, "Home", data)
}

type galleryData struct {
	Gallery projdomain.GalleryResponse
	Pie     template.HTML
}

func (h *handlers) gallery(r *stdhttp.Request) (galleryData, error) {
	q, err := bind.ParseQuery[projdomain.GalleryQuery](r)
	if err != nil {
		return galleryData{}, err
	}
	g, err := h.Projects.Gallery(r.Context(), q)
	if err != nil {
		return galleryData{}, err
	}

	var buf bytes.Buffer
	pie.WriteSVG(&buf, g.PieSlices(), pie.SVGOptions{
		ID:       "projects-pie-plot",
		Selected: g.Selected,
		Href: func(i int) string {
			v := url.Values{}
			if g.Query != "" {
				v.Set("q", g.Query)
			}
			v.Set("selected", strconv.Itoa(g.Selected))
			v.Set("toggle", strconv.Itoa(i))
			return html.EscapeString(h.Base + "projects?" + v.Encode())
		},
	})
	return galleryData{Gallery: g, Pie: template.HTML(buf.String())}, nil
}

func (h *handlers) projects(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	data, err := h.gallery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, stdhttp.StatusOK, render.PageProjects, "Projects", data)
}

type contactData struct {
	Error string
	Form  domain.ContactForm
}

func (h *handlers) contact(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	h.page(w, r, stdhttp.StatusOK, render.PageContact, "Contact", contactData{})
}

type resumeData struct {
	HTML template.HTML
}

func (h *handlers) resume(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	var data resumeData
	if h.Resume != nil {
		data.HTML = h.Resume()
	}
	h.page(w, r, stdhttp.StatusOK, render.PageResume, "Resume", data)
}

type metaData struct {
	Filter      metadomain.FilterResponse
	Scatter     template.HTML
	Brush       brush.Result
	Files       []scrolly.FileDetail
	Scroll      metadomain.WindowResponse
	ScrollFiles metadomain.WindowResponse
}

func (h *handlers) meta(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()
	var (
		data metaData
		err  error
	)
	if data.Filter, err = h.Meta.Filter(ctx, metadomain.FilterQuery{}); err != nil {
		h.fail(w, r, err)
		return
	}
	if data.Files, err = h.Meta.FilePanel(ctx, metadomain.FilterQuery{}); err != nil {
		h.fail(w, r, err)
		return
	}
	sc, err := h.Meta.Scatter(ctx, metadomain.ScatterQuery{})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	data.Scatter = scatterHTML(sc)
	if data.Brush, err = h.Meta.Brush(ctx, metadomain.BrushQuery{}); err != nil {
		h.fail(w, r, err)
		return
	}
	if data.Scroll, err = h.Meta.Window(ctx, metadomain.WindowQuery{Kind: metadomain.KindCommits}); err != nil {
		h.fail(w, r, err)
		return
	}
	if data.ScrollFiles, err = h.Meta.Window(ctx, metadomain.WindowQuery{Kind: metadomain.KindFiles}); err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, stdhttp.StatusOK, render.PageMeta, "Meta", data)
}

func scatterHTML(sc metadomain.ScatterResult) template.HTML {
	var buf bytes.Buffer
	scatter.WriteSVG(&buf, sc.Layout, sc.Transitions, scatter.SVGOptions{})
	return template.HTML(buf.String())
}
