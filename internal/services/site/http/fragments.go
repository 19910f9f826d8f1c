package http

import (
	"bytes"
	stdhttp "net/http"

	"folio/internal/core/scatter"
	"folio/internal/modkit/httpkit"
	perr "folio/internal/platform/errors"
	"folio/internal/platform/net/http/bind"
	metadomain "folio/internal/services/api/meta/domain"
)

func (h *handlers) galleryFragment(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	data, err := h.gallery(r)
	h.fragment(w, r, "gallery", data, err)
}

// scatterFragment answers with the bare SVG so the page can swap it in place
func (h *handlers) scatterFragment(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	q, err := bind.ParseQuery[metadomain.ScatterQuery](r)
	if err != nil {
		h.fragment(w, r, "", nil, err)
		return
	}
	sc, err := h.Meta.Scatter(r.Context(), q)
	if err != nil {
		h.fragment(w, r, "", nil, err)
		return
	}
	var buf bytes.Buffer
	scatter.WriteSVG(&buf, sc.Layout, sc.Transitions, scatter.SVGOptions{})
	httpkit.SVG(w, stdhttp.StatusOK, buf.Bytes())
}

func (h *handlers) statsFragment(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	q, err := bind.ParseQuery[metadomain.FilterQuery](r)
	if err != nil {
		h.fragment(w, r, "stats", nil, err)
		return
	}
	out, err := h.Meta.Filter(r.Context(), q)
	h.fragment(w, r, "stats", out, err)
}

func (h *handlers) filesFragment(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	q, err := bind.ParseQuery[metadomain.FilterQuery](r)
	if err != nil {
		h.fragment(w, r, "files", nil, err)
		return
	}
	out, err := h.Meta.FilePanel(r.Context(), q)
	h.fragment(w, r, "files", out, err)
}

func (h *handlers) brushFragment(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	q, err := bind.ParseQuery[metadomain.BrushQuery](r)
	if err != nil {
		h.fragment(w, r, "brush", nil, err)
		return
	}
	out, err := h.Meta.Brush(r.Context(), q)
	h.fragment(w, r, "brush", out, err)
}

func (h *handlers) scrollFragment(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	h.window(w, r, metadomain.KindCommits, "scroll-items")
}

func (h *handlers) scrollFilesFragment(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	h.window(w, r, metadomain.KindFiles, "scroll-files")
}

type scrollQuery struct {
	Top float64 `form:"top" validate:"min=0"`
}

func (h *handlers) window(w stdhttp.ResponseWriter, r *stdhttp.Request, kind, name string) {
	q, err := bind.ParseQuery[scrollQuery](r)
	if err != nil {
		h.fragment(w, r, name, nil, err)
		return
	}
	out, err := h.Meta.Window(r.Context(), metadomain.WindowQuery{Top: q.Top, Kind: kind})
	if err == nil && out.Kind != kind {
		err = perr.Internalf("window kind %q, want %q", out.Kind, kind)
	}
	h.fragment(w, r, name, out, err)
}
