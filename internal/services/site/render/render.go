// Package render executes the site's embedded templates
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"strconv"
	"strings"

	"folio/internal/core/brush"
	"folio/internal/core/scrolly"
	perr "folio/internal/platform/errors"
	"folio/internal/services/site/domain"
)

// Pages the renderer knows
const (
	PageHome     = "home"
	PageProjects = "projects"
	PageContact  = "contact"
	PageResume   = "resume"
	PageMeta     = "meta"
	PageError    = "error"
)

var pages = []string{PageHome, PageProjects, PageContact, PageResume, PageMeta, PageError}

// Page is what the layout renders around a page's content
type Page struct {
	Title  string
	Base   string
	Path   string
	Theme  string
	Themes []domain.ThemeOption
	Nav    []domain.NavLink
	Data   any
}

// Renderer holds one parsed template set per page plus the shared fragments
type Renderer struct {
	base      string
	pages     map[string]*template.Template
	fragments *template.Template
}

// New parses the templates under fsys. base prefixes relative asset paths
func New(fsys fs.FS, base string) (*Renderer, error) {
	rd := &Renderer{base: base, pages: make(map[string]*template.Template, len(pages))}

	frag, err := template.New("fragments.html").Funcs(rd.funcs()).ParseFS(fsys, "fragments.html")
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "render: parse fragments")
	}
	rd.fragments = frag

	for _, p := range pages {
		t, err := template.New(p).Funcs(rd.funcs()).ParseFS(fsys, "layout.html", "fragments.html", p+".html")
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "render: parse page %s", p)
		}
		rd.pages[p] = t
	}
	return rd, nil
}

// Page renders a full document
func (rd *Renderer) Page(name string, p Page) ([]byte, error) {
	t, ok := rd.pages[name]
	if !ok {
		return nil, perr.NotFoundf("render: no page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "render: page %s", name)
	}
	return buf.Bytes(), nil
}

// Fragment renders one named fragment with data
func (rd *Renderer) Fragment(name string, data any) ([]byte, error) {
	if rd.fragments.Lookup(name) == nil {
		return nil, perr.NotFoundf("render: no fragment %q", name)
	}
	var buf bytes.Buffer
	if err := rd.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "render: fragment %s", name)
	}
	return buf.Bytes(), nil
}

func (rd *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"number":  scrolly.Number,
		"percent": brush.Percent,
		"fixed1":  func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
		"join":    strings.Join,
		"asset":   rd.asset,
	}
}

// asset resolves a project image: absolute URLs pass through, relative paths
// hang off the base path
func (rd *Renderer) asset(src string) string {
	l := strings.ToLower(src)
	if strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://") || strings.HasPrefix(src, "/") {
		return src
	}
	return fmt.Sprintf("%s%s", rd.base, strings.TrimPrefix(src, "./"))
}
