// Package domain holds the site's navigation, theme and contact types
package domain

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	perr "folio/internal/platform/errors"
)

// NavPage is one configured navigation entry. URL is relative to the base path
// unless it is an absolute http(s) URL
type NavPage struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// External reports whether the page lives on another site
func (p NavPage) External() bool {
	u := strings.ToLower(p.URL)
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

// NavLink is a resolved navigation link
type NavLink struct {
	Title    string
	Href     string
	Current  bool
	External bool
}

type navFile struct {
	Pages []NavPage `yaml:"pages"`
}

// ParseNav reads a YAML document with a top level pages list
func ParseNav(r io.Reader) ([]NavPage, error) {
	var f navFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "nav: decode")
	}
	if len(f.Pages) == 0 {
		return nil, perr.WithField(perr.InvalidArgf("nav: no pages"), "pages")
	}
	for i, p := range f.Pages {
		if strings.TrimSpace(p.Title) == "" {
			return nil, perr.WithField(perr.InvalidArgf("nav: page %d has no title", i), "title")
		}
	}
	return f.Pages, nil
}

// Resolve prefixes internal URLs with base and marks the link for currentPath.
// External links never count as current
func Resolve(pages []NavPage, base, currentPath string) []NavLink {
	out := make([]NavLink, 0, len(pages))
	for _, p := range pages {
		l := NavLink{Title: p.Title, External: p.External()}
		if l.External {
			l.Href = p.URL
		} else {
			l.Href = base + strings.TrimLeft(p.URL, "/")
			l.Current = samePath(l.Href, currentPath)
		}
		out = append(out, l)
	}
	return out
}

func samePath(a, b string) bool {
	trim := func(s string) string {
		s = strings.TrimRight(s, "/")
		if s == "" {
			return "/"
		}
		return s
	}
	return trim(a) == trim(b)
}
