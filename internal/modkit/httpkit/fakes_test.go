package httpkit

import (
	"net/http"

	phttp "folio/internal/platform/net/http"
)

// fakeRouter records every registration so tests can assert on verb, path and scope
type fakeRouter struct {
	prefixes  []string
	useCalls  int
	lastMWLen int

	recs []struct {
		verb string
		path string
		h    phttp.Handler
	}
}

func (f *fakeRouter) rec(verb, path string, h phttp.Handler) {
	f.recs = append(f.recs, struct {
		verb, path string
		h          phttp.Handler
	}{verb, path, h})
}

func (f *fakeRouter) Get(path string, h phttp.Handler)  { f.rec("GET", path, h) }
func (f *fakeRouter) Post(path string, h phttp.Handler) { f.rec("POST", path, h) }
func (f *fakeRouter) Head(path string, h phttp.Handler) { f.rec("HEAD", path, h) }
func (f *fakeRouter) Handle(path string, h http.Handler) {
	f.rec("HANDLE", path, h.ServeHTTP)
}
func (f *fakeRouter) NotFound(h phttp.Handler) { f.rec("NOTFOUND", "", h) }

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Group(fn func(Router)) { fn(f) }

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }

var _ Router = (*fakeRouter)(nil)
