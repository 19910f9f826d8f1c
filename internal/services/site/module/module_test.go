package module

import (
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/modkit"
	"folio/internal/modkit/module"
	phttp "folio/internal/platform/net/http"
	kit "folio/internal/platform/testkit"
	metamod "folio/internal/services/api/meta/module"
	metasvc "folio/internal/services/api/meta/service"
	projmod "folio/internal/services/api/projects/module"
	projsvc "folio/internal/services/api/projects/service"
	"folio/internal/services/dataset"
)

func mount(t *testing.T, o Options) stdhttp.Handler {
	t.Helper()
	module.Reset()
	t.Cleanup(module.Reset)

	ds, err := dataset.FromReaders(strings.NewReader(kit.LocCSV), strings.NewReader(kit.ProjectsJSON), "", nil)
	require.NoError(t, err)
	module.Register("meta", metamod.Ports{Views: metasvc.New(ds)})
	module.Register("projects", projmod.Ports{Gallery: projsvc.New(ds)})
	o.Dataset = ds

	mux := chi.NewRouter()
	New(modkit.Deps{}, o).MountRoutes(phttp.AdaptChi(mux))
	return mux
}

func get(h stdhttp.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, target, nil))
	return rec
}

func TestMount_Root(t *testing.T) {
	h := mount(t, Options{})

	for _, p := range []string{"/", "/projects", "/meta", "/contact", "/resume"} {
		rec := get(h, p)
		assert.Equal(t, stdhttp.StatusOK, rec.Code, p)
		assert.Contains(t, rec.Body.String(), `href="/static/style.css"`, p)
	}

	rec := get(h, "/static/folio.js")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "meta/fragments/")
}

func TestMount_BasePath(t *testing.T) {
	h := mount(t, Options{BasePath: "folio"})

	rec := get(h, "/folio/projects")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `href="/folio/static/style.css"`)
	assert.Contains(t, body, `src="/folio/images/scatter.png"`)
	assert.Contains(t, body, `<a href="/folio/projects" class="current">Projects</a>`)
	assert.Contains(t, body, `href="https://github.com/" target="_blank"`)

	assert.Equal(t, stdhttp.StatusOK, get(h, "/folio/static/style.css").Code)
	assert.Equal(t, stdhttp.StatusNotFound, get(h, "/projects").Code)
}

func TestMount_Images(t *testing.T) {
	dir := kit.WriteFiles(t, map[string]string{"scatter.png": "png-bytes"})
	h := mount(t, Options{ImagesDir: dir})

	rec := get(h, "/images/scatter.png")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestMount_PanicsWithoutPorts(t *testing.T) {
	module.Reset()
	t.Cleanup(module.Reset)
	m := New(modkit.Deps{}, Options{})
	kit.MustPanic(t, func() { m.MountRoutes(phttp.AdaptChi(chi.NewRouter())) })
}
