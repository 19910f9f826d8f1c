package http

import (
	"context"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/adapters/github"
	perr "folio/internal/platform/errors"
	phttp "folio/internal/platform/net/http"
	kit "folio/internal/platform/testkit"
	metasvc "folio/internal/services/api/meta/service"
	projsvc "folio/internal/services/api/projects/service"
	"folio/internal/services/dataset"
	"folio/internal/services/site/domain"
	"folio/internal/services/site/render"
	"folio/internal/services/site/web"
)

type fakeProfiles struct {
	p     github.Profile
	err   error
	calls int
}

func (f *fakeProfiles) Profile(context.Context, string) (github.Profile, error) {
	f.calls++
	return f.p, f.err
}

type failingOpener struct{}

func (failingOpener) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, perr.Upstreamf("fetch failed")
}

func fixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromReaders(strings.NewReader(kit.LocCSV), strings.NewReader(kit.ProjectsJSON), "https://github.com/me/site", nil)
	require.NoError(t, err)
	return ds
}

func newSite(t *testing.T, ds *dataset.Dataset, tweak func(*Deps)) stdhttp.Handler {
	t.Helper()
	rd, err := render.New(web.Templates(), "/")
	require.NoError(t, err)
	d := Deps{
		Render:        rd,
		Base:          "/",
		Nav:           []domain.NavPage{{Title: "Home"}, {Title: "Projects", URL: "projects"}, {Title: "Meta", URL: "meta"}},
		Meta:          metasvc.New(ds),
		Projects:      projsvc.New(ds),
		Resume:        ds.Resume,
		ContactAction: "mailto:me@example.com",
	}
	if tweak != nil {
		tweak(&d)
	}
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)
	return mux
}

func do(h stdhttp.Handler, method, target string, form url.Values, cookies ...*stdhttp.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHome(t *testing.T) {
	gh := &fakeProfiles{p: github.Profile{Login: "me", Followers: 1200, PublicRepos: 7}}
	h := newSite(t, fixture(t), func(d *Deps) {
		d.Profiles = gh
		d.GitHubUser = "me"
	})

	rec := do(h, stdhttp.MethodGet, "/", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "My GitHub Stats")
	assert.Contains(t, body, "1,200")
	assert.Contains(t, body, "Scatter Stories")
	assert.Contains(t, body, "Weather Board")
	assert.NotContains(t, body, "First Site", "only the latest three are listed")
	assert.Contains(t, body, `<a href="/" class="current">Home</a>`)
	assert.Equal(t, 1, gh.calls)
}

func TestHome_ProfileErrorOmitsSection(t *testing.T) {
	h := newSite(t, fixture(t), func(d *Deps) {
		d.Profiles = &fakeProfiles{err: perr.Upstreamf("rate limited")}
		d.GitHubUser = "me"
	})
	rec := do(h, stdhttp.MethodGet, "/", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "My GitHub Stats")
}

func TestProjectsPage(t *testing.T) {
	h := newSite(t, fixture(t), nil)

	rec := do(h, stdhttp.MethodGet, "/projects?q=lab", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "4 Projects")
	assert.Contains(t, body, "Lab Notes")
	assert.NotContains(t, body, "Weather Board")
	assert.Contains(t, body, `id="projects-pie-plot"`)
	assert.Contains(t, body, "toggle=0")

	rec = do(h, stdhttp.MethodGet, "/projects?selected=-2", nil)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "400 Bad Request")
}

func TestGalleryFragment_Toggle(t *testing.T) {
	h := newSite(t, fixture(t), nil)

	// slices are ordered by first appearance: 2024 then 2023
	rec := do(h, stdhttp.MethodGet, "/projects/fragments/gallery?toggle=1", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, `data-selected="1"`)
	assert.Contains(t, body, "First Site")
	assert.NotContains(t, body, "Scatter Stories")

	rec = do(h, stdhttp.MethodGet, "/projects/fragments/gallery?selected=1&toggle=1", nil)
	assert.Contains(t, rec.Body.String(), `data-selected="-1"`)
	assert.Contains(t, rec.Body.String(), "Scatter Stories")

	rec = do(h, stdhttp.MethodGet, "/projects/fragments/gallery?q=nothing-matches", nil)
	assert.Contains(t, rec.Body.String(), "No projects found.")
}

func TestMetaPage(t *testing.T) {
	h := newSite(t, fixture(t), nil)

	rec := do(h, stdhttp.MethodGet, "/meta", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="commit-scatter"`)
	assert.Contains(t, body, `data-cutoff="`)
	assert.Contains(t, body, "No commits selected")
	assert.Contains(t, body, "my first commit, and it was glorious")
	assert.Contains(t, body, "https://github.com/me/site/commit/c1")
	assert.Contains(t, body, "<code>main.js</code>")
}

func TestMetaPage_DisabledWithoutHistory(t *testing.T) {
	ds, err := dataset.Load(context.Background(), failingOpener{}, dataset.Sources{Loc: "l", Projects: "p"})
	require.NoError(t, err)
	h := newSite(t, ds, nil)

	rec := do(h, stdhttp.MethodGet, "/meta", nil)
	assert.Equal(t, stdhttp.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "commit history unavailable")

	rec = do(h, stdhttp.MethodGet, "/meta/fragments/stats", nil)
	assert.Equal(t, stdhttp.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="error"`)

	// home still renders without projects
	rec = do(h, stdhttp.MethodGet, "/", nil)
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No projects found.")
}

func TestMetaFragments(t *testing.T) {
	h := newSite(t, fixture(t), nil)

	rec := do(h, stdhttp.MethodGet, "/meta/fragments/scatter?progress=50&from=100", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
	assert.Contains(t, rec.Body.String(), "exit")

	rec = do(h, stdhttp.MethodGet, "/meta/fragments/stats?progress=100", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Total commits")

	rec = do(h, stdhttp.MethodGet, "/meta/fragments/stats?progress=140", nil)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "progress must be at most 100")

	rec = do(h, stdhttp.MethodGet, "/meta/fragments/files", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="line"`)

	rec = do(h, stdhttp.MethodGet, "/meta/fragments/brush?x0=0&y0=0&x1=1000&y1=600", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "3 commits selected")
	assert.Contains(t, rec.Body.String(), `data-selected="c1 c2 c3"`)

	rec = do(h, stdhttp.MethodGet, "/meta/fragments/brush?x0=0", nil)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	rec = do(h, stdhttp.MethodGet, "/meta/fragments/scroll?top=0", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "another glorious commit")

	rec = do(h, stdhttp.MethodGet, "/meta/fragments/scroll-files?top=0", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new complexity")
	assert.Contains(t, rec.Body.String(), `data-target="files-panel"`)

	rec = do(h, stdhttp.MethodGet, "/meta/fragments/scroll?top=-5", nil)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestContact(t *testing.T) {
	h := newSite(t, fixture(t), nil)

	rec := do(h, stdhttp.MethodGet, "/contact", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	rec = do(h, stdhttp.MethodPost, "/contact", url.Values{"subject": {"Hi there"}, "body": {"a&b"}})
	require.Equal(t, stdhttp.StatusSeeOther, rec.Code)
	assert.Equal(t, "mailto:me@example.com?subject=Hi%20there&body=a%26b", rec.Header().Get("Location"))

	rec = do(h, stdhttp.MethodPost, "/contact", url.Values{"subject": {strings.Repeat("x", 201)}})
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "subject must be at most 200")
	assert.Contains(t, rec.Body.String(), strings.Repeat("x", 201))
}

func TestContact_NotConfigured(t *testing.T) {
	h := newSite(t, fixture(t), func(d *Deps) { d.ContactAction = "" })
	rec := do(h, stdhttp.MethodPost, "/contact", url.Values{"subject": {"hi"}})
	assert.Equal(t, stdhttp.StatusServiceUnavailable, rec.Code)
}

func TestTheme(t *testing.T) {
	h := newSite(t, fixture(t), nil)

	rec := do(h, stdhttp.MethodPost, "/theme", url.Values{"scheme": {"dark"}, "return": {"/projects"}})
	require.Equal(t, stdhttp.StatusSeeOther, rec.Code)
	assert.Equal(t, "/projects", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, domain.ThemeCookie, cookies[0].Name)

	page := do(h, stdhttp.MethodGet, "/contact", nil, cookies[0])
	assert.Contains(t, page.Body.String(), "color-scheme: dark")
	assert.Contains(t, page.Body.String(), `<option value="dark" selected>`)

	rec = do(h, stdhttp.MethodPost, "/theme", url.Values{"scheme": {"light"}, "return": {"//evil.example.com"}})
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = do(h, stdhttp.MethodPost, "/theme", url.Values{"scheme": {"sepia"}})
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestReturnTo(t *testing.T) {
	h := &handlers{Deps: Deps{Base: "/folio/"}}
	assert.Equal(t, "/folio/meta", h.returnTo("/folio/meta"))
	assert.Equal(t, "/folio", h.returnTo("/folio"))
	assert.Equal(t, "/folio/", h.returnTo("/other"))
	assert.Equal(t, "/folio/", h.returnTo("https://evil.example.com/folio/"))
	assert.Equal(t, "/folio/", h.returnTo(""))
}

func TestResume(t *testing.T) {
	h := newSite(t, fixture(t), nil)
	rec := do(h, stdhttp.MethodGet, "/resume", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Education")
}

func TestNotFound(t *testing.T) {
	h := newSite(t, fixture(t), nil)
	rec := do(h, stdhttp.MethodGet, "/nope", nil)
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404 Not Found")
}
