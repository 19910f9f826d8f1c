package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "folio/internal/platform/net/http"
	"folio/internal/platform/net/middleware"
)

func TestCommonStack_RecoversAsJSONAndSetsHeaders(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	MountAPIV1(r, CommonStack(middleware.CORSOptions{AllowedOrigins: []string{"https://example.com"}}), func(api Router) {
		api.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })
		api.Get("/ok", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("content type %q", rec.Header().Get("Content-Type"))
	}

	req := httptest.NewRequest("GET", "/api/v1/ok/", nil)
	req.Header.Set("Origin", "https://example.com")
	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("trailing slash should be stripped, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
		t.Fatalf("cors header missing: %v", rec.Header())
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("no-cache headers missing")
	}
}

func TestPageStack_RecoversAsHTML(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Group(func(g Router) {
		g.Use(PageStack(time.Second)...)
		g.Get("/meta", func(http.ResponseWriter, *http.Request) { panic("bad template") })
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/meta", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("content type %q", rec.Header().Get("Content-Type"))
	}
	if len(PageStack(0)) != 2 {
		t.Fatalf("default page stack size")
	}
}
