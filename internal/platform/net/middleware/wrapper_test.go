package middleware_test

import (
	"compress/flate"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"folio/internal/platform/net/middleware"
)

func chain(h http.Handler, mws ...middleware.Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestCompress_ScatterSVG(t *testing.T) {
	svg := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = io.WriteString(w, `<svg id="commit-scatter">`+strings.Repeat(`<circle class="dot present"/>`, 400)+`</svg>`)
	})
	req := httptest.NewRequest(http.MethodGet, "/meta/fragments/scatter", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	middleware.Compress(flate.BestSpeed)(svg).ServeHTTP(rr, req)

	if got := rr.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}
}

func TestCORS_PreflightDefaults(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://folio.example"}})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/meta/commits", nil)
	req.Header.Set("Origin", "https://folio.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "X-Request-ID")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://folio.example" {
		t.Fatalf("Allow-Origin = %q", got)
	}
	if rr.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatal("preflight should list allowed methods")
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/meta/commits", nil)
	req.Header.Set("Origin", "https://folio.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("DELETE is outside the default method list")
	}
}

func TestSetHeaderAndHeartbeat(t *testing.T) {
	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), middleware.Heartbeat("/ping"), middleware.SetHeader("Referrer-Policy", "same-origin"))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("/ping = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/meta", nil))
	if rr.Code != http.StatusTeapot || rr.Header().Get("Referrer-Policy") != "same-origin" {
		t.Fatalf("got %d %v", rr.Code, rr.Header())
	}
}

func TestTimeout_CancelsContext(t *testing.T) {
	h := middleware.Timeout(5 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/meta", nil))
	if rr.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504", rr.Code)
	}
}

func TestSite_MirrorsRequestID(t *testing.T) {
	var rid string
	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid = chimw.GetReqID(r.Context())
	}), middleware.Site(time.Second)...)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rid == "" || rr.Header().Get("X-Request-ID") != rid {
		t.Fatalf("request id %q not mirrored: %q", rid, rr.Header().Get("X-Request-ID"))
	}
}
