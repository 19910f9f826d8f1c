package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSugar_MountsGets(t *testing.T) {
	r := &fakeRouter{}
	GetQuery(r, "/window", func(_ *http.Request, q fragmentQuery) (any, error) { return q, nil })
	Get(r, "/commits", func(*http.Request) (any, error) { return []string{}, nil })

	if len(r.recs) != 2 {
		t.Fatalf("got %d registrations", len(r.recs))
	}
	for i, path := range []string{"/window", "/commits"} {
		if r.recs[i].verb != "GET" || r.recs[i].path != path {
			t.Fatalf("rec %d = %s %s", i, r.recs[i].verb, r.recs[i].path)
		}
	}

	rec := httptest.NewRecorder()
	r.recs[1].h(rec, httptest.NewRequest(http.MethodGet, "/commits", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("commits status %d", rec.Code)
	}
}
