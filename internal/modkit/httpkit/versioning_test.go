package httpkit

import (
	"net/http"
	"testing"
)

func TestMountAPI_MountsPrefixAndAppliesMiddleware(t *testing.T) {
	r := &fakeRouter{}
	hits := 0
	MountAPI(r, "v2", []func(http.Handler) http.Handler{func(h http.Handler) http.Handler { return h }},
		func(Router) { hits++ })
	if len(r.prefixes) != 1 || r.prefixes[0] != "/api/v2" {
		t.Fatalf("prefixes %v", r.prefixes)
	}
	if r.useCalls != 1 || r.lastMWLen != 1 || hits != 1 {
		t.Fatalf("use %d len %d hits %d", r.useCalls, r.lastMWLen, hits)
	}
}

func TestMountAPI_TrimsLeadingSlashOnVersion(t *testing.T) {
	r := &fakeRouter{}
	MountAPI(r, "/v3", nil, func(Router) {})
	if r.prefixes[0] != "/api/v3" {
		t.Fatalf("prefix %q", r.prefixes[0])
	}
	if r.useCalls != 0 {
		t.Fatalf("unexpected Use")
	}
}

func TestMountAPIV1_Convenience(t *testing.T) {
	r := &fakeRouter{}
	MountAPIV1(r, nil, func(Router) {})
	if r.prefixes[0] != "/api/v1" {
		t.Fatalf("prefix %q", r.prefixes[0])
	}
}
