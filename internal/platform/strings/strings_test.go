package strings

import (
	"testing"

	kit "folio/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty([]string{"GET"}, []string{"POST"}); len(got) != 1 || got[0] != "GET" {
		t.Fatalf("non-empty input replaced: %v", got)
	}
	if got := IfEmpty(nil, []int{9}); len(got) != 1 || got[0] != 9 {
		t.Fatalf("default not used: %v", got)
	}
}

func TestBasePath(t *testing.T) {
	cases := map[string]string{
		"":        "/",
		" / ":     "/",
		"folio":   "/folio/",
		"/folio/": "/folio/",
		"/a/b":    "/a/b/",
		"//x//":   "/x/",
	}
	for in, want := range cases {
		if got := BasePath(in); got != want {
			t.Errorf("BasePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncodeURIComponent(t *testing.T) {
	cases := map[string]string{
		"Hello there":     "Hello%20there",
		"a+b=c&d":         "a%2Bb%3Dc%26d",
		"it's (fine)! *~": "it's%20(fine)!%20*~",
		"line\nbreak":     "line%0Abreak",
		"café":            "caf%C3%A9",
		"-_.":             "-_.",
	}
	for in, want := range cases {
		if got := EncodeURIComponent(in); got != want {
			t.Errorf("EncodeURIComponent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("meta", "module name"); got != "meta" {
		t.Fatalf("got %q", got)
	}
	kit.MustPanic(t, func() { MustString(" \t", "module name") })
}

func TestMustPrefix(t *testing.T) {
	for in, want := range map[string]string{"/meta/": "/meta", " projects ": "/projects", "system": "/system"} {
		if got := MustPrefix(in); got != want {
			t.Errorf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { MustPrefix(" / ") })
}
