package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	kit "folio/internal/platform/testkit"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, ln := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if ln == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(ln), &m); err != nil {
			t.Fatalf("line %q: %v", ln, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "WARN", Format: "json", Service: "folio-web", Writer: &buf})
	l.Info().Msg("dropped")
	l.Warn().Str("page", "meta").Msg("kept")

	got := lines(t, &buf)
	if len(got) != 1 {
		t.Fatalf("want 1 line, got %d: %s", len(got), buf.String())
	}
	if got[0]["message"] != "kept" || got[0]["service"] != "folio-web" || got[0]["page"] != "meta" {
		t.Fatalf("unexpected line %v", got[0])
	}
}

func TestNew_UnknownLevelIsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "chatty", Format: "json", Writer: &buf})
	l.Debug().Msg("seen")
	if len(lines(t, &buf)) != 1 {
		t.Fatal("unknown level should fall back to debug")
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "info", Format: "console", Writer: &buf})
	l.Info().Str("commit", "abc123").Msg("change log loaded")
	kit.MustContain(t, buf.String(), "change log loaded")
	kit.MustContain(t, buf.String(), "abc123")
}

func TestRequestChildren(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Service: "folio-web", Writer: &buf})
	t.Cleanup(func() { Init(Options{Format: "json", Writer: &bytes.Buffer{}}) })

	ctx := WithRequest(context.Background(), "req-7", "meta.scatter")
	C(ctx).Info().Msg("fragment")
	Named("assets").Info().Msg("fetched")
	C(context.Background()).Info().Msg("bare")

	got := lines(t, &buf)
	if len(got) != 3 {
		t.Fatalf("want 3 lines, got %d", len(got))
	}
	if got[0]["request_id"] != "req-7" || got[0]["page"] != "meta.scatter" {
		t.Fatalf("request fields missing: %v", got[0])
	}
	if got[1]["component"] != "assets" {
		t.Fatalf("component missing: %v", got[1])
	}
	if _, ok := got[2]["request_id"]; ok {
		t.Fatalf("bare context should carry no request id: %v", got[2])
	}
	if Named("") != Get() {
		t.Fatal("empty component should return the root")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "folio-loc")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	o := FromEnv()
	if o.Level != "warn" || o.Format != "json" || o.Service != "folio-loc" || !o.Caller || o.SampleEvery != 5 {
		t.Fatalf("FromEnv = %+v", o)
	}

	t.Setenv("LOG_SERVICE", "")
	if got := FromEnv().Service; got != "folio" {
		t.Fatalf("default service = %q", got)
	}
}
