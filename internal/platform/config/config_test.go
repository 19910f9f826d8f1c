package config

import (
	"reflect"
	"testing"
	"time"

	kit "folio/internal/platform/testkit"
)

func TestPrefix(t *testing.T) {
	web := New().Prefix("FOLIO_").Prefix("WEB_")
	if got := web.key("ADDR"); got != "FOLIO_WEB_ADDR" {
		t.Fatalf("key = %q", got)
	}
	t.Setenv("FOLIO_WEB_ADDR", " :8080 ")
	if got := web.MayString("ADDR", ":4000"); got != ":8080" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("FOLIO_GITHUB_")
	t.Setenv("FOLIO_GITHUB_USER", "octocat")
	if got := c.MustString("USER"); got != "octocat" {
		t.Fatalf("MustString = %q", got)
	}
	t.Setenv("FOLIO_GITHUB_TOKEN", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("TOKEN") })
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMayDefaults(t *testing.T) {
	c := New().Prefix("FOLIO_TEST_")
	if c.MayString("S", "d") != "d" || c.MayInt("I", 3) != 3 || !c.MayBool("B", true) ||
		c.MayDuration("D", time.Second) != time.Second {
		t.Fatal("unset keys must return defaults")
	}
}

func TestMayParsed(t *testing.T) {
	c := New().Prefix("FOLIO_DATA_")
	t.Setenv("FOLIO_DATA_MAX_BYTES", "1048576")
	t.Setenv("FOLIO_DATA_TIMEOUT", "2s")
	t.Setenv("FOLIO_DATA_SWAGGER", "false")

	if got := c.MayInt("MAX_BYTES", 0); got != 1<<20 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayDuration("TIMEOUT", time.Minute); got != 2*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
	if c.MayBool("SWAGGER", true) {
		t.Fatal("MayBool should read false")
	}
}

func TestMayMalformedFallsBack(t *testing.T) {
	c := New().Prefix("FOLIO_BAD_")
	t.Setenv("FOLIO_BAD_I", "ten")
	t.Setenv("FOLIO_BAD_B", "maybe")
	t.Setenv("FOLIO_BAD_D", "10 minutes")

	if c.MayInt("I", 10) != 10 || !c.MayBool("B", true) || c.MayDuration("D", time.Minute) != time.Minute {
		t.Fatal("malformed values must fall back to defaults")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("FOLIO_WEB_")
	def := []string{"*"}

	t.Setenv("FOLIO_WEB_CORS_ORIGINS", " https://a.example , ,https://b.example ")
	if got := c.MayCSV("CORS_ORIGINS", def); !reflect.DeepEqual(got, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("MayCSV = %v", got)
	}
	t.Setenv("FOLIO_WEB_CORS_ORIGINS", " , ")
	if got := c.MayCSV("CORS_ORIGINS", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("MayCSV blanks = %v", got)
	}
}
