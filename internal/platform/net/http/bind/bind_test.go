package bind

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	perr "folio/internal/platform/errors"
)

type brushQuery struct {
	Progress float64  `form:"progress" validate:"min=0,max=100"`
	X0       *float64 `form:"x0"`
	Y0       *float64 `form:"y0"`
}

type themeForm struct {
	Scheme string `form:"scheme" validate:"required,oneof=light dark auto"`
}

type galleryQuery struct {
	Q string `json:"q" validate:"max=3"`
}

func field(t *testing.T, err error) string {
	t.Helper()
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("want validation error, got %v (%v)", perr.CodeOf(err), err)
	}
	e, _ := perr.As(err)
	return e.Field()
}

func postForm(vals url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestParseQuery(t *testing.T) {
	got, err := ParseQuery[brushQuery](httptest.NewRequest(http.MethodGet, "/brush?progress=42.5&x0=10", nil))
	if err != nil {
		t.Fatal(err)
	}
	if got.Progress != 42.5 || got.X0 == nil || *got.X0 != 10 || got.Y0 != nil {
		t.Fatalf("got %+v", got)
	}
}

func TestParseQuery_Rejects(t *testing.T) {
	cases := []struct {
		url, field, msg string
	}{
		{"/brush?progress=abc", "progress", "progress has an invalid value"},
		{"/brush?progress=120", "progress", "progress must be at most 100"},
		{"/brush?progress=-3", "progress", "progress must be at least 0"},
		{"/brush?progress=5&y0=nope", "y0", "y0 has an invalid value"},
	}
	for _, c := range cases {
		_, err := ParseQuery[brushQuery](httptest.NewRequest(http.MethodGet, c.url, nil))
		if f := field(t, err); f != c.field {
			t.Errorf("%s: field %q, want %q", c.url, f, c.field)
		}
		if err.Error() != c.msg {
			t.Errorf("%s: message %q, want %q", c.url, err.Error(), c.msg)
		}
	}
}

func TestFieldNameFallsBackToJSONTag(t *testing.T) {
	_, err := ParseQuery[galleryQuery](httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(galleryQuery{Q: "long"}); field(t, err) != "q" {
		t.Fatalf("field = %q", field(t, err))
	}
}

func TestParseForm(t *testing.T) {
	got, err := ParseForm[themeForm](postForm(url.Values{"scheme": {"dark"}}))
	if err != nil || got.Scheme != "dark" {
		t.Fatalf("got %+v, %v", got, err)
	}

	_, err = ParseForm[themeForm](postForm(url.Values{"scheme": {"sepia"}}))
	if f := field(t, err); f != "scheme" {
		t.Fatalf("field = %q", f)
	}
	if !strings.HasPrefix(err.Error(), "scheme must be one of") {
		t.Fatalf("message = %q", err.Error())
	}

	_, err = ParseForm[themeForm](postForm(url.Values{}))
	if f := field(t, err); f != "scheme" {
		t.Fatalf("missing scheme field = %q", f)
	}
}

func TestValidate_NonStruct(t *testing.T) {
	if err := Validate(5); perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("got %v (%v)", perr.CodeOf(err), err)
	}
}
