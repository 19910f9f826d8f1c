package domain

import (
	"net/http"
	"net/url"
	"time"
)

// ThemeCookie stores the visitor's color scheme
const ThemeCookie = "color-scheme"

// Color schemes, applied verbatim as the color-scheme property
const (
	SchemeAuto  = "light dark"
	SchemeLight = "light"
	SchemeDark  = "dark"
)

// ThemeOption is one entry of the theme picker
type ThemeOption struct {
	Value string
	Label string
}

// ThemeOptions lists the picker entries in display order
var ThemeOptions = []ThemeOption{
	{Value: SchemeAuto, Label: "Automatic"},
	{Value: SchemeLight, Label: "Light"},
	{Value: SchemeDark, Label: "Dark"},
}

// ThemeForm is the theme picker submission
type ThemeForm struct {
	Scheme string `form:"scheme" validate:"required,oneof='light dark' light dark"`
	Return string `form:"return" validate:"max=2048"`
}

// SchemeFrom reads the stored scheme, falling back to automatic for a missing or
// unknown cookie
func SchemeFrom(r *http.Request) string {
	c, err := r.Cookie(ThemeCookie)
	if err != nil {
		return SchemeAuto
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return SchemeAuto
	}
	for _, o := range ThemeOptions {
		if o.Value == v {
			return v
		}
	}
	return SchemeAuto
}

// ThemeCookieFor builds the cookie persisting scheme under path for a year
func ThemeCookieFor(scheme, path string) *http.Cookie {
	return &http.Cookie{
		Name:     ThemeCookie,
		Value:    url.QueryEscape(scheme),
		Path:     path,
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
