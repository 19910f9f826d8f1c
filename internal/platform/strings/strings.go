// Package strings holds small string and slice helpers shared across packages
package strings

import (
	"net/url"
	std "strings"
)

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// BasePath normalizes a site mount point to "/" or "/x/" form
func BasePath(s string) string {
	s = std.Trim(std.TrimSpace(s), "/")
	if s == "" {
		return "/"
	}
	return "/" + s + "/"
}

var uriUnreserved = std.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*", "%7E", "~")

// EncodeURIComponent matches the browser function: spaces become %20 and
// A-Z a-z 0-9 - _ . ! ~ * ' ( ) pass through
func EncodeURIComponent(s string) string {
	return uriUnreserved.Replace(url.QueryEscape(s))
}

// MustString returns s, panicking with name when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix returns s as a route prefix like /meta: one leading slash, no trailing
// slash. A prefix that trims to the root panics
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), "/")
	if s == "/" {
		panic("route prefix is required")
	}
	return s
}
