// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'folio/internal/core/version.version=v0.1.0'
	// -X 'folio/internal/core/version.commit=abcd' -X 'folio/internal/core/version.date=2026-01-01'"
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// Service names the binary reporting the build; the web server is the default
var Service = "folio-web"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
