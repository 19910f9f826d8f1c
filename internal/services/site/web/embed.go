// Package web embeds the site's templates, stylesheet, script and default navigation
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html static/* nav.yaml
var files embed.FS

// Templates is the template tree rooted at templates/
func Templates() fs.FS { return sub("templates") }

// Static is the asset tree rooted at static/
func Static() fs.FS { return sub("static") }

// Nav opens the default navigation file
func Nav() (fs.File, error) { return files.Open("nav.yaml") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return f
}
