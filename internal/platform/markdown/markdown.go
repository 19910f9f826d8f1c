// Package markdown renders user supplied markdown to sanitized HTML
package markdown

import (
	"bytes"
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	once     sync.Once
	md       goldmark.Markdown
	sanitize *bluemonday.Policy
)

func setup() {
	once.Do(func() {
		md = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough, extension.Table))
		sanitize = bluemonday.UGCPolicy()
		sanitize.AddTargetBlankToFullyQualifiedLinks(true)
	})
}

// HTML converts src and strips anything a user generated content policy would not allow.
// If conversion fails the source is escaped and returned as is
func HTML(src string) template.HTML {
	setup()
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(sanitize.SanitizeBytes(buf.Bytes()))
}
