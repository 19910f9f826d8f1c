package projects

import (
	"html/template"

	"folio/internal/platform/markdown"
)

// DescriptionHTML renders the description as sanitized HTML; descriptions may use markdown
func (p Project) DescriptionHTML() template.HTML {
	return markdown.HTML(p.Description)
}
