// Package domain holds DTOs and ports for the project gallery
package domain

import (
	"context"
	"html/template"

	"folio/internal/core/pie"
	"folio/internal/core/projects"
)

// GalleryQuery is a search plus an optional pie selection. Toggle is the slice the
// visitor clicked; it selects that slice or clears it when it was already selected
type GalleryQuery struct {
	Q        string `form:"q" json:"q,omitempty" validate:"max=200" example:"lab"`
	Selected *int   `form:"selected" json:"selected,omitempty" validate:"omitempty,min=-1" example:"0"`
	Toggle   *int   `form:"toggle" json:"toggle,omitempty" validate:"omitempty,min=0" example:"1"`
}

// Selection resolves the selected slice index after applying Toggle
func (q GalleryQuery) Selection() int {
	sel := projects.NoSelection
	if q.Selected != nil {
		sel = *q.Selected
	}
	if q.Toggle != nil {
		sel = projects.Toggle(sel, *q.Toggle)
	}
	return sel
}

// ProjectView is a project with its description rendered
type ProjectView struct {
	projects.Project
	DescriptionHTML template.HTML `json:"descriptionHtml"`
}

// Slice is one pie slice with the arc the page draws
type Slice struct {
	Index    int     `json:"index"`
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Color    string  `json:"color"`
	Path     string  `json:"path"`
	Selected bool    `json:"selected"`
}

// GalleryResponse is the filtered gallery with its pie
type GalleryResponse struct {
	Query    string        `json:"query"`
	Selected int           `json:"selected"`
	Title    string        `json:"title"`
	Projects []ProjectView `json:"projects"`
	Slices   []Slice       `json:"slices"`

	pie []pie.Slice
}

// PieSlices returns the laid out slices for drawing
func (g GalleryResponse) PieSlices() []pie.Slice { return g.pie }

// WithPie attaches laid out slices
func (g GalleryResponse) WithPie(s []pie.Slice) GalleryResponse {
	g.pie = s
	return g
}

// ServicePort is consumed by the JSON handlers and by the site pages
type ServicePort interface {
	Gallery(ctx context.Context, q GalleryQuery) (GalleryResponse, error)
	Latest(ctx context.Context, n int) ([]ProjectView, error)
}
