// Package domain holds DTOs and ports for the commit history views
package domain

import (
	"time"

	"folio/internal/core/brush"
	"folio/internal/core/commits"
	"folio/internal/core/scatter"
	"folio/internal/core/scrolly"
	perr "folio/internal/platform/errors"
)

// FullProgress is the slider position that shows every commit
const FullProgress = 100.0

// FilterQuery selects commits by slider position
type FilterQuery struct {
	Progress *float64 `form:"progress" json:"progress,omitempty" validate:"omitempty,min=0,max=100" example:"100"`
}

// Value is the slider position, 100 when unset
func (q FilterQuery) Value() float64 {
	if q.Progress == nil {
		return FullProgress
	}
	return *q.Progress
}

// ScatterQuery names the plot being drawn and the one it replaces. The plot shows
// either the commits up to a slider position or one scroll window of the narrative;
// Top wins when both are set. From and FromTop describe the previous plot, and when
// neither is set every mark enters
type ScatterQuery struct {
	Progress *float64 `form:"progress" json:"progress,omitempty" validate:"omitempty,min=0,max=100" example:"60"`
	From     *float64 `form:"from" json:"from,omitempty" validate:"omitempty,min=0,max=100" example:"100"`
	Top      *float64 `form:"top" json:"top,omitempty" example:"450"`
	FromTop  *float64 `form:"fromTop" json:"fromTop,omitempty" example:"0"`
}

// BrushQuery is a selection rectangle in plot space over the plot currently drawn,
// named the same way as in ScatterQuery. Omitting all four corners clears the selection
type BrushQuery struct {
	Progress *float64 `form:"progress" json:"progress,omitempty" validate:"omitempty,min=0,max=100" example:"100"`
	Top      *float64 `form:"top" json:"top,omitempty" example:"450"`
	X0       *float64 `form:"x0" json:"x0,omitempty" example:"40"`
	Y0       *float64 `form:"y0" json:"y0,omitempty" example:"10"`
	X1       *float64 `form:"x1" json:"x1,omitempty" example:"500"`
	Y1       *float64 `form:"y1" json:"y1,omitempty" example:"300"`
}

// Selection returns the rectangle, nil when no corner is set. A partial rectangle
// is a validation error naming the first missing corner
func (q BrushQuery) Selection() (*brush.Rect, error) {
	corners := []struct {
		name string
		v    *float64
	}{{"x0", q.X0}, {"y0", q.Y0}, {"x1", q.X1}, {"y1", q.Y1}}
	set := 0
	missing := ""
	for _, c := range corners {
		if c.v != nil {
			set++
		} else if missing == "" {
			missing = c.name
		}
	}
	switch set {
	case 0:
		return nil, nil
	case len(corners):
		r := brush.Rect{X0: *q.X0, Y0: *q.Y0, X1: *q.X1, Y1: *q.Y1}.Normalize()
		return &r, nil
	default:
		return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s is required with the other corners", missing), missing)
	}
}

// Window kinds
const (
	KindCommits = "commits"
	KindFiles   = "files"
)

// WindowQuery is a scroll offset into one of the two narratives
type WindowQuery struct {
	Top  float64 `form:"top" json:"top" example:"450"`
	Kind string  `form:"kind" json:"kind,omitempty" validate:"omitempty,oneof=commits files" example:"commits"`
}

// Extent is the time range of the history
type Extent struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CommitsResponse is the whole history with its headline numbers
type CommitsResponse struct {
	Commits []commits.Summary `json:"commits"`
	Stats   commits.Stats     `json:"stats"`
	Extent  *Extent           `json:"extent,omitempty"`
}

// FileRow is one file of the file list
type FileRow struct {
	Name  string `json:"name"`
	Lines int    `json:"lines"`
}

// FilterResponse is everything the slider updates
type FilterResponse struct {
	Progress    float64           `json:"progress"`
	Cutoff      *time.Time        `json:"cutoff,omitempty"`
	CutoffLabel string            `json:"cutoffLabel,omitempty"`
	Commits     []commits.Summary `json:"commits"`
	Stats       commits.Stats     `json:"stats"`
	Files       []FileRow         `json:"files"`
}

// ScatterResult is a reconciled plot. Layout is for drawing only
type ScatterResult struct {
	Layout      scatter.Layout       `json:"-"`
	Marks       []scatter.Mark       `json:"marks"`
	Transitions []scatter.Transition `json:"transitions"`
	Duration    time.Duration        `json:"duration"`
}

// WindowResponse is one narrative window. Files is set for the file-size narrative
type WindowResponse struct {
	Kind   string               `json:"kind"`
	Window scrolly.Window       `json:"window"`
	Items  []scrolly.Item       `json:"items"`
	Files  []scrolly.FileDetail `json:"files,omitempty"`
}
