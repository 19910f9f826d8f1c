// Package scatter lays out the commit scatter plot, reconciles marks between renders,
// and draws the result as SVG
package scatter

import (
	"time"

	"folio/internal/core/commits"
	"folio/internal/core/scale"
)

// Margin is the space reserved around the plot area
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Geometry is the drawing surface size in viewBox units
type Geometry struct {
	Width, Height float64
	Margin        Margin
}

// DefaultGeometry is the 1000x600 surface the page uses
var DefaultGeometry = Geometry{
	Width:  1000,
	Height: 600,
	Margin: Margin{Top: 10, Right: 10, Bottom: 20, Left: 40},
}

// Area is the usable plot rectangle inside the margins
type Area struct {
	Top, Right, Bottom, Left float64
	Width, Height            float64
}

// Area computes the usable rectangle
func (g Geometry) Area() Area {
	return Area{
		Top:    g.Margin.Top,
		Right:  g.Width - g.Margin.Right,
		Bottom: g.Height - g.Margin.Bottom,
		Left:   g.Margin.Left,
		Width:  g.Width - g.Margin.Left - g.Margin.Right,
		Height: g.Height - g.Margin.Top - g.Margin.Bottom,
	}
}

// Radius bounds for the smallest and largest commit
const (
	MinRadius = 5
	MaxRadius = 35
)

// Point is a mark's position and radius
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// Mark is one commit's target geometry
type Mark struct {
	Key    string          `json:"key"`
	Point                  // target
	Commit commits.Summary `json:"commit"`
}

// Scales are the projections a layout was computed with; the brush reuses them
type Scales struct {
	X scale.Time
	Y scale.Linear
	R scale.Sqrt
}

// Project returns a commit's plot coordinates
func (s Scales) Project(c commits.Summary) (x, y float64) {
	return s.X.Map(c.Datetime), s.Y.Map(c.HourFrac)
}

// Layout is the full geometry for one render
type Layout struct {
	Geometry Geometry
	Scales   Scales
	Marks    []Mark
}

// NewLayout projects commits onto the plot: time on x (niced), hour of day on y
// with midnight at the bottom, and sqrt-scaled radius by lines changed
func NewLayout(cs []commits.Summary, g Geometry, loc *time.Location) Layout {
	a := g.Area()

	var t0, t1 time.Time
	minL, maxL := 0, 0
	for i, c := range cs {
		if i == 0 || c.Datetime.Before(t0) {
			t0 = c.Datetime
		}
		if i == 0 || c.Datetime.After(t1) {
			t1 = c.Datetime
		}
		if i == 0 || c.TotalLines < minL {
			minL = c.TotalLines
		}
		if i == 0 || c.TotalLines > maxL {
			maxL = c.TotalLines
		}
	}

	x := scale.NewTime(t0, t1, a.Left, a.Right)
	x.Loc = loc
	x = x.Nice()

	sc := Scales{
		X: x,
		Y: scale.NewLinear(0, 24, a.Bottom, a.Top),
		R: scale.NewSqrt(float64(minL), float64(maxL), MinRadius, MaxRadius),
	}

	marks := make([]Mark, 0, len(cs))
	for _, c := range cs {
		px, py := sc.Project(c)
		marks = append(marks, Mark{
			Key:    c.ID,
			Point:  Point{X: px, Y: py, R: sc.R.Map(float64(c.TotalLines))},
			Commit: c,
		})
	}
	return Layout{Geometry: g, Scales: sc, Marks: marks}
}
