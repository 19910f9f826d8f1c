package scatter

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"time"

	svg "github.com/ajstarks/svgo"
	svgf "github.com/ajstarks/svgo/float"

	"folio/internal/core/scale"
)

// SVGOptions tune the drawn output
type SVGOptions struct {
	// ID is set on the root element so the page can find and replace it
	ID string
	// Fill is the mark color
	Fill string
	// Opacity is the resting fill opacity; hover raises it to 1 via the stylesheet
	Opacity float64
}

func (o SVGOptions) withDefaults() SVGOptions {
	if o.ID == "" {
		o.ID = "commit-scatter"
	}
	if o.Fill == "" {
		o.Fill = "steelblue"
	}
	if o.Opacity == 0 {
		o.Opacity = 0.7
	}
	return o
}

// WriteSVG draws gridlines, axes, and one circle per transition. Each circle starts at
// the transition's From geometry and animates to To, freezing at the end
func WriteSVG(w io.Writer, l Layout, trs []Transition, opt SVGOptions) {
	opt = opt.withDefaults()
	g := l.Geometry
	a := g.Area()

	canvas := svg.New(w)
	canvas.Start(int(g.Width), int(g.Height),
		fmt.Sprintf(`viewBox="0 0 %d %d"`, int(g.Width), int(g.Height)),
		`id="`+html.EscapeString(opt.ID)+`"`, `style="overflow: visible"`,
		`data-top="`+ftoa(a.Top)+`"`, `data-bottom="`+ftoa(a.Bottom)+`"`,
		`data-left="`+ftoa(a.Left)+`"`, `data-right="`+ftoa(a.Right)+`"`)

	yTicks := l.Scales.Y.Ticks(12)

	// gridlines
	canvas.Group(`class="gridlines"`)
	for _, t := range yTicks {
		y := px(l.Scales.Y.Map(t))
		canvas.Line(px(a.Left), y, px(a.Right), y, `stroke="currentColor"`, `stroke-opacity="0.15"`)
	}
	canvas.Gend()

	// x axis
	canvas.Group(`class="x-axis"`, `font-size="10"`, `text-anchor="middle"`)
	canvas.Line(px(a.Left), px(a.Bottom), px(a.Right), px(a.Bottom), `stroke="currentColor"`)
	if len(l.Marks) > 0 {
		for _, t := range l.Scales.X.Ticks(10) {
			x := px(l.Scales.X.Map(t))
			canvas.Line(x, px(a.Bottom), x, px(a.Bottom)+6, `stroke="currentColor"`)
			canvas.Text(x, px(a.Bottom)+16, scale.TickFormat(t), `fill="currentColor"`)
		}
	}
	canvas.Gend()

	// y axis
	canvas.Group(`class="y-axis"`, `font-size="10"`, `text-anchor="end"`)
	canvas.Line(px(a.Left), px(a.Top), px(a.Left), px(a.Bottom), `stroke="currentColor"`)
	for _, t := range yTicks {
		y := px(l.Scales.Y.Map(t))
		canvas.Line(px(a.Left)-6, y, px(a.Left), y, `stroke="currentColor"`)
		canvas.Text(px(a.Left)-9, y+3, HourLabel(t), `fill="currentColor"`)
	}
	canvas.Gend()

	// marks are drawn at fractional pixels
	dots := svgf.New(canvas.Writer)
	dots.Group(`class="dots"`)
	for _, tr := range trs {
		writeMark(dots, tr, opt)
	}
	dots.Gend()

	canvas.End()
}

// HourLabel formats an hour tick as HH:00
func HourLabel(h float64) string {
	return fmt.Sprintf("%02d:00", int(math.Round(h)))
}

func writeMark(canvas *svgf.SVG, tr Transition, opt SVGOptions) {
	tt := NewTooltip(tr.Commit)
	id := "dot-" + tr.Key
	canvas.Group(`class="mark"`)
	canvas.Title(tt.ID)
	canvas.Circle(tr.From.X, tr.From.Y, tr.From.R,
		`id="`+esc(id)+`"`, `class="dot `+tr.Phase.String()+`"`,
		`data-key="`+esc(tr.Key)+`"`, `data-url="`+esc(tt.URL)+`"`, `data-date="`+esc(tt.Date)+`"`,
		`fill="`+esc(opt.Fill)+`"`, `style="fill-opacity: `+ftoa(opt.Opacity)+`"`)
	dur := tr.Duration.Seconds()
	animate(canvas, id, "cx", tr.From.X, tr.To.X, dur)
	animate(canvas, id, "cy", tr.From.Y, tr.To.Y, dur)
	animate(canvas, id, "r", tr.From.R, tr.To.R, dur)
	canvas.Gend()
}

// animate plays once and holds the end value; a zero move is left out
func animate(canvas *svgf.SVG, id, attr string, from, to, dur float64) {
	from, to = round2(from), round2(to)
	if from == to {
		return
	}
	canvas.Animate("#"+id, attr, from, to, dur, 1, `fill="freeze"`)
}

// Duration of the longest transition, i.e. how long until the surface is settled
func Duration(trs []Transition) time.Duration {
	var d time.Duration
	for _, tr := range trs {
		if tr.Duration > d {
			d = tr.Duration
		}
	}
	return d
}

func px(v float64) int { return int(math.Round(v)) }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func esc(s string) string { return html.EscapeString(s) }
