// Package pie lays out pie slices and draws them as SVG
package pie

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"folio/internal/core/scale"
)

// Datum is one labeled value
type Datum struct {
	Label string
	Value float64
}

// Slice is a datum with its angles. Angles are radians clockwise from 12 o'clock
type Slice struct {
	Index      int
	Datum      Datum
	StartAngle float64
	EndAngle   float64
	Color      string
}

// Layout computes slice angles. Slices are laid out largest first (ties keep input order)
// but returned in input order; colors follow input order
func Layout(data []Datum) []Slice {
	out := make([]Slice, len(data))
	total := 0.0
	for i, d := range data {
		out[i] = Slice{Index: i, Datum: d, Color: scale.At(scale.Tableau10, i)}
		if d.Value > 0 {
			total += d.Value
		}
	}
	if total == 0 {
		return out
	}
	order := make([]int, len(data))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return data[order[a]].Value > data[order[b]].Value })

	angle := 0.0
	for _, i := range order {
		v := math.Max(0, data[i].Value)
		out[i].StartAngle = angle
		angle += v / total * 2 * math.Pi
		out[i].EndAngle = angle
	}
	return out
}

// ArcPath is the SVG path of a slice of a circle of radius r centered on the origin
func ArcPath(s Slice, r float64) string {
	span := s.EndAngle - s.StartAngle
	if span <= 0 {
		return ""
	}
	if span >= 2*math.Pi-1e-9 {
		// a full circle cannot be one arc command; draw two halves
		return fmt.Sprintf("M0,%sA%s,%s,0,1,1,0,%sA%s,%s,0,1,1,0,%sZ",
			f(-r), f(r), f(r), f(r), f(r), f(r), f(-r))
	}
	x0, y0 := r*math.Sin(s.StartAngle), -r*math.Cos(s.StartAngle)
	x1, y1 := r*math.Sin(s.EndAngle), -r*math.Cos(s.EndAngle)
	large := 0
	if span > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M%s,%sA%s,%s,0,%d,1,%s,%sL0,0Z", f(x0), f(y0), f(r), f(r), large, f(x1), f(y1))
}

func f(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// Radius is the outer radius the gallery draws with
const Radius = 50

// SVGOptions tune the drawn chart
type SVGOptions struct {
	ID       string
	Selected int
	// Href builds the link a slice navigates to when clicked; nil draws plain paths
	Href func(index int) string
}

// WriteSVG draws the slices in a -50..50 viewBox. The selected slice gets the selected class
func WriteSVG(w io.Writer, slices []Slice, opt SVGOptions) {
	canvas := svg.New(w)
	attrs := []string{fmt.Sprintf(`viewBox="%d %d %d %d"`, -Radius, -Radius, 2*Radius, 2*Radius)}
	if opt.ID != "" {
		attrs = append(attrs, `id="`+opt.ID+`"`)
	}
	canvas.Start(2*Radius, 2*Radius, attrs...)
	for _, s := range slices {
		d := ArcPath(s, Radius)
		if d == "" {
			continue
		}
		class := ""
		if s.Index == opt.Selected {
			class = "selected"
		}
		if opt.Href != nil {
			canvas.Link(opt.Href(s.Index), s.Datum.Label)
		}
		canvas.Path(d, `fill="`+s.Color+`"`, `class="`+class+`"`)
		if opt.Href != nil {
			canvas.LinkEnd()
		}
	}
	canvas.End()
}
