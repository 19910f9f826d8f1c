// Package brush evaluates a rectangular plot-space selection against commits and
// derives the selection panels
package brush

import (
	"fmt"
	"strconv"

	"folio/internal/core/commits"
	"folio/internal/core/scatter"
)

// Rect is a selection in plot pixel space
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Normalize orders the corners so X0<=X1 and Y0<=Y1
func (r Rect) Normalize() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Contains reports whether (x,y) lies inside the rectangle, edges included
func (r Rect) Contains(x, y float64) bool {
	r = r.Normalize()
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// IsSelected reports whether the commit's plot position is inside sel. No selection selects nothing
func IsSelected(sel *Rect, sc scatter.Scales, c commits.Summary) bool {
	if sel == nil {
		return false
	}
	x, y := sc.Project(c)
	return sel.Contains(x, y)
}

// Select returns the commits inside sel, keeping input order
func Select(sel *Rect, sc scatter.Scales, cs []commits.Summary) []commits.Summary {
	if sel == nil {
		return nil
	}
	out := make([]commits.Summary, 0)
	for _, c := range cs {
		if IsSelected(sel, sc, c) {
			out = append(out, c)
		}
	}
	return out
}

// Flags evaluates every mark, true where the mark is selected
func Flags(sel *Rect, sc scatter.Scales, marks []scatter.Mark) map[string]bool {
	out := make(map[string]bool, len(marks))
	for _, m := range marks {
		out[m.Key] = IsSelected(sel, sc, m.Commit)
	}
	return out
}

// CountText is the selection-count panel text
func CountText(n int) string {
	if n == 0 {
		return "No commits selected"
	}
	return strconv.Itoa(n) + " commits selected"
}

// Row is one file-type line of the breakdown panel
type Row struct {
	Kind       string  `json:"kind"`
	Lines      int     `json:"lines"`
	Proportion float64 `json:"proportion"`
	Formatted  string  `json:"formatted"`
}

// Breakdown splits changed lines by file type. An empty selection summarizes all commits
// instead, which differs from the count panel on purpose
func Breakdown(selected, all []commits.Summary) []Row {
	consider := selected
	if len(consider) == 0 {
		consider = all
	}
	lines := commits.FlatLines(consider)
	if len(lines) == 0 {
		return nil
	}

	var rows []Row
	at := make(map[string]int)
	for _, l := range lines {
		k := l.Kind()
		i, ok := at[k]
		if !ok {
			i = len(rows)
			at[k] = i
			rows = append(rows, Row{Kind: k})
		}
		rows[i].Lines++
	}
	for i := range rows {
		rows[i].Proportion = float64(rows[i].Lines) / float64(len(lines))
		rows[i].Formatted = Percent(rows[i].Proportion)
	}
	return rows
}

// Percent formats a proportion with one decimal, e.g. 0.5 -> "50.0%"
func Percent(p float64) string { return fmt.Sprintf("%.1f%%", p*100) }

// Result bundles everything a brush event updates
type Result struct {
	Selected  []string `json:"selected"`
	Count     int      `json:"count"`
	CountText string   `json:"countText"`
	Breakdown []Row    `json:"breakdown"`
}

// Evaluate runs a brush event: selection over the full commit list using the
// scales of the currently drawn layout
func Evaluate(sel *Rect, sc scatter.Scales, all []commits.Summary) Result {
	picked := Select(sel, sc, all)
	ids := make([]string, 0, len(picked))
	for _, c := range picked {
		ids = append(ids, c.ID)
	}
	return Result{
		Selected:  ids,
		Count:     len(picked),
		CountText: CountText(len(picked)),
		Breakdown: Breakdown(picked, all),
	}
}
