// Package projects models the project gallery: parsing, search, and year rollups
package projects

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	perr "folio/internal/platform/errors"
)

// Year accepts either a JSON string or number
type Year string

// UnmarshalJSON implements json.Unmarshaler
func (y *Year) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*y = Year(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*y = Year(n.String())
	return nil
}

// Project is one gallery entry
type Project struct {
	Title       string `json:"title"`
	Year        Year   `json:"year"`
	Image       string `json:"image"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// Parse decodes a JSON array of projects
func Parse(r io.Reader) ([]Project, error) {
	var out []Project
	dec := json.NewDecoder(r)
	if err := dec.Decode(&out); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "projects: decode")
	}
	for i, p := range out {
		if strings.TrimSpace(p.Title) == "" {
			return nil, perr.WithField(perr.InvalidArgf("projects: entry %d has no title", i), "title")
		}
	}
	return out, nil
}

// values joins every field the way a generic object-values search would see them
func (p Project) values() string {
	vals := []string{p.Title, string(p.Year), p.Image, p.Description}
	if p.URL != "" {
		vals = append(vals, p.URL)
	}
	return strings.Join(vals, "\n")
}

// Search keeps projects whose fields contain q, ignoring case. Empty q keeps everything
func Search(ps []Project, q string) []Project {
	q = strings.ToLower(q)
	out := make([]Project, 0, len(ps))
	for _, p := range ps {
		if strings.Contains(strings.ToLower(p.values()), q) {
			out = append(out, p)
		}
	}
	return out
}

// YearCount is one rollup bucket
type YearCount struct {
	Year  Year `json:"label"`
	Count int  `json:"value"`
}

// ByYear counts projects per year in first-encounter order
func ByYear(ps []Project) []YearCount {
	var out []YearCount
	at := make(map[Year]int)
	for _, p := range ps {
		i, ok := at[p.Year]
		if !ok {
			i = len(out)
			at[p.Year] = i
			out = append(out, YearCount{Year: p.Year})
		}
		out[i].Count++
	}
	return out
}

// InYear keeps the projects of one year
func InYear(ps []Project, y Year) []Project {
	out := make([]Project, 0, len(ps))
	for _, p := range ps {
		if p.Year == y {
			out = append(out, p)
		}
	}
	return out
}

// NoSelection is the pie index meaning nothing is selected
const NoSelection = -1

// Toggle selects slice i, or clears the selection when i is already selected
func Toggle(selected, i int) int {
	if selected == i {
		return NoSelection
	}
	return i
}

// Gallery is what the page renders for a search and a pie selection
type Gallery struct {
	Query    string      `json:"query"`
	Selected int         `json:"selected"`
	Years    []YearCount `json:"years"`
	Matches  []Project   `json:"matches"` // search results, drive the pie
	Shown    []Project   `json:"shown"`   // matches narrowed by the selected year
}

// Title is the heading text, e.g. "12 Projects"
func Title(n int) string { return strconv.Itoa(n) + " Projects" }

// Build applies the search, rolls up years over the matches, and narrows to the
// selected slice's year when that index still exists. An index past the rollup is
// kept, so widening the search again restores the narrowing
func Build(all []Project, q string, selected int) Gallery {
	if selected < 0 {
		selected = NoSelection
	}
	matches := Search(all, q)
	years := ByYear(matches)
	g := Gallery{Query: q, Selected: selected, Years: years, Matches: matches, Shown: matches}
	if selected == NoSelection || selected >= len(years) {
		return g
	}
	g.Shown = InYear(matches, years[selected].Year)
	return g
}

// Latest returns the first n projects
func Latest(ps []Project, n int) []Project {
	if n < len(ps) {
		return ps[:n]
	}
	return ps
}
