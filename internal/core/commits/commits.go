// Package commits groups line records into per-commit summaries and derives
// aggregate views over them (file lists, headline stats)
package commits

import (
	"sort"
	"strings"
	"time"

	"folio/internal/core/loc"
)

// Summary is one commit. The constituent line records are owned by the summary
// but kept out of serialization; use Lines to reach them
type Summary struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Author     string    `json:"author"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
	Timezone   string    `json:"timezone"`
	Datetime   time.Time `json:"datetime"`
	HourFrac   float64   `json:"hourFrac"`
	TotalLines int       `json:"totalLines"`

	lines []loc.LineRecord
}

// Lines returns the commit's line records. Callers must not mutate the slice
func (s Summary) Lines() []loc.LineRecord { return s.lines }

// FileCount is the number of distinct files the commit touched
func (s Summary) FileCount() int {
	seen := make(map[string]struct{}, len(s.lines))
	for _, l := range s.lines {
		seen[l.File] = struct{}{}
	}
	return len(seen)
}

// HourFrac returns hours + minutes/60 in the timestamp's own zone
func HourFrac(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// CommitURL joins a repository URL and a commit id
func CommitURL(repoURL, id string) string {
	if repoURL == "" {
		return ""
	}
	return strings.TrimRight(repoURL, "/") + "/commit/" + id
}

// Process groups records by commit id in first-encounter order and returns one summary per group
func Process(records []loc.LineRecord, repoURL string) []Summary {
	order := make([]string, 0)
	groups := make(map[string][]loc.LineRecord)
	for _, r := range records {
		if _, ok := groups[r.Commit]; !ok {
			order = append(order, r.Commit)
		}
		groups[r.Commit] = append(groups[r.Commit], r)
	}

	out := make([]Summary, 0, len(order))
	for _, id := range order {
		lines := groups[id]
		first := lines[0]
		out = append(out, Summary{
			ID:         id,
			URL:        CommitURL(repoURL, id),
			Author:     first.Author,
			Date:       first.Date,
			Time:       first.Time,
			Timezone:   first.Timezone,
			Datetime:   first.Datetime,
			HourFrac:   HourFrac(first.Datetime),
			TotalLines: len(lines),
			lines:      lines,
		})
	}
	return out
}

// SortByTime returns a copy ordered by ascending timestamp; equal timestamps keep input order
func SortByTime(in []Summary) []Summary {
	out := append([]Summary(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Datetime.Before(out[j].Datetime) })
	return out
}

// FlatLines concatenates the line records of every commit in order
func FlatLines(cs []Summary) []loc.LineRecord {
	n := 0
	for _, c := range cs {
		n += len(c.lines)
	}
	out := make([]loc.LineRecord, 0, n)
	for _, c := range cs {
		out = append(out, c.lines...)
	}
	return out
}

// IDs returns the set of commit ids
func IDs(cs []Summary) map[string]struct{} {
	out := make(map[string]struct{}, len(cs))
	for _, c := range cs {
		out[c.ID] = struct{}{}
	}
	return out
}

// LinesOf keeps the records that belong to the given commits
func LinesOf(records []loc.LineRecord, cs []Summary) []loc.LineRecord {
	ids := IDs(cs)
	out := make([]loc.LineRecord, 0)
	for _, r := range records {
		if _, ok := ids[r.Commit]; ok {
			out = append(out, r)
		}
	}
	return out
}
