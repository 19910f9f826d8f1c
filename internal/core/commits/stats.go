package commits

import "folio/internal/core/loc"

// Period buckets of the day, checked in this order
const (
	PeriodNight     = "night"
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
	PeriodEvening   = "evening"
)

// PeriodOf buckets a fractional hour into a time of day
func PeriodOf(hourFrac float64) string {
	switch {
	case hourFrac < 6:
		return PeriodNight
	case hourFrac < 12:
		return PeriodMorning
	case hourFrac < 18:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// Stats are the headline numbers shown above the scatter plot
type Stats struct {
	TotalLOC      int     `json:"totalLoc"`
	TotalCommits  int     `json:"totalCommits"`
	Files         int     `json:"files"`
	AvgFileLength float64 `json:"avgFileLength"`
	TopPeriod     string  `json:"topPeriod"`
	TopPeriodN    int     `json:"topPeriodCommits"`
}

// ComputeStats summarizes lines and commits. Average file length is the mean of each
// file's highest line number; the top period prefers the earliest encountered on ties
func ComputeStats(lines []loc.LineRecord, cs []Summary) Stats {
	st := Stats{TotalLOC: len(lines), TotalCommits: len(cs)}

	maxLine := make(map[string]int)
	var files []string
	for _, l := range lines {
		m, ok := maxLine[l.File]
		if !ok {
			files = append(files, l.File)
		}
		if !ok || l.Line > m {
			maxLine[l.File] = l.Line
		}
	}
	st.Files = len(files)
	if len(files) > 0 {
		sum := 0
		for _, f := range files {
			sum += maxLine[f]
		}
		st.AvgFileLength = float64(sum) / float64(len(files))
	}

	counts := make(map[string]int)
	var order []string
	for _, c := range cs {
		p := PeriodOf(c.HourFrac)
		if _, ok := counts[p]; !ok {
			order = append(order, p)
		}
		counts[p]++
	}
	for _, p := range order {
		if counts[p] > st.TopPeriodN {
			st.TopPeriod, st.TopPeriodN = p, counts[p]
		}
	}
	return st
}
