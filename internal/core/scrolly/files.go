package scrolly

import (
	"folio/internal/core/commits"
	"folio/internal/core/scale"
)

// Unit is one changed line drawn as a colored cell
type Unit struct {
	Kind  string `json:"kind"`
	Color string `json:"color"`
}

// FileDetail is one file of the detail panel
type FileDetail struct {
	Name  string `json:"name"`
	Lines int    `json:"lines"`
	Units []Unit `json:"units"`
}

// FilePanel lists the files touched by cs, largest first, with one unit per line
// colored by file type
func FilePanel(cs []commits.Summary, colors *scale.Ordinal) []FileDetail {
	files := commits.Files(commits.FlatLines(cs))
	out := make([]FileDetail, 0, len(files))
	for _, f := range files {
		d := FileDetail{Name: f.Name, Lines: f.Count(), Units: make([]Unit, 0, f.Count())}
		for _, l := range f.Lines {
			k := l.Kind()
			d.Units = append(d.Units, Unit{Kind: k, Color: colors.Map(k)})
		}
		out = append(out, d)
	}
	return out
}
