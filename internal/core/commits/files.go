package commits

import (
	"sort"

	"folio/internal/core/loc"
)

// File is the set of lines one file contributes to a group of commits
type File struct {
	Name  string           `json:"name"`
	Lines []loc.LineRecord `json:"-"`
}

// Count is the number of lines
func (f File) Count() int { return len(f.Lines) }

// Files groups lines by file and orders them by descending line count.
// Files with equal counts keep first-encounter order
func Files(lines []loc.LineRecord) []File {
	var out []File
	at := make(map[string]int)
	for _, l := range lines {
		i, ok := at[l.File]
		if !ok {
			i = len(out)
			at[l.File] = i
			out = append(out, File{Name: l.File})
		}
		out[i].Lines = append(out[i].Lines, l)
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i].Lines) > len(out[j].Lines) })
	return out
}
