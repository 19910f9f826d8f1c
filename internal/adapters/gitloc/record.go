package gitloc

import (
	"time"

	"folio/internal/core/loc"
)

// Record builds one log row from a blamed line. Date, time and timezone are taken in
// the author's own offset
func Record(file string, line int, commit, author, text string, when time.Time, tabWidth int) loc.LineRecord {
	y, m, d := when.Date()
	return loc.LineRecord{
		Commit:   commit,
		File:     file,
		Line:     line,
		Depth:    Depth(text, tabWidth),
		Length:   len(text),
		Date:     time.Date(y, m, d, 0, 0, 0, 0, when.Location()),
		Time:     when.Format("15:04:05-07:00"),
		Timezone: when.Format("-07:00"),
		Author:   author,
		Datetime: when,
		Type:     loc.KindOf(file),
	}
}

// Depth is the indentation level of text: tabs count one level, spaces count
// one level per tabWidth
func Depth(text string, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 2
	}
	tabs, spaces := 0, 0
	for _, r := range text {
		switch r {
		case '\t':
			tabs++
		case ' ':
			spaces++
		default:
			return tabs + spaces/tabWidth
		}
	}
	// blank lines carry no depth
	return 0
}
