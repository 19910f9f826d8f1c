// Package scrolly computes the visible slice of a scroll-driven narrative list and
// the prose for each row
package scrolly

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"folio/internal/core/commits"
)

// Row geometry and window size
const (
	ItemHeight   = 90
	VisibleCount = 10
)

// Window is the slice of the list currently rendered
type Window struct {
	Start  int `json:"start"`
	End    int `json:"end"`
	Total  int `json:"total"`
	Height int `json:"height"` // spacer height for the full list
	Item   int `json:"itemHeight"`
}

// Len is the number of rows in the window
func (w Window) Len() int { return w.End - w.Start }

// Top is the absolute offset of the row at list index i
func (w Window) Top(i int) int { return i * w.Item }

// Config sizes a window
type Config struct {
	ItemHeight   int
	VisibleCount int
}

// Default is the page's configuration
var Default = Config{ItemHeight: ItemHeight, VisibleCount: VisibleCount}

// At computes the window for a scroll offset: start is the first row whose top is at or
// above the offset, clamped so a full window fits when the list allows it
func (c Config) At(scrollTop float64, total int) Window {
	item, visible := c.ItemHeight, c.VisibleCount
	if item <= 0 {
		item = ItemHeight
	}
	if visible <= 0 {
		visible = VisibleCount
	}
	if total < 0 {
		total = 0
	}
	start := 0
	if scrollTop > 0 && !math.IsInf(scrollTop, 0) {
		start = int(math.Floor(scrollTop / float64(item)))
	}
	start = max(0, min(start, total-visible))
	end := min(start+visible, total)
	return Window{Start: start, End: end, Total: total, Height: total * item, Item: item}
}

// At computes the default window
func At(scrollTop float64, total int) Window { return Default.At(scrollTop, total) }

// Slice returns the window's commits; the result aliases cs
func Slice(cs []commits.Summary, w Window) []commits.Summary {
	if w.Start >= len(cs) {
		return nil
	}
	return cs[w.Start:min(w.End, len(cs))]
}

// DateTimeFull is the narrative timestamp style
const DateTimeFull = "Monday, January 2, 2006 at 3:04 PM"

var printer = message.NewPrinter(language.English)

// Number formats an integer with thousands separators
func Number(n int) string { return printer.Sprintf("%d", n) }

// Item is one rendered narrative row
type Item struct {
	Index     int    `json:"index"`
	Top       int    `json:"top"`
	Date      string `json:"date"`
	URL       string `json:"url,omitempty"`
	LinkText  string `json:"linkText,omitempty"`
	Lines     string `json:"lines"`
	Files     string `json:"files"`
	Text      string `json:"text"`
	CommitID  string `json:"commit"`
	FirstEver bool   `json:"first"`
}

// Link texts for the commit narrative
const (
	FirstCommitText   = "my first commit, and it was glorious"
	AnotherCommitText = "another glorious commit"
)

// CommitItems builds the commit narrative rows for the window. Only the first commit of
// the whole history gets the first-commit wording
func CommitItems(cs []commits.Summary, w Window) []Item {
	slice := Slice(cs, w)
	out := make([]Item, 0, len(slice))
	for i, c := range slice {
		idx := w.Start + i
		it := base(c, idx, w)
		it.URL = c.URL
		it.FirstEver = idx == 0
		it.LinkText = AnotherCommitText
		if it.FirstEver {
			it.LinkText = FirstCommitText
		}
		it.Text = printer.Sprintf("On %s, I made %s. I edited %s lines across %s files. "+
			"Then I looked over all I had made, and I saw that it was very good.",
			it.Date, it.LinkText, it.Lines, it.Files)
		out = append(out, it)
	}
	return out
}

// FileItems builds the file-size narrative rows for the window
func FileItems(cs []commits.Summary, w Window) []Item {
	slice := Slice(cs, w)
	out := make([]Item, 0, len(slice))
	for i, c := range slice {
		it := base(c, w.Start+i, w)
		it.Text = printer.Sprintf("On %s, I edited %s lines across %s files. "+
			"This pushed my codebase to new complexity!", it.Date, it.Lines, it.Files)
		out = append(out, it)
	}
	return out
}

func base(c commits.Summary, idx int, w Window) Item {
	return Item{
		Index:    idx,
		Top:      w.Top(idx),
		Date:     c.Datetime.Format(DateTimeFull),
		Lines:    Number(c.TotalLines),
		Files:    Number(c.FileCount()),
		CommitID: c.ID,
	}
}
