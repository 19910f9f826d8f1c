package scatter

import "folio/internal/core/commits"

// DateFull is the long weekday date used in the tooltip
const DateFull = "Monday, January 2, 2006"

// Tooltip is what the hover panel shows for a commit
type Tooltip struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Date string `json:"date"`
}

// Empty reports whether there is nothing to show
func (t Tooltip) Empty() bool { return t.ID == "" }

// NewTooltip builds tooltip content; a zero commit yields an empty tooltip
func NewTooltip(c commits.Summary) Tooltip {
	if c.ID == "" {
		return Tooltip{}
	}
	t := Tooltip{ID: c.ID, URL: c.URL}
	if !c.Datetime.IsZero() {
		t.Date = c.Datetime.Format(DateFull)
	}
	return t
}

// TooltipOffset is how far from the cursor the panel is placed
const TooltipOffset = 10

// TooltipPosition places the panel just below and right of the cursor
func TooltipPosition(clientX, clientY float64) (left, top float64) {
	return clientX + TooltipOffset, clientY + TooltipOffset
}
