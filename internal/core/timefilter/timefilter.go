// Package timefilter maps a 0-100 slider position onto the commit time range
package timefilter

import (
	"time"

	"folio/internal/core/commits"
)

// Clamp bounds a slider percentage to [0,100]
func Clamp(p float64) float64 {
	switch {
	case p != p: // NaN
		return 100
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// Extent returns the earliest and latest commit timestamps; ok is false for no commits
func Extent(cs []commits.Summary) (lo, hi time.Time, ok bool) {
	for i, c := range cs {
		if i == 0 || c.Datetime.Before(lo) {
			lo = c.Datetime
		}
		if i == 0 || c.Datetime.After(hi) {
			hi = c.Datetime
		}
	}
	return lo, hi, len(cs) > 0
}

// Cutoff maps p linearly onto [earliest, latest]
func Cutoff(cs []commits.Summary, p float64) (time.Time, bool) {
	lo, hi, ok := Extent(cs)
	if !ok {
		return time.Time{}, false
	}
	p = Clamp(p)
	if p == 100 {
		return hi, true
	}
	span := hi.Sub(lo)
	return lo.Add(time.Duration(float64(span) * p / 100)), true
}

// Filter returns the commits at or before the cutoff for p, keeping input order
func Filter(cs []commits.Summary, p float64) []commits.Summary {
	cut, ok := Cutoff(cs, p)
	if !ok {
		return nil
	}
	return Before(cs, cut)
}

// Before returns the commits with timestamp <= t, keeping input order
func Before(cs []commits.Summary, t time.Time) []commits.Summary {
	out := make([]commits.Summary, 0, len(cs))
	for _, c := range cs {
		if !c.Datetime.After(t) {
			out = append(out, c)
		}
	}
	return out
}

// Progress is the inverse of Cutoff: where t sits on the slider
func Progress(cs []commits.Summary, t time.Time) float64 {
	lo, hi, ok := Extent(cs)
	if !ok || !hi.After(lo) {
		return 100
	}
	return Clamp(float64(t.Sub(lo)) / float64(hi.Sub(lo)) * 100)
}
