package scale

import (
	"time"
)

// Time maps a time domain onto a numeric range. Calendar math runs in Loc (UTC when nil)
type Time struct {
	D0, D1 time.Time
	R0, R1 float64
	Loc    *time.Location
}

// NewTime builds a time scale
func NewTime(d0, d1 time.Time, r0, r1 float64) Time {
	return Time{D0: d0, D1: d1, R0: r0, R1: r1}
}

func (s Time) loc() *time.Location {
	if s.Loc == nil {
		return time.UTC
	}
	return s.Loc
}

// Map projects t into the range. A collapsed domain maps to the range midpoint
func (s Time) Map(t time.Time) float64 {
	a := float64(s.D0.UnixNano())
	b := float64(s.D1.UnixNano())
	return interpolate(s.R0, s.R1, normalize(a, b, float64(t.UnixNano())))
}

// Invert projects a range value back to an instant
func (s Time) Invert(v float64) time.Time {
	a := float64(s.D0.UnixNano())
	b := float64(s.D1.UnixNano())
	ns := interpolate(a, b, normalize(s.R0, s.R1, v))
	return time.Unix(0, int64(ns)).In(s.loc())
}

// Nice widens the domain outward to round boundaries of the interval that gives ~10 ticks
func (s Time) Nice() Time {
	if !s.D1.After(s.D0) {
		return s
	}
	iv := ChooseInterval(s.D0, s.D1, 10)
	out := s
	out.D0 = iv.Floor(s.D0.In(s.loc()))
	out.D1 = iv.Ceil(s.D1.In(s.loc()))
	return out
}

// Ticks returns instants on interval boundaries inside the domain
func (s Time) Ticks(n int) []time.Time {
	if !s.D1.After(s.D0) {
		return []time.Time{s.D0}
	}
	iv := ChooseInterval(s.D0, s.D1, n)
	var out []time.Time
	for t := iv.Ceil(s.D0.In(s.loc())); !t.After(s.D1); t = iv.Offset(t) {
		out = append(out, t)
		if len(out) > 1000 {
			break
		}
	}
	return out
}

// Unit is a calendar unit an Interval steps over
type Unit int

// Units from finest to coarsest
const (
	Second Unit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

// Interval is a step of Unit * Step
type Interval struct {
	Unit Unit
	Step int
}

var unitDur = map[Unit]time.Duration{
	Second: time.Second,
	Minute: time.Minute,
	Hour:   time.Hour,
	Day:    24 * time.Hour,
	Week:   7 * 24 * time.Hour,
	Month:  30 * 24 * time.Hour,
	Year:   365 * 24 * time.Hour,
}

// approximate length, for interval selection only
func (iv Interval) approx() time.Duration { return unitDur[iv.Unit] * time.Duration(iv.Step) }

var intervals = []Interval{
	{Second, 1}, {Second, 5}, {Second, 15}, {Second, 30},
	{Minute, 1}, {Minute, 5}, {Minute, 15}, {Minute, 30},
	{Hour, 1}, {Hour, 3}, {Hour, 6}, {Hour, 12},
	{Day, 1}, {Day, 2},
	{Week, 1},
	{Month, 1}, {Month, 3},
	{Year, 1},
}

// ChooseInterval picks the interval closest to span/n, switching to multi-year steps for long spans
func ChooseInterval(d0, d1 time.Time, n int) Interval {
	if n <= 0 {
		n = 10
	}
	target := d1.Sub(d0) / time.Duration(n)
	if target > intervals[len(intervals)-1].approx() {
		years := float64(d1.Sub(d0)) / float64(unitDur[Year])
		step := int(TickStep(0, years, n))
		if step < 1 {
			step = 1
		}
		return Interval{Unit: Year, Step: step}
	}
	if target <= intervals[0].approx() {
		return intervals[0]
	}
	for i := 1; i < len(intervals); i++ {
		if target <= intervals[i].approx() {
			// pick the nearer of the two neighbours by ratio
			lo, hi := intervals[i-1], intervals[i]
			if float64(target)/float64(lo.approx()) < float64(hi.approx())/float64(target) {
				return lo
			}
			return hi
		}
	}
	return intervals[len(intervals)-1]
}

// Floor rounds t down to the interval boundary
func (iv Interval) Floor(t time.Time) time.Time {
	loc := t.Location()
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	step := iv.Step
	if step < 1 {
		step = 1
	}
	switch iv.Unit {
	case Second:
		return time.Date(y, mo, d, h, mi, s-s%step, 0, loc)
	case Minute:
		return time.Date(y, mo, d, h, mi-mi%step, 0, 0, loc)
	case Hour:
		return time.Date(y, mo, d, h-h%step, 0, 0, 0, loc)
	case Day:
		return time.Date(y, mo, d-(d-1)%step, 0, 0, 0, 0, loc)
	case Week:
		return time.Date(y, mo, d-int(t.Weekday()), 0, 0, 0, 0, loc)
	case Month:
		m := int(mo) - 1
		return time.Date(y, time.Month(m-m%step+1), 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y-y%step, time.January, 1, 0, 0, 0, 0, loc)
	}
}

// Offset advances t by one interval step
func (iv Interval) Offset(t time.Time) time.Time {
	step := iv.Step
	if step < 1 {
		step = 1
	}
	switch iv.Unit {
	case Second:
		return t.Add(time.Duration(step) * time.Second)
	case Minute:
		return t.Add(time.Duration(step) * time.Minute)
	case Hour:
		return t.Add(time.Duration(step) * time.Hour)
	case Day:
		return t.AddDate(0, 0, step)
	case Week:
		return t.AddDate(0, 0, 7*step)
	case Month:
		return t.AddDate(0, step, 0)
	default:
		return t.AddDate(step, 0, 0)
	}
}

// Ceil rounds t up to the interval boundary
func (iv Interval) Ceil(t time.Time) time.Time {
	f := iv.Floor(t)
	if f.Equal(t) {
		return f
	}
	// day steps restart at the first of each month, so re-floor after offsetting
	return iv.Floor(iv.Offset(f))
}

// TickFormat labels a tick by the coarsest unit it is not aligned to
func TickFormat(t time.Time) string {
	switch {
	case t.Second() != 0 || t.Nanosecond() != 0:
		return t.Format(":05")
	case t.Minute() != 0:
		return t.Format("03:04")
	case t.Hour() != 0:
		return t.Format("03 PM")
	case t.Day() != 1:
		if t.Weekday() != time.Sunday {
			return t.Format("Mon 02")
		}
		return t.Format("Jan 02")
	case t.Month() != time.January:
		return t.Format("January")
	default:
		return t.Format("2006")
	}
}
