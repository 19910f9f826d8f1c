// Package scale provides the continuous and ordinal scales used by the charts.
// Scales are small values; build a new one per render rather than sharing
package scale

import (
	"math"
	"sync"
)

// Linear maps a numeric domain onto a numeric range
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear builds a linear scale
func NewLinear(d0, d1, r0, r1 float64) Linear { return Linear{D0: d0, D1: d1, R0: r0, R1: r1} }

// Map projects v into the range. A collapsed domain maps to the range midpoint
func (s Linear) Map(v float64) float64 {
	return interpolate(s.R0, s.R1, normalize(s.D0, s.D1, v))
}

// Invert projects a range value back into the domain
func (s Linear) Invert(v float64) float64 {
	return interpolate(s.D0, s.D1, normalize(s.R0, s.R1, v))
}

// Ticks returns roughly n evenly spaced round values inside the domain
func (s Linear) Ticks(n int) []float64 { return Ticks(s.D0, s.D1, n) }

// Sqrt is a power scale with exponent 0.5, so area tracks magnitude when used for radii
type Sqrt struct {
	D0, D1 float64
	R0, R1 float64
}

// NewSqrt builds a square-root scale
func NewSqrt(d0, d1, r0, r1 float64) Sqrt { return Sqrt{D0: d0, D1: d1, R0: r0, R1: r1} }

// Map projects v into the range
func (s Sqrt) Map(v float64) float64 {
	return interpolate(s.R0, s.R1, normalize(sqrt(s.D0), sqrt(s.D1), sqrt(v)))
}

func sqrt(v float64) float64 {
	if v < 0 {
		return -math.Sqrt(-v)
	}
	return math.Sqrt(v)
}

func normalize(a, b, v float64) float64 {
	if b-a == 0 {
		return 0.5
	}
	return (v - a) / (b - a)
}

func interpolate(a, b, t float64) float64 { return a*(1-t) + b*t }

// tick step selection thresholds
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// TickStep picks a 1/2/5 x 10^k step giving roughly n ticks over [start, stop]
func TickStep(start, stop float64, n int) float64 {
	if n <= 0 {
		n = 10
	}
	step0 := math.Abs(stop-start) / float64(n)
	if step0 == 0 || math.IsNaN(step0) || math.IsInf(step0, 0) {
		return 0
	}
	step1 := math.Pow(10, math.Floor(math.Log10(step0)))
	err := step0 / step1
	switch {
	case err >= e10:
		step1 *= 10
	case err >= e5:
		step1 *= 5
	case err >= e2:
		step1 *= 2
	}
	return step1
}

// Ticks returns the round values between start and stop (inclusive) at the chosen step
func Ticks(start, stop float64, n int) []float64 {
	if start == stop {
		return []float64{start}
	}
	lo, hi := start, stop
	if lo > hi {
		lo, hi = hi, lo
	}
	step := TickStep(lo, hi, n)
	if step == 0 {
		return nil
	}
	i0 := math.Ceil(lo / step)
	i1 := math.Floor(hi / step)
	out := make([]float64, 0, int(i1-i0)+1)
	for i := i0; i <= i1; i++ {
		// multiply rather than accumulate to avoid drift
		out = append(out, i*step)
	}
	return out
}

// Tableau10 is the categorical palette used for file types and pie slices
var Tableau10 = []string{
	"#4e79a7", "#f28e2c", "#e15759", "#76b7b2", "#59a14f",
	"#edc949", "#af7aa1", "#ff9da7", "#9c755f", "#bab0ab",
}

// Ordinal assigns palette entries to keys in first-seen order, cycling when exhausted
type Ordinal struct {
	mu      sync.Mutex
	palette []string
	index   map[string]int
}

// NewOrdinal builds an ordinal scale over palette, optionally seeding the domain
func NewOrdinal(palette []string, domain ...string) *Ordinal {
	o := &Ordinal{palette: palette, index: make(map[string]int)}
	for _, k := range domain {
		o.Map(k)
	}
	return o
}

// Map returns key's color, growing the domain when key is new
func (o *Ordinal) Map(key string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	i, ok := o.index[key]
	if !ok {
		i = len(o.index)
		o.index[key] = i
	}
	if len(o.palette) == 0 {
		return ""
	}
	return o.palette[i%len(o.palette)]
}

// At returns the palette entry for a positional index
func At(palette []string, i int) string {
	if len(palette) == 0 || i < 0 {
		return ""
	}
	return palette[i%len(palette)]
}
