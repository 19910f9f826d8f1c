package scatter

import (
	"time"

	"folio/internal/core/commits"
)

// Phase is a mark's place in its lifecycle: absent -> entering -> present -> exiting -> removed
type Phase int

// Mark phases
const (
	Absent Phase = iota
	Entering
	Present
	Exiting
	Removed
)

func (p Phase) String() string {
	switch p {
	case Entering:
		return "entering"
	case Present:
		return "present"
	case Exiting:
		return "exiting"
	case Removed:
		return "removed"
	default:
		return "absent"
	}
}

// MarshalText lets phases serialize by name
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Transition durations
const (
	EnterDuration  = 500 * time.Millisecond
	UpdateDuration = 500 * time.Millisecond
	ExitDuration   = 300 * time.Millisecond

	// enter starts this far below the plot, exit ends this far above it
	enterDrop = 50
	exitRise  = 20
)

// Transition is one mark's animation for a render. Phase is the phase the mark is in
// while the transition runs; an update on a live mark reports Present
type Transition struct {
	Key      string          `json:"key"`
	Phase    Phase           `json:"phase"`
	From     Point           `json:"from"`
	To       Point           `json:"to"`
	Duration time.Duration   `json:"duration"`
	Commit   commits.Summary `json:"commit"`
}

type markState struct {
	phase  Phase
	at     Point // where the last transition ends
	commit commits.Summary
}

// Scene remembers what was last drawn so each render can be expressed as
// enter/update/exit transitions keyed by commit id. Not safe for concurrent use
type Scene struct {
	marks map[string]*markState
	order []string
}

// NewScene returns an empty scene
func NewScene() *Scene {
	return &Scene{marks: make(map[string]*markState)}
}

// Render diffs the layout against the scene and returns one transition per mark
// that is drawn: entering and updated marks in layout order, then exiting marks
func (s *Scene) Render(l Layout) []Transition {
	a := l.Geometry.Area()
	next := make(map[string]struct{}, len(l.Marks))
	out := make([]Transition, 0, len(l.Marks)+len(s.order))
	order := make([]string, 0, len(l.Marks)+len(s.order))

	for _, m := range l.Marks {
		next[m.Key] = struct{}{}
		order = append(order, m.Key)

		st, ok := s.marks[m.Key]
		if !ok || st.phase == Removed || st.phase == Absent {
			from := Point{X: m.X, Y: a.Bottom + enterDrop, R: 0}
			s.marks[m.Key] = &markState{phase: Entering, at: m.Point, commit: m.Commit}
			out = append(out, Transition{
				Key: m.Key, Phase: Entering, From: from, To: m.Point,
				Duration: EnterDuration, Commit: m.Commit,
			})
			continue
		}

		// live or leaving marks are moved to the new target; a pending exit is cancelled
		from := st.at
		if st.phase == Exiting {
			st.phase = Present
		}
		st.at = m.Point
		st.commit = m.Commit
		out = append(out, Transition{
			Key: m.Key, Phase: st.phase, From: from, To: m.Point,
			Duration: UpdateDuration, Commit: m.Commit,
		})
	}

	for _, key := range s.order {
		if _, keep := next[key]; keep {
			continue
		}
		st, ok := s.marks[key]
		if !ok || st.phase == Removed {
			continue
		}
		from := st.at
		to := Point{X: from.X, Y: a.Top - exitRise, R: 0}
		st.phase = Exiting
		st.at = to
		order = append(order, key)
		out = append(out, Transition{
			Key: key, Phase: Exiting, From: from, To: to,
			Duration: ExitDuration, Commit: st.commit,
		})
	}

	s.order = order
	return out
}

// Settle completes every in-flight transition: entering marks become present
// and exiting marks are removed
func (s *Scene) Settle() {
	kept := s.order[:0]
	for _, key := range s.order {
		st := s.marks[key]
		switch st.phase {
		case Entering:
			st.phase = Present
		case Exiting:
			st.phase = Removed
			delete(s.marks, key)
			continue
		}
		kept = append(kept, key)
	}
	s.order = kept
}

// Phase reports a mark's current phase
func (s *Scene) Phase(key string) Phase {
	if st, ok := s.marks[key]; ok {
		return st.phase
	}
	return Absent
}

// Marks returns the final geometry of every mark still on the surface, in draw order
func (s *Scene) Marks() []Mark {
	out := make([]Mark, 0, len(s.order))
	for _, key := range s.order {
		st := s.marks[key]
		if st.phase == Exiting || st.phase == Removed {
			continue
		}
		out = append(out, Mark{Key: key, Point: st.at, Commit: st.commit})
	}
	return out
}

// Reconcile renders prev then next on a fresh scene and returns next's transitions.
// A nil prev means nothing was on the surface
func Reconcile(prev *Layout, next Layout) []Transition {
	sc := NewScene()
	if prev != nil {
		sc.Render(*prev)
		sc.Settle()
	}
	return sc.Render(next)
}
