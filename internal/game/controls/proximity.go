package controls

import (
	"github.com/Faultbox/showroom/internal/game/entity"
	"github.com/Faultbox/showroom/pkg/math"
)

// ProximityTracker selects the nearest interactive candidate within a
// fixed radius and notifies on identity change only. It is level
// triggered: every tick re-evaluates the whole list from scratch; the
// only memory is the previous tick's selection.
type ProximityTracker struct {
	Radius float32

	candidates []*entity.Candidate
	current    *entity.Candidate
	onChange   func(*entity.Candidate)
}

// NewProximityTracker creates a tracker. onChange receives the new
// selection (nil on exit) exactly once per transition; it may be nil.
func NewProximityTracker(radius float32, onChange func(*entity.Candidate)) *ProximityTracker {
	return &ProximityTracker{
		Radius:   radius,
		onChange: onChange,
	}
}

// SetCandidates installs the candidate list, supplied once after
// content placement. The tracker reads it every tick but never
// mutates it.
func (t *ProximityTracker) SetCandidates(candidates []*entity.Candidate) {
	t.candidates = candidates
}

// Current returns the present selection, or nil.
func (t *ProximityTracker) Current() *entity.Candidate {
	return t.current
}

// Update scans the candidate list from the agent's planar position.
// Ties are broken by list order: the first candidate at the minimum
// distance wins.
func (t *ProximityTracker) Update(agent math.Vec2) {
	var nearest *entity.Candidate
	best := t.Radius

	for _, c := range t.candidates {
		if !c.Interactive {
			continue
		}
		d := agent.Distance(c.Position.XZ())
		if d < best {
			best = d
			nearest = c
		}
	}

	if nearest == t.current {
		return
	}
	t.current = nearest
	if t.onChange != nil {
		t.onChange(nearest)
	}
}
