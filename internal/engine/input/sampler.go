package input

import (
	"github.com/Faultbox/showroom/pkg/math"
)

// Direction is a logical movement direction.
type Direction int

const (
	DirForward Direction = iota
	DirBackward
	DirLeft
	DirRight
	directionCount
)

// Sampler records held movement keys and accumulated pointer deltas.
// It is pure event-to-state recording: events mutate it, the control
// loop reads it once per tick. No SDL calls happen here, so it can be
// driven directly in tests.
type Sampler struct {
	held [directionCount]bool

	// Pointer-delta accumulators, consumed once per tick.
	lookDX float32
	lookDY float32
}

// NewSampler creates an empty sampler.
func NewSampler() *Sampler {
	return &Sampler{}
}

// Press records a direction key going down.
func (s *Sampler) Press(d Direction) {
	if d >= 0 && d < directionCount {
		s.held[d] = true
	}
}

// Release records a direction key going up.
func (s *Sampler) Release(d Direction) {
	if d >= 0 && d < directionCount {
		s.held[d] = false
	}
}

// Held reports whether a direction key is currently down.
func (s *Sampler) Held(d Direction) bool {
	if d < 0 || d >= directionCount {
		return false
	}
	return s.held[d]
}

// AddPointerDelta accumulates a pointer-movement delta for the
// first-person look. Multiple motion events between ticks add up.
func (s *Sampler) AddPointerDelta(dx, dy float32) {
	s.lookDX += dx
	s.lookDY += dy
}

// ConsumeLook returns the accumulated pointer delta and resets it.
// Called exactly once per tick.
func (s *Sampler) ConsumeLook() (dx, dy float32) {
	dx, dy = s.lookDX, s.lookDY
	s.lookDX, s.lookDY = 0, 0
	return dx, dy
}

// Intent returns the normalized movement intent on the ground plane in
// the sampler's local frame: +Z forward, +X right. Zero vector when no
// keys are held; diagonals are unit length.
func (s *Sampler) Intent() math.Vec2 {
	var v math.Vec2
	if s.held[DirForward] {
		v.Z += 1
	}
	if s.held[DirBackward] {
		v.Z -= 1
	}
	if s.held[DirRight] {
		v.X += 1
	}
	if s.held[DirLeft] {
		v.X -= 1
	}
	return v.Normalize()
}

// Reset clears all held keys and accumulated deltas. Used when input
// focus is lost so keys do not stick across a pause.
func (s *Sampler) Reset() {
	for i := range s.held {
		s.held[i] = false
	}
	s.lookDX, s.lookDY = 0, 0
}
