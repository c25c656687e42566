// Package entity implements the controlled agent and interactive candidates.
package entity

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/showroom/pkg/math"
)

// Agent is the controlled point-like avatar. Its position and velocity
// are exclusively owned by the control loop; everything else reads them.
type Agent struct {
	// Planar position plus fixed (or terrain-clamped) height.
	Position math.Vec3

	// Ground-plane velocity in units per second.
	Velocity math.Vec2

	// Collision radius.
	Radius float32

	spawn math.Vec3
}

// NewAgent creates an agent at the given spawn position.
func NewAgent(spawn math.Vec3, radius float32) *Agent {
	return &Agent{
		Position: spawn,
		Radius:   radius,
		spawn:    spawn,
	}
}

// Respawn returns the agent to its spawn position with zero velocity.
func (a *Agent) Respawn() {
	a.Position = a.spawn
	a.Velocity = math.Vec2{}
}

// Planar returns the agent's ground-plane position.
func (a *Agent) Planar() math.Vec2 {
	return a.Position.XZ()
}

// SetPlanar sets the ground-plane position, keeping the height.
func (a *Agent) SetPlanar(p math.Vec2) {
	a.Position.X = p.X
	a.Position.Z = p.Z
}

// Facing returns the heading angle in radians derived from the current
// velocity direction. ok is false while the agent is not moving; the
// caller should keep its previous facing in that case.
func (a *Agent) Facing() (angle float32, ok bool) {
	if a.Velocity.IsZero() {
		return 0, false
	}
	return math32.Atan2(a.Velocity.X, a.Velocity.Z), true
}

// Speed returns the current velocity magnitude.
func (a *Agent) Speed() float32 {
	return a.Velocity.Length()
}

// Candidate is an interactive object the proximity tracker scans. The
// core reads Position and Interactive; the metadata is passed through
// untouched for the UI layer.
type Candidate struct {
	Position    math.Vec3
	Interactive bool

	// Free-form metadata for the UI layer.
	Title string
	URL   string
	Kind  string
}
