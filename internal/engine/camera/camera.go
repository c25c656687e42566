// Package camera provides the camera couplings that follow the agent.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/showroom/pkg/math"
)

// Camera couples the agent pose to a renderable camera pose. The two
// implementations correspond to the two presentation modes: first-person
// (camera is the agent) and isometric (camera trails the agent at a
// rigid offset).
type Camera interface {
	// Look applies an accumulated pointer delta in pixels. Isometric
	// cameras ignore it.
	Look(dx, dy float32)

	// Basis returns the ground-plane forward and right unit vectors used
	// to map movement intent into world space.
	Basis() (forward, right math.Vec2)

	// Follow advances the camera toward the agent position. dt is the
	// already-clamped frame delta in seconds.
	Follow(agent math.Vec3, dt float32)

	// Pose returns the camera world position and orientation.
	Pose() (pos math.Vec3, yaw, pitch float32)
}

// FirstPersonCamera is the agent: its position is the agent position at
// eye height, its orientation is the accumulated mouse look.
type FirstPersonCamera struct {
	Yaw   float32 // Horizontal rotation (radians)
	Pitch float32 // Vertical angle (radians), clamped

	MinPitch    float32
	MaxPitch    float32
	EyeHeight   float32
	Sensitivity float32 // Radians per pixel

	pos math.Vec3
}

// NewFirstPersonCamera creates a first-person camera with default settings.
func NewFirstPersonCamera(eyeHeight, sensitivity float32) *FirstPersonCamera {
	return &FirstPersonCamera{
		MinPitch:    -1.45, // Just short of straight down
		MaxPitch:    1.45,
		EyeHeight:   eyeHeight,
		Sensitivity: sensitivity,
	}
}

// Look applies a pointer delta to yaw and pitch.
func (c *FirstPersonCamera) Look(dx, dy float32) {
	c.Yaw -= dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity

	// Clamp pitch
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// Basis returns the look-relative forward and right directions on the
// ground plane. Pitch does not affect movement.
func (c *FirstPersonCamera) Basis() (forward, right math.Vec2) {
	sin, cos := math32.Sincos(c.Yaw)
	forward = math.Vec2{X: sin, Z: cos}
	right = math.Vec2{X: cos, Z: -sin}
	return forward, right
}

// Follow snaps the camera to the agent position at eye height. The
// first-person camera has no smoothing: camera pose = agent pose.
func (c *FirstPersonCamera) Follow(agent math.Vec3, dt float32) {
	c.pos = math.Vec3{X: agent.X, Y: agent.Y + c.EyeHeight, Z: agent.Z}
}

// Pose returns the camera world position and look angles.
func (c *FirstPersonCamera) Pose() (math.Vec3, float32, float32) {
	return c.pos, c.Yaw, c.Pitch
}

// IsoFollowCamera trails the agent at a fixed offset, smoothing its
// focus point toward the agent each tick. The smoothing is independent
// of collision: the camera may briefly lag through geometry.
type IsoFollowCamera struct {
	Offset    math.Vec3 // Rigid offset from the focus point
	Smoothing float32   // Exponential smoothing constant (1/s)

	focus       math.Vec3
	initialized bool
}

// NewIsoFollowCamera creates an isometric follow camera.
func NewIsoFollowCamera(offset math.Vec3, smoothing float32) *IsoFollowCamera {
	return &IsoFollowCamera{
		Offset:    offset,
		Smoothing: smoothing,
	}
}

// Look is ignored: the isometric camera has a fixed orientation.
func (c *IsoFollowCamera) Look(dx, dy float32) {}

// Basis returns the fixed camera-relative directions on the ground
// plane, derived from the offset: forward points from the camera toward
// the agent.
func (c *IsoFollowCamera) Basis() (forward, right math.Vec2) {
	forward = math.Vec2{X: -c.Offset.X, Z: -c.Offset.Z}.Normalize()
	if forward.IsZero() {
		forward = math.Vec2{X: 0, Z: 1}
	}
	right = math.Vec2{X: forward.Z, Z: -forward.X}
	return forward, right
}

// Follow moves the focus point toward the agent with frame-rate
// independent exponential smoothing.
func (c *IsoFollowCamera) Follow(agent math.Vec3, dt float32) {
	if !c.initialized {
		c.focus = agent
		c.initialized = true
		return
	}
	t := 1 - math32.Exp(-c.Smoothing*dt)
	c.focus = c.focus.Add(agent.Sub(c.focus).Scale(t))
}

// Pose returns the camera position (focus + offset) looking at the
// focus point. Yaw is derived from the offset, pitch from its slope.
func (c *IsoFollowCamera) Pose() (math.Vec3, float32, float32) {
	pos := c.focus.Add(c.Offset)
	horiz := math32.Hypot(c.Offset.X, c.Offset.Z)
	yaw := math32.Atan2(-c.Offset.X, -c.Offset.Z)
	pitch := -math32.Atan2(c.Offset.Y, horiz)
	return pos, yaw, pitch
}
