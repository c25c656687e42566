// Package controls implements the per-tick movement and interaction
// control loop: input intent to velocity, collision resolution, nearest
// interactive candidate tracking, and the interaction state machine.
package controls

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/showroom/internal/config"
	"github.com/Faultbox/showroom/internal/game/entity"
	"github.com/Faultbox/showroom/pkg/math"
)

// Integrator converts movement intent into smoothed ground-plane
// velocity and advances the agent position.
type Integrator struct {
	MaxSpeed     float32 // Units per second
	BlendFactor  float32 // Per-tick lerp toward the target velocity, not time-scaled
	Deceleration float32 // Exponential friction constant (1/s), time-scaled
	Deadzone     float32 // Component snap-to-zero threshold
}

// NewIntegrator builds an integrator from the controls config.
func NewIntegrator(cfg config.ControlsConfig) Integrator {
	return Integrator{
		MaxSpeed:     cfg.MaxSpeed,
		BlendFactor:  cfg.BlendFactor,
		Deceleration: cfg.Deceleration,
		Deadzone:     cfg.Deadzone,
	}
}

// Step advances the agent one tick. intent is the normalized world-space
// movement direction (zero when no keys are held); dt is the
// already-clamped frame delta in seconds. The caller skips Step entirely
// while the session is inactive.
func (in Integrator) Step(a *entity.Agent, intent math.Vec2, dt float32) {
	// Blend toward the target velocity. The blend factor is a fixed
	// per-tick constant; the visual smoothing it produces is mildly
	// frame-rate dependent on purpose.
	target := intent.Scale(in.MaxSpeed)
	a.Velocity = a.Velocity.Add(target.Sub(a.Velocity).Scale(in.BlendFactor))

	// Hard speed clamp while driving.
	if !intent.IsZero() {
		if s := a.Velocity.Length(); s > in.MaxSpeed {
			a.Velocity = a.Velocity.Scale(in.MaxSpeed / s)
		}
	}

	// Friction is the one time-scaled step, so coasting decays at the
	// same rate regardless of frame rate.
	a.Velocity = a.Velocity.Scale(math32.Exp(-in.Deceleration * dt))

	// Deadzone: snap sub-threshold components to exactly zero so the
	// agent comes to a true stop instead of drifting asymptotically.
	if math32.Abs(a.Velocity.X) < in.Deadzone {
		a.Velocity.X = 0
	}
	if math32.Abs(a.Velocity.Z) < in.Deadzone {
		a.Velocity.Z = 0
	}

	a.SetPlanar(a.Planar().Add(a.Velocity.Scale(dt)))
}
