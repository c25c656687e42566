package controls

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/showroom/internal/config"
	"github.com/Faultbox/showroom/internal/engine/camera"
	"github.com/Faultbox/showroom/internal/engine/input"
	"github.com/Faultbox/showroom/internal/game/entity"
	"github.com/Faultbox/showroom/internal/logger"
	"github.com/Faultbox/showroom/pkg/math"
)

// SessionConfig wires a session together. Spawn, the resolver, and the
// candidate list come from the environment once it finishes building.
type SessionConfig struct {
	Spawn    math.Vec3
	Controls config.ControlsConfig

	Sampler  *input.Sampler
	Camera   camera.Camera
	Resolver Resolver // nil means free movement

	// OnProximityChange receives the new nearest candidate (nil on
	// exit), once per identity change. Consumed by the UI layer to
	// show or hide the floating label.
	OnProximityChange func(*entity.Candidate)

	// OnPanel receives panel open/close signals for the modal view.
	OnPanel func(open bool)
}

// Session owns the control loop for one scene: it is created at spawn,
// ticked once per displayed frame, and disposed on scene teardown. All
// work is synchronous; pausing is the inactive phase skipping the
// integrator, not a suspended task.
type Session struct {
	agent      *entity.Agent
	sampler    *input.Sampler
	camera     camera.Camera
	integrator Integrator
	resolver   Resolver
	proximity  *ProximityTracker
	state      *StateMachine

	log      *zap.Logger
	disposed bool
}

// NewSession creates a session at the spawn position. The spawn point
// is a caller contract: a malformed (NaN) spawn is not sanitized here.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Sampler == nil {
		return nil, errors.New("controls: sampler is required")
	}
	if cfg.Camera == nil {
		return nil, errors.New("controls: camera is required")
	}

	resolver := cfg.Resolver
	if resolver == nil {
		resolver = NullResolver{}
	}

	s := &Session{
		agent:      entity.NewAgent(cfg.Spawn, cfg.Controls.AgentRadius),
		sampler:    cfg.Sampler,
		camera:     cfg.Camera,
		integrator: NewIntegrator(cfg.Controls),
		resolver:   resolver,
		proximity:  NewProximityTracker(cfg.Controls.ProximityRadius, cfg.OnProximityChange),
		state:      NewStateMachine(cfg.Controls.SettleDelay, cfg.OnPanel),
		log:        logger.Named("session"),
	}

	s.log.Info("session created",
		zap.Float32("spawnX", cfg.Spawn.X),
		zap.Float32("spawnZ", cfg.Spawn.Z),
		zap.Float32("agentRadius", cfg.Controls.AgentRadius))

	return s, nil
}

// SetCandidates installs the interactive candidate list, supplied once
// after content placement.
func (s *Session) SetCandidates(candidates []*entity.Candidate) {
	s.proximity.SetCandidates(candidates)
	s.log.Debug("candidates installed", zap.Int("count", len(candidates)))
}

// Agent returns the controlled agent.
func (s *Session) Agent() *entity.Agent {
	return s.agent
}

// CameraPose returns the camera world position and orientation for the
// renderer.
func (s *Session) CameraPose() (pos math.Vec3, yaw, pitch float32) {
	return s.camera.Pose()
}

// Active reports whether movement input is being processed.
func (s *Session) Active() bool {
	return s.state.Active()
}

// PanelOpen reports whether the modal content view is showing.
func (s *Session) PanelOpen() bool {
	return s.state.PanelOpen()
}

// CanInteract reports whether an interact action would open a panel
// right now, letting the UI layer show an affordance hint.
func (s *Session) CanInteract() bool {
	return s.state.Active() && s.proximity.Current() != nil
}

// Nearest returns the current proximity selection, or nil.
func (s *Session) Nearest() *entity.Candidate {
	return s.proximity.Current()
}

// Activate starts or resumes the experience (initial start, focus
// regained).
func (s *Session) Activate() {
	s.state.Activate()
}

// Deactivate pauses the experience on focus loss. Held keys are cleared
// so they do not stick across the pause.
func (s *Session) Deactivate() {
	s.state.Deactivate()
	s.sampler.Reset()
}

// Interact delivers the interact trigger from the input layer. It is a
// no-op unless the session is active, a proximity target exists, and no
// panel is already open.
func (s *Session) Interact() {
	if s.state.TryOpenPanel(s.proximity.Current() != nil) {
		s.log.Info("panel opened", zap.String("title", s.proximity.Current().Title))
	}
}

// ClosePanel dismisses the modal view (close button, backdrop dismiss,
// escape key).
func (s *Session) ClosePanel() {
	s.state.ClosePanel()
}

// Tick advances the control loop by one frame. dt is the wall-clock
// delta in seconds, already clamped by the driving render loop. The
// in-tick order is fixed: integration, collision resolution, proximity,
// state, camera — later steps read what earlier steps wrote, never the
// reverse.
func (s *Session) Tick(dt float32) {
	if s.disposed {
		return
	}

	// Pointer deltas are consumed every tick so they do not accumulate
	// across a pause; they only steer the camera while active.
	dx, dy := s.sampler.ConsumeLook()

	if s.state.Active() {
		s.camera.Look(dx, dy)

		// Map intent from the camera frame into world space.
		local := s.sampler.Intent()
		forward, right := s.camera.Basis()
		intent := forward.Scale(local.Z).Add(right.Scale(local.X))

		s.integrator.Step(s.agent, intent, dt)
		s.resolver.Resolve(s.agent)
	}

	s.proximity.Update(s.agent.Planar())
	s.state.Tick(dt)
	s.camera.Follow(s.agent.Position, dt)
}

// Dispose tears the session down. Further Ticks are no-ops.
func (s *Session) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.log.Info("session disposed")
}
