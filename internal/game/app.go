// Package game wires the control session to the SDL window and runs
// the frame loop.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/showroom/internal/config"
	"github.com/Faultbox/showroom/internal/engine/camera"
	"github.com/Faultbox/showroom/internal/engine/input"
	"github.com/Faultbox/showroom/internal/engine/window"
	"github.com/Faultbox/showroom/internal/game/controls"
	"github.com/Faultbox/showroom/internal/game/entity"
	"github.com/Faultbox/showroom/internal/logger"
	"github.com/Faultbox/showroom/pkg/math"
)

// maxFrameDelta caps the per-frame delta handed to the session, so a
// stall (window drag, debugger pause) does not integrate into a single
// huge step.
const maxFrameDelta = float32(0.05)

// frameBudget paces the loop when there is no VSync to block on.
const frameBudget = 16 * time.Millisecond

// App is the demo driver: window, input pump, and one control session
// over the built-in gallery.
type App struct {
	cfg     *config.Config
	running bool

	window  *window.Window
	pump    *input.Pump
	keymap  *input.Keymap
	sampler *input.Sampler
	session *controls.Session

	firstPerson bool
	log         *zap.Logger
}

// New creates the app: window, input, camera, and a session spawned in
// the demo gallery.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Showroom",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.keymap, err = input.NewKeymap(cfg.Controls.Bindings)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}

	cam, err := buildCamera(cfg)
	if err != nil {
		a.window.Close()
		return nil, err
	}
	a.firstPerson = cfg.Camera.Mode != "isometric"

	a.pump = input.NewPump()
	a.sampler = input.NewSampler()

	a.session, err = controls.NewSession(controls.SessionConfig{
		Spawn:    math.Vec3{X: 0, Y: 0, Z: -6},
		Controls: cfg.Controls,
		Sampler:  a.sampler,
		Camera:   cam,
		Resolver: buildResolver(cfg.Camera.Mode, cfg.Controls),
		OnProximityChange: func(c *entity.Candidate) {
			if c != nil {
				a.log.Info("near exhibit", zap.String("title", c.Title), zap.String("kind", c.Kind))
			} else {
				a.log.Info("left exhibit range")
			}
		},
		OnPanel: a.onPanel,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	a.session.SetCandidates(galleryCandidates())

	a.log.Info("app initialized", zap.String("camera", cfg.Camera.Mode))
	return a, nil
}

// buildCamera constructs the camera coupling selected by the config.
func buildCamera(cfg *config.Config) (camera.Camera, error) {
	switch cfg.Camera.Mode {
	case "", "firstperson":
		return camera.NewFirstPersonCamera(cfg.Camera.EyeHeight, cfg.Controls.MouseSensitivity), nil
	case "isometric":
		offset := math.Vec3{X: cfg.Camera.OffsetX, Y: cfg.Camera.OffsetY, Z: cfg.Camera.OffsetZ}
		return camera.NewIsoFollowCamera(offset, cfg.Camera.Smoothing), nil
	default:
		return nil, fmt.Errorf("unknown camera mode %q", cfg.Camera.Mode)
	}
}

// onPanel is where the HTML overlay would attach. The demo logs the
// signal and toggles pointer capture so the cursor is available while
// the panel is up.
func (a *App) onPanel(open bool) {
	a.log.Info("panel", zap.Bool("open", open))
	if a.firstPerson {
		if err := input.SetPointerCapture(!open); err != nil {
			a.log.Warn("pointer capture failed", zap.Error(err))
		}
	}
}

// Run drives the frame loop until quit.
func (a *App) Run() error {
	a.running = true

	a.session.Activate()
	if a.firstPerson {
		if err := input.SetPointerCapture(true); err != nil {
			a.log.Warn("pointer capture failed", zap.Error(err))
		}
	}

	lastTime := time.Now()
	statusTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(lastTime).Seconds())
		lastTime = frameStart
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}

		if a.pump.Update() {
			break
		}
		for _, ev := range a.pump.Events() {
			a.handleEvent(ev)
		}

		a.session.Tick(dt)

		// Stub presenter: this is where the renderer would consume the
		// camera pose. Once a second, show where we are.
		if time.Since(statusTimer) >= time.Second {
			pos, yaw, pitch := a.session.CameraPose()
			a.log.Debug("pose",
				zap.Float32("x", pos.X),
				zap.Float32("y", pos.Y),
				zap.Float32("z", pos.Z),
				zap.Float32("yaw", yaw),
				zap.Float32("pitch", pitch),
				zap.Bool("canInteract", a.session.CanInteract()))
			statusTimer = time.Now()
		}

		if elapsed := time.Since(frameStart); elapsed < frameBudget {
			sdl.Delay(uint32((frameBudget - elapsed).Milliseconds()))
		}
	}

	return nil
}

// handleEvent routes one pump event into the sampler and session.
func (a *App) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		a.running = false

	case input.EventFocusLost:
		a.session.Deactivate()
		if a.firstPerson {
			_ = input.SetPointerCapture(false)
		}

	case input.EventFocusGained:
		a.session.Activate()
		if a.firstPerson && !a.session.PanelOpen() {
			_ = input.SetPointerCapture(true)
		}

	case input.EventKeyDown:
		switch {
		case ev.Key == sdl.SCANCODE_ESCAPE:
			if a.session.PanelOpen() {
				a.session.ClosePanel()
			} else {
				a.running = false
			}
		case a.keymap.IsInteract(ev.Key):
			a.session.Interact()
		default:
			if d, ok := a.keymap.Direction(ev.Key); ok {
				a.sampler.Press(d)
			}
		}

	case input.EventKeyUp:
		if d, ok := a.keymap.Direction(ev.Key); ok {
			a.sampler.Release(d)
		}

	case input.EventMouseMove:
		a.sampler.AddPointerDelta(float32(ev.RelX), float32(ev.RelY))
	}
}

// Close tears the app down.
func (a *App) Close() {
	a.log.Info("closing")
	if a.session != nil {
		a.session.Dispose()
	}
	if a.window != nil {
		a.window.Close()
	}
}
