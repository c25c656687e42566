// Package config handles configuration loading and management.
package config

import "time"

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Controls ControlsConfig `yaml:"controls"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings for the demo driver.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ControlsConfig holds movement and interaction tuning.
type ControlsConfig struct {
	MaxSpeed         float32       `yaml:"max_speed"`         // Units per second
	BlendFactor      float32       `yaml:"blend_factor"`      // Per-tick velocity lerp toward target (0..1)
	Deceleration     float32       `yaml:"deceleration"`      // Exponential friction constant (1/s)
	Deadzone         float32       `yaml:"deadzone"`          // Velocity snap-to-zero threshold
	AgentRadius      float32       `yaml:"agent_radius"`      // Collision radius
	AgentHeight      float32       `yaml:"agent_height"`      // Capsule height for the precise strategy
	ProximityRadius  float32       `yaml:"proximity_radius"`  // Max distance for interactive candidates
	SettleDelay      time.Duration `yaml:"settle_delay"`      // Delay before input resumes after a panel closes
	MouseSensitivity float32       `yaml:"mouse_sensitivity"` // Radians per pixel of pointer delta

	// Key bindings, resolved by the input package. Each entry is a list of
	// key names so alternates (WASD + arrows) can share a direction.
	Bindings BindingsConfig `yaml:"bindings"`
}

// BindingsConfig maps logical directions to key names.
type BindingsConfig struct {
	Forward  []string `yaml:"forward"`
	Backward []string `yaml:"backward"`
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Interact []string `yaml:"interact"`
}

// CameraConfig selects and tunes the camera coupling.
type CameraConfig struct {
	Mode      string  `yaml:"mode"`       // "firstperson" or "isometric"
	EyeHeight float32 `yaml:"eye_height"` // First-person camera height above the ground
	OffsetX   float32 `yaml:"offset_x"`   // Isometric rigid offset from the agent
	OffsetY   float32 `yaml:"offset_y"`
	OffsetZ   float32 `yaml:"offset_z"`
	Smoothing float32 `yaml:"smoothing"` // Isometric follow smoothing constant (1/s)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Controls: ControlsConfig{
			MaxSpeed:         4.0,
			BlendFactor:      0.15,
			Deceleration:     6.0,
			Deadzone:         0.01,
			AgentRadius:      0.3,
			AgentHeight:      1.7,
			ProximityRadius:  2.5,
			SettleDelay:      300 * time.Millisecond,
			MouseSensitivity: 0.002,
			Bindings: BindingsConfig{
				Forward:  []string{"w", "up"},
				Backward: []string{"s", "down"},
				Left:     []string{"a", "left"},
				Right:    []string{"d", "right"},
				Interact: []string{"e", "return"},
			},
		},
		Camera: CameraConfig{
			Mode:      "firstperson",
			EyeHeight: 1.6,
			OffsetX:   -6.0,
			OffsetY:   8.0,
			OffsetZ:   -6.0,
			Smoothing: 5.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
