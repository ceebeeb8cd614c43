package gesture

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid gesture config")

// Config holds the construction-time parameters shared by all detectors.
type Config struct {
	// EdgeSlop is the margin in pixels near the screen edges inside which a
	// two-finger placement is treated as accidental.
	EdgeSlop float64 `toml:"edge_slop"`
	// PressureThreshold is the minimum current/previous pressure ratio for a
	// move sample to be applied.
	PressureThreshold float64 `toml:"pressure_threshold"`
	// Screen is the physical screen rectangle used for the right and bottom
	// edge checks. A zero size disables those checks until the host supplies
	// one through SetScreen; NewManager logs a warning in that case.
	Screen Rect `toml:"screen"`
	// RotateAngleThreshold is the rotation in degrees since the placement a
	// pair must turn before a rotate may begin.
	RotateAngleThreshold float64 `toml:"rotate_angle_threshold"`
	// RotateThresholdIncrease is added to RotateAngleThreshold by a Manager
	// while a scale is running. Zero disables the increase.
	RotateThresholdIncrease float64 `toml:"rotate_threshold_increase"`
	// ScaleSpanThreshold is the span change in pixels since the placement
	// before a scale may begin.
	ScaleSpanThreshold float64 `toml:"scale_span_threshold"`
	// ScaleSpanWhenRotating replaces ScaleSpanThreshold in a Manager while a
	// rotate is running; a rotate beginning also interrupts a running scale.
	// Zero disables both.
	ScaleSpanWhenRotating float64 `toml:"scale_span_when_rotating"`
	// ShoveThreshold is the mean vertical travel in pixels before a shove
	// may begin.
	ShoveThreshold float64 `toml:"shove_threshold"`
	// MaxShoveAngle is the largest angle in degrees between the finger pair
	// and the horizontal for which a shove may begin.
	MaxShoveAngle float64 `toml:"max_shove_angle"`

	Inertia InertiaConfig `toml:"inertia"`
}

// InertiaConfig tunes the animations a CameraController starts when a
// gesture ends while the fingers are still moving.
type InertiaConfig struct {
	Enabled bool `toml:"enabled"`
	// MinVelocity is the pan speed in px/s below which no fling starts.
	MinVelocity float64 `toml:"min_velocity"`
	// MinAngularVelocity is the rotation speed in deg/s below which no spin
	// starts.
	MinAngularVelocity float64 `toml:"min_angular_velocity"`
	// MinSpanVelocity is the pinch speed in px/s below which no zoom fling
	// starts.
	MinSpanVelocity float64 `toml:"min_span_velocity"`
	// Duration is the length of every inertia animation in seconds.
	Duration float64 `toml:"duration"`
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		EdgeSlop:          32,
		PressureThreshold: 0.67,

		RotateAngleThreshold:    15.3,
		RotateThresholdIncrease: 25,
		ScaleSpanThreshold:      8,
		ScaleSpanWhenRotating:   100,

		ShoveThreshold: 20,
		MaxShoveAngle:  20,
		Inertia: InertiaConfig{
			Enabled:            true,
			MinVelocity:        1000,
			MinAngularVelocity: 30,
			MinSpanVelocity:    300,
			Duration:           0.3,
		},
	}
}

// ParseConfig decodes TOML over DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse gesture config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML file over DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load gesture config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range parameter.
func (c Config) Validate() error {
	switch {
	case c.EdgeSlop < 0:
		return fmt.Errorf("%w: edge_slop %v is negative", ErrInvalidConfig, c.EdgeSlop)
	case c.PressureThreshold < 0 || c.PressureThreshold > 1:
		return fmt.Errorf("%w: pressure_threshold %v outside [0,1]", ErrInvalidConfig, c.PressureThreshold)
	case c.Screen.Width < 0 || c.Screen.Height < 0:
		return fmt.Errorf("%w: screen size %vx%v is negative", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	case c.RotateAngleThreshold < 0:
		return fmt.Errorf("%w: rotate_angle_threshold %v is negative", ErrInvalidConfig, c.RotateAngleThreshold)
	case c.RotateThresholdIncrease < 0:
		return fmt.Errorf("%w: rotate_threshold_increase %v is negative", ErrInvalidConfig, c.RotateThresholdIncrease)
	case c.RotateAngleThreshold+c.RotateThresholdIncrease > 180:
		return fmt.Errorf("%w: rotate_angle_threshold %v plus increase %v exceeds 180",
			ErrInvalidConfig, c.RotateAngleThreshold, c.RotateThresholdIncrease)
	case c.ScaleSpanThreshold < 0:
		return fmt.Errorf("%w: scale_span_threshold %v is negative", ErrInvalidConfig, c.ScaleSpanThreshold)
	case c.ScaleSpanWhenRotating < 0:
		return fmt.Errorf("%w: scale_span_when_rotating %v is negative", ErrInvalidConfig, c.ScaleSpanWhenRotating)
	case c.ShoveThreshold < 0:
		return fmt.Errorf("%w: shove_threshold %v is negative", ErrInvalidConfig, c.ShoveThreshold)
	case c.MaxShoveAngle < 0 || c.MaxShoveAngle > 90:
		return fmt.Errorf("%w: max_shove_angle %v outside [0,90]", ErrInvalidConfig, c.MaxShoveAngle)
	case c.Inertia.Duration < 0:
		return fmt.Errorf("%w: inertia.duration %v is negative", ErrInvalidConfig, c.Inertia.Duration)
	}
	return nil
}
