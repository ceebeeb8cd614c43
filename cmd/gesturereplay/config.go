package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/phanxgames/gesture"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Scripts are recorded against a portrait phone screen unless the config
// names another size.
const (
	defaultScreenWidth  = 1080.0
	defaultScreenHeight = 1920.0
)

// replayConfig holds the detector tuning plus replay output settings.
type replayConfig struct {
	Gesture  gesture.Config
	LogLevel string
	Camera   bool
}

// loadConfig reads gesture.toml from $GESTUREREPLAY_CONFIG or the working
// directory. Env var overrides use prefix GESTUREREPLAY_, with dots in keys
// replaced by underscores (GESTUREREPLAY_INERTIA_ENABLED). Command-line
// flags override both.
func loadConfig(flags *pflag.FlagSet) (replayConfig, error) {
	v := viper.New()

	def := gesture.DefaultConfig()
	v.SetDefault("edge_slop", def.EdgeSlop)
	v.SetDefault("pressure_threshold", def.PressureThreshold)
	v.SetDefault("screen.x", def.Screen.X)
	v.SetDefault("screen.y", def.Screen.Y)
	v.SetDefault("screen.width", defaultScreenWidth)
	v.SetDefault("screen.height", defaultScreenHeight)
	v.SetDefault("rotate_angle_threshold", def.RotateAngleThreshold)
	v.SetDefault("rotate_threshold_increase", def.RotateThresholdIncrease)
	v.SetDefault("scale_span_threshold", def.ScaleSpanThreshold)
	v.SetDefault("scale_span_when_rotating", def.ScaleSpanWhenRotating)
	v.SetDefault("shove_threshold", def.ShoveThreshold)
	v.SetDefault("max_shove_angle", def.MaxShoveAngle)
	v.SetDefault("inertia.enabled", def.Inertia.Enabled)
	v.SetDefault("inertia.min_velocity", def.Inertia.MinVelocity)
	v.SetDefault("inertia.min_angular_velocity", def.Inertia.MinAngularVelocity)
	v.SetDefault("inertia.min_span_velocity", def.Inertia.MinSpanVelocity)
	v.SetDefault("inertia.duration", def.Inertia.Duration)
	v.SetDefault("replay.log_level", "info")
	v.SetDefault("replay.camera", false)

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("GESTUREREPLAY_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("gesture")
	}

	v.SetEnvPrefix("GESTUREREPLAY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlag("replay.log_level", flags.Lookup("log-level")); err != nil {
		return replayConfig{}, fmt.Errorf("bind flags: %w", err)
	}
	if err := v.BindPFlag("replay.camera", flags.Lookup("camera")); err != nil {
		return replayConfig{}, fmt.Errorf("bind flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return replayConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	c := replayConfig{
		Gesture: gesture.Config{
			EdgeSlop:          v.GetFloat64("edge_slop"),
			PressureThreshold: v.GetFloat64("pressure_threshold"),
			Screen: gesture.Rect{
				X:      v.GetFloat64("screen.x"),
				Y:      v.GetFloat64("screen.y"),
				Width:  v.GetFloat64("screen.width"),
				Height: v.GetFloat64("screen.height"),
			},
			RotateAngleThreshold:    v.GetFloat64("rotate_angle_threshold"),
			RotateThresholdIncrease: v.GetFloat64("rotate_threshold_increase"),
			ScaleSpanThreshold:      v.GetFloat64("scale_span_threshold"),
			ScaleSpanWhenRotating:   v.GetFloat64("scale_span_when_rotating"),
			ShoveThreshold:          v.GetFloat64("shove_threshold"),
			MaxShoveAngle:           v.GetFloat64("max_shove_angle"),
			Inertia: gesture.InertiaConfig{
				Enabled:            v.GetBool("inertia.enabled"),
				MinVelocity:        v.GetFloat64("inertia.min_velocity"),
				MinAngularVelocity: v.GetFloat64("inertia.min_angular_velocity"),
				MinSpanVelocity:    v.GetFloat64("inertia.min_span_velocity"),
				Duration:           v.GetFloat64("inertia.duration"),
			},
		},
		LogLevel: v.GetString("replay.log_level"),
		Camera:   v.GetBool("replay.camera"),
	}
	if err := c.Gesture.Validate(); err != nil {
		return replayConfig{}, err
	}
	return c, nil
}
