// Command gesturereplay replays a JSON gesture script through the gesture
// detectors and prints one log line per recognized gesture event.
//
//	gesturereplay [--log-level debug] [--camera] script.json
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/phanxgames/gesture"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("gesturereplay", pflag.ExitOnError)
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("camera", false, "drive a camera with the gestures and print its final state")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: gesturereplay [flags] script.json\n")
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])
	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(2)
	}

	if err := run(flags, flags.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "gesturereplay: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *pflag.FlagSet, scriptPath string, out io.Writer) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	gesture.SetLogger(log)
	defer gesture.SetLogger(nil)

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := gesture.LoadScript(data)
	if err != nil {
		return err
	}

	m := gesture.NewManager(cfg.Gesture)
	m.SetEventSink(logSink{log: log})

	var cam *gesture.Camera
	if cfg.Camera {
		cam = gesture.NewCamera(cfg.Gesture.Screen)
		cc := gesture.NewCameraController(cam, m, cfg.Gesture)
		defer cc.Close()
	}

	n := script.Replay(m)
	log.Info("replay done", "samples", n)

	if cam != nil {
		for i := 0; i < 600 && cam.Animating(); i++ {
			cam.Update(1.0 / 60)
		}
		log.Info("camera",
			"x", cam.X, "y", cam.Y,
			"zoom", cam.Zoom,
			"rotation_deg", cam.Rotation*180/math.Pi,
			"tilt", cam.Tilt,
		)
	}
	return nil
}

// logSink writes every gesture event as one structured log line.
type logSink struct {
	log *slog.Logger
}

func (s logSink) EmitEvent(e gesture.GestureEvent) {
	attrs := []any{
		"kind", e.Kind.String(),
		"phase", e.Phase.String(),
		"session", e.SessionID.String(),
		"t", e.TimeMillis,
		"pointers", e.PointerCount,
		"focus_x", e.FocusX,
		"focus_y", e.FocusY,
	}
	switch e.Kind {
	case gesture.KindMove:
		attrs = append(attrs, "dx", e.DeltaX, "dy", e.DeltaY, "vx", e.VelocityX, "vy", e.VelocityY)
	case gesture.KindRotate:
		attrs = append(attrs, "degrees", e.RotationDelta, "deg_per_s", e.AngularVelocity)
	case gesture.KindScale:
		attrs = append(attrs, "factor", e.ScaleFactor, "span_per_s", e.SpanVelocity)
	case gesture.KindShove:
		attrs = append(attrs, "dy", e.ShoveDelta)
	}
	s.log.Info("gesture", attrs...)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
