package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/gesture"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.Bool("camera", false, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const dragScript = `{"steps": [
	{"action": "drag", "fromX": 400, "fromY": 400, "toX": 460, "toY": 400, "frames": 4}
]}`

func TestRunLogsGestureEvents(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GESTUREREPLAY_CONFIG", writeFile(t, dir, "gesture.toml", "edge_slop = 16.0\n"))
	script := writeFile(t, dir, "drag.json", dragScript)

	var out bytes.Buffer
	require.NoError(t, run(testFlags(t), script, &out))
	log := out.String()
	for _, want := range []string{"kind=move phase=begin", "kind=move phase=update", "kind=move phase=end", "replay done"} {
		require.Contains(t, log, want)
	}
	require.NotContains(t, log, "camera", "camera line printed without --camera")
}

func TestRunCamera(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GESTUREREPLAY_CONFIG", writeFile(t, dir, "gesture.toml", "[inertia]\nenabled = false\n"))
	script := writeFile(t, dir, "drag.json", dragScript)

	var out bytes.Buffer
	require.NoError(t, run(testFlags(t, "--camera"), script, &out))
	require.Contains(t, out.String(), "msg=camera x=-60")
}

func TestRunInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GESTUREREPLAY_CONFIG", writeFile(t, dir, "gesture.toml", "pressure_threshold = 3.0\n"))
	script := writeFile(t, dir, "drag.json", dragScript)
	require.Error(t, run(testFlags(t), script, &bytes.Buffer{}))
}

func TestRunMissingScript(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GESTUREREPLAY_CONFIG", writeFile(t, dir, "gesture.toml", ""))
	require.Error(t, run(testFlags(t), filepath.Join(dir, "missing.json"), &bytes.Buffer{}))
}

func TestRunEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GESTUREREPLAY_CONFIG", writeFile(t, dir, "gesture.toml", ""))
	t.Setenv("GESTUREREPLAY_REPLAY_LOG_LEVEL", "error")
	script := writeFile(t, dir, "drag.json", dragScript)

	var out bytes.Buffer
	require.NoError(t, run(testFlags(t), script, &out))
	require.Zero(t, out.Len(), "info lines printed at error level:\n%s", out.String())
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, "DEBUG", parseLevel("DEBUG").String())
	require.Equal(t, "INFO", parseLevel("bogus").String())
}

func TestLoadConfigDefaultsScreen(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GESTUREREPLAY_CONFIG", writeFile(t, dir, "gesture.toml", "rotate_angle_threshold = 5.0\n"))

	cfg, err := loadConfig(testFlags(t))
	require.NoError(t, err)
	require.Equal(t, gesture.Rect{Width: 1080, Height: 1920}, cfg.Gesture.Screen)
	require.Equal(t, 5.0, cfg.Gesture.RotateAngleThreshold)
	require.Equal(t, gesture.DefaultConfig().ScaleSpanThreshold, cfg.Gesture.ScaleSpanThreshold)
}
