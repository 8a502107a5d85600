package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"followcam/internal/camera"
)

func TestLoadRepositoryConfig(t *testing.T) {
	cfg, err := LoadConfig("../../config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if GlobalConfig != cfg {
		t.Error("Expected GlobalConfig to point at the loaded config")
	}
	if cfg.GetScreenWidth() != 1280 || cfg.GetScreenHeight() != 720 {
		t.Errorf("Expected 1280x720, got %dx%d", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if cfg.City.DistanceBetweenCities != 2100 {
		t.Errorf("Expected distance between cities 2100, got %v", cfg.City.DistanceBetweenCities)
	}

	// The shipped file must keep the tuned camera constants.
	got := cfg.CameraSettings()
	want := camera.DefaultSettings()
	if got.AngleThreshold != want.AngleThreshold ||
		got.AngleFollowSpeed != want.AngleFollowSpeed ||
		got.AxisDistance != want.AxisDistance ||
		got.NearPlane != want.NearPlane ||
		got.FarPlane != want.FarPlane {
		t.Errorf("Expected camera settings %+v, got %+v", want, got)
	}
	if diff := got.FieldOfView - want.FieldOfView; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("Expected field of view %v, got %v", want.FieldOfView, got.FieldOfView)
	}
}

func TestParseFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("display:\n  window_title: custom\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Display.WindowTitle != "custom" {
		t.Errorf("Expected title 'custom', got %q", cfg.Display.WindowTitle)
	}
	if cfg.Display.TPS != 60 {
		t.Errorf("Expected default tps 60, got %d", cfg.Display.TPS)
	}
	if cfg.Camera.AngleThreshold != camera.AngleThreshold {
		t.Errorf("Expected default threshold, got %v", cfg.Camera.AngleThreshold)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{"zero width", "display:\n  screen_width: 0\n"},
		{"negative height", "display:\n  screen_height: -5\n"},
		{"zero tps", "display:\n  tps: 0\n"},
		{"flat field of view", "camera:\n  field_of_view: 180\n"},
		{"planes out of order", "camera:\n  near_plane: 10\n  far_plane: 5\n"},
		{"zero axis distance", "camera:\n  axis_distance: 0\n"},
		{"threshold above one", "camera:\n  angle_threshold: 1.5\n"},
		{"negative follow speed", "camera:\n  angle_follow_speed: -0.1\n"},
		{"no blocks", "city:\n  blocks_per_side: 0\n"},
		{"inverted heights", "city:\n  min_height: 500\n  max_height: 100\n"},
		{"negative block size", "city:\n  block_size: -400\n"},
		{"zero street width", "city:\n  street_width: 0\n"},
		{"negative distance", "city:\n  distance_between_cities: -2100\n"},
		{"overlapping blocks", "city:\n  distance_between_cities: 1800\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("display: [unclosed")); err == nil {
		t.Error("Expected an error for malformed yaml")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestMustLoadConfigPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustLoadConfig to panic")
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestHelpers(t *testing.T) {
	cfg := Default()

	if got := cfg.GetAspectRatio(); got != float32(1280)/float32(720) {
		t.Errorf("Expected aspect ratio 16:9, got %v", got)
	}
	if got := cfg.GetTimeStep(); got != float32(1)/60 {
		t.Errorf("Expected time step 1/60, got %v", got)
	}
	if got := cfg.Vehicle.GetSnapTurnRadians(); got < 1.5707 || got > 1.5709 {
		t.Errorf("Expected snap turn of pi/2, got %v", got)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("display:\n  tps: 60\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// Writes to other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("display:\n  tps: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "config.yaml" {
			t.Errorf("Expected an event for config.yaml, got %s", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a change event within 2s")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("First Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Second Close failed: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Expected Events to be closed")
	}
}
