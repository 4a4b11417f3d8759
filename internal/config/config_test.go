package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded YAML differs from DefaultRunnerConfig():\n got %+v\nwant %+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultTunables(t *testing.T) {
	cfg := DefaultRunnerConfig()

	checks := []struct {
		name      string
		got, want float64
	}{
		{"SpawnAtDistance", cfg.Spawner.SpawnAtDistance, 50},
		{"MinPlatformWidth", cfg.Spawner.MinPlatformWidth, 20},
		{"MaxPlatformWidth", cfg.Spawner.MaxPlatformWidth, 30},
		{"MinXSpacing", cfg.Spawner.MinXSpacing, 35},
		{"MaxXSpacing", cfg.Spawner.MaxXSpacing, 45},
		{"MinYSpacing", cfg.Spawner.MinYSpacing, -8},
		{"MaxYSpacing", cfg.Spawner.MaxYSpacing, 8},
		{"RecycleDistance", cfg.Spawner.RecycleDistance, 50},
		{"RunningAccelerationRate", cfg.Motion.RunningAccelerationRate, 5},
		{"JumpSpeed", cfg.Motion.JumpSpeed, 20},
		{"Gravity", cfg.Motion.Gravity, 0.5},
		{"BottomOfTheWorld", cfg.Motion.BottomOfTheWorld, -60},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, expected %v", c.name, c.got, c.want)
		}
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("motion:\n  gravity: 9.8\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Motion.Gravity != 9.8 {
		t.Errorf("Gravity = %v, expected 9.8", cfg.Motion.Gravity)
	}
	if cfg.Motion.JumpSpeed != 20 {
		t.Errorf("JumpSpeed = %v, expected default 20", cfg.Motion.JumpSpeed)
	}
	if cfg.Spawner.MaxXSpacing != 45 {
		t.Errorf("MaxXSpacing = %v, expected default 45", cfg.Spawner.MaxXSpacing)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"inverted widths", "spawner:\n  min_platform_width: 40\n", "min_platform_width"},
		{"inverted y spacing", "spawner:\n  min_y_spacing: 9\n", "min_y_spacing"},
		{"zero x spacing", "spawner:\n  min_x_spacing: 0\n", "min_x_spacing must be positive"},
		{"floor above zero", "motion:\n  bottom_of_the_world: 5\n", "bottom_of_the_world"},
		{"negative gravity", "motion:\n  gravity: -1\n", "gravity"},
		{"bad yaml", "spawner: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("spawner:\n  spawn_at_distance: 80\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Spawner.SpawnAtDistance != 80 {
		t.Errorf("SpawnAtDistance = %v, expected 80", cfg.Spawner.SpawnAtDistance)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	for _, p := range Presets() {
		t.Run(string(p), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			if err := ApplyPreset(&cfg, p); err != nil {
				t.Fatalf("ApplyPreset(%q) failed: %v", p, err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %q produced an invalid config: %v", p, err)
			}
		})
	}

	cfg := DefaultRunnerConfig()
	if err := ApplyPreset(&cfg, PresetClassic); err != nil || cfg != DefaultRunnerConfig() {
		t.Error("classic preset should keep the defaults")
	}
	if err := ApplyPreset(&cfg, "turbo"); err == nil {
		t.Error("unknown preset should fail")
	}
}
