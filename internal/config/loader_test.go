package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded defaults drifted from DefaultTetrisConfig:\n%+v\n%+v", cfg, DefaultTetrisConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadTetrisCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := "timing:\n  lock_delay_ms: 750\nscoring:\n  start_level: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	if cfg.Timing.LockDelay() != 750*time.Millisecond {
		t.Errorf("lock delay = %v, want 750ms", cfg.Timing.LockDelay())
	}
	if cfg.Scoring.StartLevel != 3 {
		t.Errorf("start level = %d, want 3", cfg.Scoring.StartLevel)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Timing.FallNormal() != time.Second {
		t.Errorf("fall normal = %v, want 1s", cfg.Timing.FallNormal())
	}
	if !cfg.Display.Ghost {
		t.Error("ghost should stay enabled")
	}
}

func TestLoadTetrisErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTetris(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTetris(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  fall_normal_ms: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadTetris(invalid)
	if err == nil || !strings.Contains(err.Error(), "fall_normal_ms") {
		t.Errorf("expected validation error naming fall_normal_ms, got %v", err)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Timing.FallSoftMs = 0
	cfg.Scoring.StartLevel = 0
	cfg.Difficulty.Progression.Type = "score"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, field := range []string{"fall_soft_ms", "start_level", "progression.type"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		startLevel int
		lockMs     int
	}{
		{DifficultyEasy, true, 1, 750},
		{DifficultyNormal, true, 1, 500},
		{DifficultyHard, true, 5, 400},
		{DifficultyFixed, false, 1, 500},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Scoring.StartLevel != tc.startLevel {
				t.Errorf("start level = %d, want %d", cfg.Scoring.StartLevel, tc.startLevel)
			}
			if cfg.Timing.LockDelayMs != tc.lockMs {
				t.Errorf("lock delay = %d, want %d", cfg.Timing.LockDelayMs, tc.lockMs)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("hard preset = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestMarshalRoundTripsDefaults(t *testing.T) {
	data, err := Marshal(DefaultTetrisConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "fall_normal_ms: 1000") {
		t.Errorf("unexpected yaml:\n%s", data)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("tetris")) == 0 {
		t.Error("missing tetris defaults")
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no defaults")
	}
}
