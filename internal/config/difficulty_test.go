package config

import (
	"testing"
	"time"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultTetrisConfig().Difficulty
	d := NewDifficultyManager(cfg)

	tests := []struct {
		lines int
		want  float64
	}{
		{0, 0.0},
		{75, 0.5},
		{150, 1.0},
		{1000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.lines, 0); got != tc.want {
			t.Errorf("Level(%d) = %v, want %v", tc.lines, got, tc.want)
		}
	}

	cfg.InitialLevel = 0.5
	if got := NewDifficultyManager(cfg).Level(75, 0); got != 0.75 {
		t.Errorf("Level with initial 0.5 = %v, want 0.75", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultTetrisConfig().Difficulty
	cfg.InitialLevel = 0.25
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("expected disabled")
	}
	if got := d.Level(150, 0); got != 0.25 {
		t.Errorf("disabled level = %v, want initial 0.25", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1},
	}
	d := NewDifficultyManager(cfg)
	if got := d.Level(0, 50); got != 0.5 {
		t.Errorf("Level at half time = %v, want 0.5", got)
	}
}

func TestFallInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig().Difficulty)

	if got := d.FallInterval(time.Second, 0, 0); got != time.Second {
		t.Errorf("start interval = %v, want 1s", got)
	}
	if got := d.FallInterval(time.Second, 150, 0); got != 200*time.Millisecond {
		t.Errorf("max interval = %v, want 200ms", got)
	}
	if got := d.FallInterval(100*time.Millisecond, 150, 0); got != 50*time.Millisecond {
		t.Errorf("interval below floor = %v, want 50ms", got)
	}
}
