// Package config provides YAML-based game configuration loading and
// difficulty management for tetris.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the tetris game.
type TetrisConfig struct {
	Timing     TetrisTiming     `yaml:"timing"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Display    TetrisDisplay    `yaml:"display"`
	Input      TetrisInput      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisTiming defines the gravity and lock timings, in milliseconds.
type TetrisTiming struct {
	FallNormalMs     int `yaml:"fall_normal_ms"`
	FallSoftMs       int `yaml:"fall_soft_ms"`
	LockDelayMs      int `yaml:"lock_delay_ms"`
	ClearAnimationMs int `yaml:"clear_animation_ms"` // 0 disables the clear animation
}

// FallNormal returns the normal gravity period.
func (t TetrisTiming) FallNormal() time.Duration { return ms(t.FallNormalMs) }

// FallSoft returns the soft-drop gravity period.
func (t TetrisTiming) FallSoft() time.Duration { return ms(t.FallSoftMs) }

// LockDelay returns the grace period before a grounded piece locks.
func (t TetrisTiming) LockDelay() time.Duration { return ms(t.LockDelayMs) }

// ClearAnimation returns how long cleared rows flash before removal.
func (t TetrisTiming) ClearAnimation() time.Duration { return ms(t.ClearAnimationMs) }

// TetrisScoring defines the scoring rules.
type TetrisScoring struct {
	StartLevel int  `yaml:"start_level"`
	TSpin      bool `yaml:"tspin"`
}

// TetrisDisplay toggles optional HUD elements.
type TetrisDisplay struct {
	Ghost     bool `yaml:"ghost"`
	Preview   bool `yaml:"preview"`
	ShowPhase bool `yaml:"show_phase"`
}

// TetrisInput tunes how terminal key events become game actions.
type TetrisInput struct {
	SoftDropHoldMs int `yaml:"soft_drop_hold_ms"` // soft drop ends this long after the last repeat
}

// SoftDropHold returns the soft-drop hold window.
func (i TetrisInput) SoftDropHold() time.Duration { return ms(i.SoftDropHoldMs) }

// DifficultyConfig defines how gravity speeds up as the game goes on.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed added at max difficulty
	MinFallMs       int     `yaml:"min_fall_ms"`      // Fastest allowed gravity period
}

// Validate reports every field that would make the game unplayable.
func (c TetrisConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Timing.FallNormalMs > 0, "timing.fall_normal_ms must be positive, got %d", c.Timing.FallNormalMs)
	check(c.Timing.FallSoftMs > 0, "timing.fall_soft_ms must be positive, got %d", c.Timing.FallSoftMs)
	check(c.Timing.LockDelayMs > 0, "timing.lock_delay_ms must be positive, got %d", c.Timing.LockDelayMs)
	check(c.Timing.ClearAnimationMs >= 0, "timing.clear_animation_ms must not be negative, got %d", c.Timing.ClearAnimationMs)
	check(c.Scoring.StartLevel >= 1, "scoring.start_level must be at least 1, got %d", c.Scoring.StartLevel)
	check(c.Input.SoftDropHoldMs > 0, "input.soft_drop_hold_ms must be positive, got %d", c.Input.SoftDropHoldMs)

	switch c.Difficulty.Progression.Type {
	case "lines", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be lines, time or none, got %q", c.Difficulty.Progression.Type))
	}
	check(c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1,
		"difficulty.initial_level must be within [0, 1], got %v", c.Difficulty.InitialLevel)
	check(c.Difficulty.Scaling.MinFallMs >= 0, "difficulty.scaling.min_fall_ms must not be negative, got %d", c.Difficulty.Scaling.MinFallMs)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid tetris config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
