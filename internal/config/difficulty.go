package config

import (
	"math"
	"time"
)

// DifficultyManager calculates the gravity period from lines cleared or elapsed ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on lines/ticks.
func (d *DifficultyManager) Level(lines int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "lines", "":
		progress = float64(lines) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// FallInterval returns the gravity period for the current difficulty.
// Speed grows from base to base * (1 + speedMultiplier), so the period shrinks
// by the same factor, never below min_fall_ms.
func (d *DifficultyManager) FallInterval(base time.Duration, lines int, ticks int) time.Duration {
	level := d.Level(lines, ticks)
	interval := time.Duration(float64(base) / (1.0 + level*d.cfg.Scaling.SpeedMultiplier))

	floor := time.Duration(d.cfg.Scaling.MinFallMs) * time.Millisecond
	if interval < floor {
		interval = floor
	}
	return interval
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
