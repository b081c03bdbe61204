package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			FallNormalMs:     1000,
			FallSoftMs:       50,
			LockDelayMs:      500,
			ClearAnimationMs: 0,
		},
		Scoring: TetrisScoring{
			StartLevel: 1,
			TSpin:      true,
		},
		Display: TetrisDisplay{
			Ghost:   true,
			Preview: true,
		},
		Input: TetrisInput{
			SoftDropHoldMs: 500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
				MinFallMs:       50,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_classic":
		return defaultTetrisYAML
	default:
		return nil
	}
}
