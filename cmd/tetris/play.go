package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing. The variant defaults to "tetris"; "tetris_classic"
turns off the ghost piece and T-spin bonuses.

Controls:
  Left/H, Right/L  - Shift
  Up/X, Z          - Rotate clockwise, counter-clockwise
  Down/J           - Soft drop (while held)
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (paused or after game over)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Longer lock delay, gravity ramps up twice as slowly
  normal - Gravity ramps up with cleared lines
  hard   - Starts at level 5 with faster gravity and a short lock delay
  fixed  - No progression, gravity stays at the configured fall interval

Examples:
  tetris play
  tetris play tetris_classic
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml --log-file tetris.log`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// The TUI owns the terminal; without a log file logs are dropped.
		if flagLogFile == "" {
			tetris.SetLogger(log.New(io.Discard))
		}
		return checkConfig()
	},
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'tetris list' to see available variants", gameID)
	}

	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed

	// Set config path and difficulty before the game is created
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// checkConfig fails on a bad --difficulty or an unreadable or invalid config
// file before the TUI takes over the terminal.
func checkConfig() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if _, err := config.LoadTetris(flagConfig); err != nil {
		return err
	}
	return nil
}
