// tetris is a terminal Tetris built on a guideline-style rules engine.
//
// Usage:
//
//	tetris list              - List available rule variants
//	tetris play [variant]    - Play (default: tetris)
//	tetris serve             - Start SSH server for remote play
//	tetris config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write engine logs to a file
//	--log-level <level>  - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

// appLogger is the logger built from the global flags.
var appLogger *log.Logger

// logCloser closes the log file opened for the current command, if any.
var logCloser io.Closer

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal Tetris with the 7-bag randomizer, in-place rotation (no wall kicks),
lock delay, T-spin detection and guideline scoring.

Available commands:
  list     - Show the rule variants
  play     - Play a game
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  tetris play
  tetris play tetris_classic
  tetris play --difficulty hard --seed 42
  tetris serve --ssh :2222
  tetris config --difficulty easy`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := newLogger(os.Stderr)
		if err != nil {
			return err
		}
		appLogger = logger
		tetris.SetLogger(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set and
// to fallback otherwise.
func newLogger(fallback io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logCloser = f
		w = f
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "tetris",
	}), nil
}
