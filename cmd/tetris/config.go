package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The file is resolved in this order: --config, ~/.tetris/configs/tetris.yaml,
./configs/tetris.yaml, then the built-in defaults. A --difficulty preset is
applied on top.

Examples:
  tetris config > ~/.tetris/configs/tetris.yaml
  tetris config --defaults
  tetris config --config ./my-tetris.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the commented built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML("tetris"))
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		config.ApplyTetrisPreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	return nil
}
