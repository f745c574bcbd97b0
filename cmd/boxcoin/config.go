package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxcoin/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a run would use, after the config search
and the difficulty preset are applied. The output can be saved to
~/.boxcoin/configs/boxcoin.yaml and edited.

Examples:
  boxcoin config
  boxcoin config --difficulty hard
  boxcoin config --format toml > boxcoin.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset to apply")
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", flagFormat)
		os.Exit(1)
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
