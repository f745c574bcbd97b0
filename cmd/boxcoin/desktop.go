package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxcoin/internal/platform/desktop"
)

var flagScale float64

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a desktop window",
	Long: `Open a window that draws the 400x600 playfield one unit per pixel.

Window scale, fullscreen and the last difficulty are remembered between
runs. Flags given on the command line override them.

Controls:
  Left/Right, A/D  - Move
  Space/W/Up       - Jump (hold to jump higher)
  I                - Debug overlay
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit

Examples:
  boxcoin desktop
  boxcoin desktop --scale 1.5
  boxcoin desktop --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runDesktop,
}

func init() {
	desktopCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	desktopCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	desktopCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale (0 = last used)")
}

func runDesktop(_ *cobra.Command, _ []string) {
	preset := applyGameFlags(flagConfig, flagDifficulty)

	settings, err := desktop.OpenSettings("boxcoin")
	if err != nil {
		logger.Warn("settings will not be saved", "error", err)
	}

	store := openStore()

	runErr := desktop.Run(desktop.Options{
		Runtime:    runtimeConfig(),
		Difficulty: preset,
		Scale:      flagScale,
		Store:      store,
		Settings:   settings,
		Logger:     logger.WithPrefix("boxcoin-desktop"),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
