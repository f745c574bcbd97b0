package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxcoin/internal/games/boxcoin"
	"github.com/vovakirdan/boxcoin/internal/platform/tui"
	"github.com/vovakirdan/boxcoin/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHold       time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run right away.

Controls:
  Left/Right, A/D  - Move
  Space/W/Up       - Jump (hold to jump higher)
  S/Down           - Stop
  I                - Debug overlay
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Terminals do not report key releases, so a key counts as held until it
stops auto-repeating for --hold.

Difficulty options:
  easy   - Slower, wider platforms
  normal - Default settings
  hard   - Faster, narrower platforms
  fixed  - No level progression

Examples:
  boxcoin play
  boxcoin play --difficulty easy
  boxcoin play --config ./my-boxcoin.toml
  boxcoin play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldTimeout, "How long a key counts as held after its last repeat")
}

func runPlay(_ *cobra.Command, _ []string) {
	preset := applyGameFlags(flagConfig, flagDifficulty)

	// Create game instance
	game, err := registry.Create(boxcoin.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	// Run the game
	_, runErr := tui.Run(game, store, runtimeConfig(), tui.GameOptions{
		Difficulty:  preset,
		HoldTimeout: flagHold,
		Standalone:  true,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
