// boxcoin is an endless platformer: jump between falling platforms and
// collect coins, in the terminal, over SSH or in a desktop window.
//
// Usage:
//
//	boxcoin play             - Play in the terminal
//	boxcoin menu             - Main menu with difficulty and high scores
//	boxcoin scores           - Show the best runs
//	boxcoin serve            - Start SSH server for remote play
//	boxcoin desktop          - Play in a desktop window
//	boxcoin config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.boxcoin/scores.db)
//	--verbose       - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/boxcoin/internal/config"
	"github.com/vovakirdan/boxcoin/internal/core"
	"github.com/vovakirdan/boxcoin/internal/games/boxcoin"
	"github.com/vovakirdan/boxcoin/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "boxcoin",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boxcoin",
	Short: "BoxCoin - jump between falling platforms and catch coins",
	Long: `BoxCoin is an endless platformer. Platforms fall from the sky and
coins of different values drop between them. Stay on screen as long
as you can; the platforms speed up and shrink as time goes on.

Available commands:
  play     - Play in the terminal
  menu     - Main menu with difficulty and high scores
  scores   - View the best runs
  serve    - Start SSH server for remote play
  desktop  - Play in a desktop window
  config   - Print the effective configuration

Examples:
  boxcoin play
  boxcoin play --difficulty hard
  boxcoin menu
  boxcoin serve --ssh :2222
  boxcoin desktop --scale 1.5`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.boxcoin/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the runs database. A failure is only a warning: the game
// still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	logger.Debug("opened scores database", "path", flagDBPath)
	return store
}

// applyGameFlags checks --config and --difficulty and hands them to the
// game package. An explicit config file that fails to load is fatal.
func applyGameFlags(configPath, difficulty string) config.DifficultyPreset {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := boxcoin.SetConfigPath(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := boxcoin.SetDifficultyPreset(string(preset)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return preset
}
