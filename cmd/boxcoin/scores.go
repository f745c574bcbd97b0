package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxcoin/internal/games/boxcoin"
	"github.com/vovakirdan/boxcoin/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top runs with coins, level and survival time.

Examples:
  boxcoin scores
  boxcoin scores --limit 25
  boxcoin scores --recent`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var runs []storage.Run
	title := "High Scores"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(boxcoin.ID, flagLimit)
	} else {
		runs, err = store.TopRuns(boxcoin.ID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - BoxCoin\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'boxcoin play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-8s  %-10s  %s\n", "Rank", "Score", "Coins", "Level", "Time", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-8s  %-10s  %s\n", "----", "-----", "-----", "-----", "----", "----------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-8s  %-10s  %s\n",
			i+1, r.Score, r.Coins, r.Level, r.Survival.Round(time.Second), r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(boxcoin.ID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Coins: %d  Best level: %d  Longest: %s\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalCoins, stats.BestLevel, stats.LongestSurvival.Round(time.Second))
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
