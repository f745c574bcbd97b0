package boxcoin

import (
	"fmt"

	"github.com/vovakirdan/boxcoin/internal/core"
)

// TextLine is one line of a text screen.
type TextLine struct {
	Text  string
	Color core.Color
}

// StartScreenLines returns the start screen: controls and the coin legend.
func StartScreenLines(s Snapshot) []TextLine {
	lines := []TextLine{
		{"BoxCoin!", core.ColorBrightYellow},
		{"", core.ColorDefault},
		{"Controls:", core.ColorBrightWhite},
		{"Arrow keys or A/D: Move left/right", core.ColorDefault},
		{"Space or W: Jump (hold to jump higher)", core.ColorDefault},
		{"P: Pause  I: Debug  Q: Quit", core.ColorDefault},
		{"", core.ColorDefault},
		{"Score Points:", core.ColorBrightWhite},
	}
	for _, t := range s.Tiers {
		color, _ := core.ParseColor(t.Color)
		lines = append(lines, TextLine{fmt.Sprintf("+%d: Collect %s coins", t.Value, t.Color), color})
	}
	lines = append(lines,
		TextLine{"", core.ColorDefault},
		TextLine{"Press any key to start", core.ColorBrightGreen},
	)
	return lines
}

// GameOverLines returns the results shown when a run ends.
func GameOverLines(s Snapshot) []TextLine {
	return []TextLine{
		{"Game Over", core.ColorBrightRed},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite},
		{fmt.Sprintf("Coins Collected: %d", s.CoinsCollected), core.ColorBrightYellow},
		{fmt.Sprintf("Survival Time: %d seconds", s.SurvivalSeconds()), core.ColorDefault},
		{fmt.Sprintf("Level Reached: %d", s.Level), core.ColorDefault},
		{"", core.ColorDefault},
		{"R to restart  Q to quit", core.ColorGray},
	}
}

// DebugLines returns the debug overlay: frame rate and the speed of every
// platform and coin.
func DebugLines(s Snapshot) []string {
	lines := []string{
		"Debug Info:",
		fmt.Sprintf("FPS: %.2f", s.FPS),
		"Object Speeds:",
	}
	for i, p := range s.Platforms {
		lines = append(lines, fmt.Sprintf("Platform %d: %.2f u/s", i+1, p.Speed))
	}
	for i, c := range s.Coins {
		lines = append(lines, fmt.Sprintf("Coin %d: %.2f u/s", i+1, c.Speed))
	}
	return lines
}

// HUDText returns the score line drawn above the playfield.
func HUDText(s Snapshot) string {
	return fmt.Sprintf("Score: %d  Coins: %d  Level: %d", s.Score, s.CoinsCollected, s.Level)
}
