package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/boxcoin/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColored(0, 0, "Score: 10", core.ColorBrightWhite)
	s.DrawTextColored(0, 1, "coin", core.ColorBrightYellow)
	s.SetColored(5, 2, '▀', core.ColorBrown)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("expected 3 rows, got %d newlines", got+1)
	}
	for _, want := range []string{"Score: 10", "coin", "▀"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorSilver; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
