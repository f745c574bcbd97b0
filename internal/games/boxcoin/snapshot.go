package boxcoin

import (
	"time"

	"github.com/vovakirdan/boxcoin/internal/config"
	"github.com/vovakirdan/boxcoin/internal/core"
)

// PlatformView is a read-only copy of a platform.
type PlatformView struct {
	Rect  core.Rect
	Speed float64
}

// CoinView is a read-only copy of a coin.
type CoinView struct {
	Rect  core.Rect
	Speed float64
	Value int
	Color core.Color
}

// EffectView is a read-only copy of a floating text effect.
type EffectView struct {
	Kind  EffectKind
	X, Y  float64
	Text  string
	Color core.Color
	Alpha float64
}

// Snapshot captures everything a renderer needs for one frame.
// Frontends draw from it so they never touch live entities.
type Snapshot struct {
	Phase          core.Phase
	Paused         bool
	Debug          bool
	Score          int
	CoinsCollected int
	Level          int
	Elapsed        time.Duration
	FPS            float64

	World     core.Rect
	Player    core.Rect
	Platforms []PlatformView
	Coins     []CoinView
	Clouds    []core.Rect
	Effects   []EffectView
	Tiers     []config.CoinTier
}

// Snapshot returns a copy of the current frame.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:          g.phase,
		Paused:         g.paused,
		Debug:          g.debug,
		Score:          g.score,
		CoinsCollected: g.coinCount,
		Level:          g.level,
		Elapsed:        g.elapsed,
		FPS:            g.FPS(),
		World:          core.NewRect(0, 0, g.cfg.World.Width, g.cfg.World.Height),
		Tiers:          g.cfg.Coins.Tiers,
	}
	if g.player != nil {
		s.Player = g.player.Rect()
	}

	s.Platforms = make([]PlatformView, 0, len(g.platforms))
	for _, p := range g.platforms {
		s.Platforms = append(s.Platforms, PlatformView{Rect: p.Rect(), Speed: p.Speed})
	}
	s.Coins = make([]CoinView, 0, len(g.coins))
	for _, c := range g.coins {
		s.Coins = append(s.Coins, CoinView{Rect: c.Rect(), Speed: c.Speed, Value: c.Value, Color: c.Color})
	}
	s.Clouds = make([]core.Rect, 0, len(g.clouds))
	for _, c := range g.clouds {
		s.Clouds = append(s.Clouds, c.Rect())
	}
	s.Effects = make([]EffectView, 0, len(g.effects))
	for _, e := range g.effects {
		s.Effects = append(s.Effects, EffectView{
			Kind:  e.Kind,
			X:     e.X,
			Y:     e.Y,
			Text:  e.Text,
			Color: e.Color,
			Alpha: e.Alpha(),
		})
	}
	return s
}

// SurvivalSeconds returns the whole seconds survived, as shown on the
// game-over screen.
func (s Snapshot) SurvivalSeconds() int {
	return int(s.Elapsed / time.Second)
}
