package boxcoin

import (
	"github.com/vovakirdan/boxcoin/internal/config"
	"github.com/vovakirdan/boxcoin/internal/core"
)

// EffectKind distinguishes score pop-ups from level banners.
type EffectKind int

const (
	EffectPopup  EffectKind = iota // "+10" at a collected coin
	EffectBanner                   // "LEVEL n" in the middle of the screen
)

// Effect is floating text that rises and fades out over a fixed number
// of frames.
type Effect struct {
	Kind      EffectKind
	X, Y      float64
	Text      string
	Color     core.Color
	Remaining int
	Lifetime  int
	rise      float64
}

func newEffect(kind EffectKind, x, y float64, text string, color core.Color, cfg config.EffectConfig) *Effect {
	return &Effect{
		Kind:      kind,
		X:         x,
		Y:         y,
		Text:      text,
		Color:     color,
		Remaining: cfg.LifetimeFrames,
		Lifetime:  cfg.LifetimeFrames,
		rise:      cfg.RisePerFrame,
	}
}

func newPopup(x, y float64, text string, color core.Color, cfg config.EffectConfig) *Effect {
	return newEffect(EffectPopup, x, y, text, color, cfg)
}

func newBanner(x, y float64, text string, cfg config.EffectConfig) *Effect {
	return newEffect(EffectBanner, x, y, text, core.ColorBrightWhite, cfg)
}

// Alpha returns the current opacity in [0, 1].
func (e *Effect) Alpha() float64 {
	if e.Lifetime <= 0 || e.Remaining <= 0 {
		return 0
	}
	return float64(e.Remaining) / float64(e.Lifetime)
}

// Update advances the effect by one frame. Effects age per frame, not
// per second.
func (e *Effect) Update() {
	e.Y -= e.rise
	e.Remaining--
}

// Expired reports whether the effect has fully faded.
func (e *Effect) Expired() bool {
	return e.Alpha() <= 0
}

func (g *Game) addEffect(e *Effect) {
	g.effects = append(g.effects, e)
}

// updateEffects ages every effect, then prunes the faded ones so nothing
// fully transparent is ever drawn.
func (g *Game) updateEffects() {
	for _, e := range g.effects {
		e.Update()
	}

	kept := g.effects[:0]
	for _, e := range g.effects {
		if !e.Expired() {
			kept = append(kept, e)
		}
	}
	clear(g.effects[len(kept):])
	g.effects = kept
}
