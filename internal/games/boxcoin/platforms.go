package boxcoin

import (
	"math"

	"github.com/vovakirdan/boxcoin/internal/core"
)

// Platform is a ledge scrolling down the screen.
type Platform struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Rect returns the platform's bounding box.
func (p *Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Update moves the platform down over dt seconds.
func (p *Platform) Update(dt float64) {
	p.Y += p.Speed * dt
}

// catches reports whether a falling player lands on p this frame. The
// vertical band grows with both speeds so fast frames cannot tunnel.
func (p *Platform) catches(pl *Player, dt float64) bool {
	if pl.DY <= 0 {
		return false
	}
	if pl.X+pl.W <= p.X || pl.X >= p.X+p.W {
		return false
	}
	feet := pl.Feet()
	return feet >= p.Y && feet <= p.Y+p.Speed*dt+pl.DY*dt
}

// platformCount returns how many platforms cover the world at gap spacing.
func platformCount(worldH, gap float64) int {
	return int(math.Ceil(worldH/gap)) + 1
}

// initPlatforms lays out the starting platforms bottom-up, one gap apart.
func (g *Game) initPlatforms() {
	n := platformCount(g.cfg.World.Height, g.cfg.Platforms.Gap)
	g.platforms = make([]*Platform, 0, n)
	for i := 0; i < n; i++ {
		y := g.cfg.World.Height - float64(i)*g.cfg.Platforms.Gap
		g.platforms = append(g.platforms, g.newPlatform(y))
	}
}

func (g *Game) newPlatform(y float64) *Platform {
	return &Platform{
		X:     g.rng.Float64() * (g.cfg.World.Width - g.platformWidth),
		Y:     y,
		W:     g.platformWidth,
		H:     g.cfg.Platforms.Height,
		Speed: g.platformSpeed,
	}
}

// updatePlatforms moves every platform, lands the player on the first
// one that catches it and recycles platforms that left the screen.
func (g *Game) updatePlatforms(dt float64) {
	g.player.Grounded = false

	recycled := 0
	for _, p := range g.platforms {
		p.Update(dt)

		if p.catches(g.player, dt) {
			g.player.Y = p.Y - g.player.H
			g.player.Land(p.Speed)
		}
	}

	kept := g.platforms[:0]
	for _, p := range g.platforms {
		if p.Y > g.cfg.World.Height {
			recycled++
			continue
		}
		kept = append(kept, p)
	}

	fresh := make([]*Platform, 0, recycled+len(kept))
	for i := 0; i < recycled; i++ {
		fresh = append(fresh, g.newPlatform(-g.cfg.Platforms.Height))
	}
	g.platforms = append(fresh, kept...)
}
