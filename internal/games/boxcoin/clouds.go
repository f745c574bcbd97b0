package boxcoin

import (
	"math/rand"

	"github.com/vovakirdan/boxcoin/internal/core"
)

// Cloud is background decoration drifting down and wrapping to the top.
type Cloud struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Rect returns the cloud's bounding box.
func (c *Cloud) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// Update drifts the cloud; past the bottom edge it reappears above the
// top at a new random x.
func (c *Cloud) Update(dt, worldW, worldH float64, rng *rand.Rand) {
	c.Y += c.Speed * dt
	if c.Y > worldH {
		c.Y = -c.H
		c.X = rng.Float64() * (worldW - c.W)
	}
}

func (g *Game) initClouds() {
	cc := g.cfg.Clouds
	g.clouds = make([]*Cloud, 0, cc.Count)
	for i := 0; i < cc.Count; i++ {
		g.clouds = append(g.clouds, &Cloud{
			X:     g.rng.Float64() * (g.cfg.World.Width - cc.Width),
			Y:     g.rng.Float64() * g.cfg.World.Height,
			W:     cc.Width,
			H:     cc.Height,
			Speed: cc.Speed,
		})
	}
}

func (g *Game) updateClouds(dt float64) {
	for _, c := range g.clouds {
		c.Update(dt, g.cfg.World.Width, g.cfg.World.Height, g.rng)
	}
}
