package boxcoin

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/boxcoin/internal/config"
	"github.com/vovakirdan/boxcoin/internal/core"
)

// Coin is a collectible falling from the top of the screen.
type Coin struct {
	X, Y      float64
	W, H      float64
	Speed     float64
	Value     int
	ColorName string
	Color     core.Color
}

// Rect returns the coin's bounding box.
func (c *Coin) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// Update moves the coin down over dt seconds.
func (c *Coin) Update(dt float64) {
	c.Y += c.Speed * dt
}

// drawTier picks a coin tier with probability proportional to its weight.
func drawTier(rng *rand.Rand, tiers []config.CoinTier) config.CoinTier {
	var total float64
	for _, t := range tiers {
		total += t.Weight
	}

	r := rng.Float64() * total
	var acc float64
	for _, t := range tiers {
		acc += t.Weight
		if r < acc {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// spawnCoin drops a new coin just above the top edge.
func (g *Game) spawnCoin() {
	cc := g.cfg.Coins
	tier := drawTier(g.rng, cc.Tiers)
	color, _ := core.ParseColor(tier.Color)

	g.coins = append(g.coins, &Coin{
		X:         g.rng.Float64() * (g.cfg.World.Width - cc.Width),
		Y:         -cc.Height,
		W:         cc.Width,
		H:         cc.Height,
		Speed:     cc.MinSpeed + g.rng.Float64()*(cc.MaxSpeed-cc.MinSpeed),
		Value:     tier.Value,
		ColorName: tier.Color,
		Color:     color,
	})
}

// updateCoins moves coins, collects the ones touching the player and
// drops the ones that fell off the bottom.
func (g *Game) updateCoins(dt float64) {
	player := g.player.Rect()

	kept := g.coins[:0]
	for _, c := range g.coins {
		c.Update(dt)

		if player.Intersects(c.Rect()) {
			g.coinCount++
			g.score += c.Value
			g.addEffect(newPopup(c.X, c.Y, fmt.Sprintf("+%d", c.Value), c.Color, g.cfg.Effects))
			continue
		}
		if c.Y > g.cfg.World.Height {
			continue
		}
		kept = append(kept, c)
	}
	clear(g.coins[len(kept):])
	g.coins = kept
}
