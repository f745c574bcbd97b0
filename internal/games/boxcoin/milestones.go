package boxcoin

import "fmt"

// applyMilestones fires every milestone elapsed time has crossed, one
// level-up each, in ascending order.
func (g *Game) applyMilestones() {
	for range g.difficulty.Due(g.elapsed, g.milestonesReached) {
		g.milestonesReached++
		g.level++

		g.addEffect(newBanner(
			g.cfg.World.Width/2-100,
			g.cfg.World.Height/2,
			fmt.Sprintf("LEVEL %d", g.milestonesReached),
			g.cfg.Effects,
		))

		g.platformSpeed = g.difficulty.Speed(g.platformSpeed)
		g.platformWidth = g.difficulty.Width(g.platformWidth)
		for _, p := range g.platforms {
			p.Speed = g.platformSpeed
			p.W = g.platformWidth
		}
	}
}
