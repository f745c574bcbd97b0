package boxcoin

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/boxcoin/internal/config"
	"github.com/vovakirdan/boxcoin/internal/core"
)

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultConfig().Player, 100, 100)
}

func TestPlayerGravity(t *testing.T) {
	for _, dt := range []float64{0, 0.001, 0.016, 0.033, 0.1} {
		for _, dy := range []float64{-450, 0, 37.5, 300} {
			p := newTestPlayer()
			p.DY = dy
			p.Update(dt, 800, 400)

			if expected := dy + 800*dt; p.DY != expected {
				t.Errorf("dt=%v dy=%v: dy after update = %v, expected %v", dt, dy, p.DY, expected)
			}
		}
	}
}

func TestPlayerHorizontalClamp(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		dx   float64
		dt   float64
	}{
		{"left edge", 2, -300, 0.1},
		{"right edge", 340, 300, 0.1},
		{"far outside left", -500, 0, 0.016},
		{"far outside right", 1000, 0, 0.016},
		{"inside", 150, 300, 0.016},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer()
			p.X, p.DX = tc.x, tc.dx
			p.Update(tc.dt, 800, 400)

			if p.X < 0 || p.X > 400-p.W {
				t.Errorf("x = %v, expected within [0, %v]", p.X, 400-p.W)
			}
		})
	}
}

func TestPlayerJumpRamp(t *testing.T) {
	p := newTestPlayer()
	p.Jump(0)

	if p.DY != -450 || !p.Jumping || !p.Holding {
		t.Fatalf("jump: dy=%v jumping=%v holding=%v", p.DY, p.Jumping, p.Holding)
	}

	// A second press mid-jump is ignored
	p.Jump(10 * time.Millisecond)
	if p.DY != -450 {
		t.Errorf("second jump changed dy to %v", p.DY)
	}

	p.ContinueJump(0.1, 100*time.Millisecond)
	expected := -450 - (750.0-450.0)/130*0.1
	if math.Abs(p.DY-expected) > 1e-9 {
		t.Errorf("dy after ramp = %v, expected %v", p.DY, expected)
	}

	// Past the maximum hold the ramp stops
	dy := p.DY
	p.ContinueJump(0.1, 1300*time.Millisecond)
	if p.Holding {
		t.Error("hold should end after the maximum duration")
	}
	if p.DY != dy {
		t.Errorf("dy changed after the hold ended: %v -> %v", dy, p.DY)
	}
	p.ContinueJump(0.1, 1400*time.Millisecond)
	if p.DY != dy {
		t.Error("ramp should not resume")
	}
}

func TestPlayerJumpRequiresFalling(t *testing.T) {
	p := newTestPlayer()
	p.DY = -10
	p.Jump(0)
	if p.Jumping {
		t.Error("should not jump while moving up")
	}
}

func TestPlayerEndJumpAndLand(t *testing.T) {
	p := newTestPlayer()
	p.Jump(0)
	p.EndJump()
	if p.Jumping || p.Holding {
		t.Error("EndJump should clear jumping and holding")
	}

	dy := p.DY
	p.ContinueJump(0.1, 50*time.Millisecond)
	if p.DY != dy {
		t.Error("released jump should not ramp")
	}

	p.Jumping = true
	p.Land(120)
	if p.Jumping || !p.Grounded || p.DY != 120 {
		t.Errorf("land: jumping=%v grounded=%v dy=%v", p.Jumping, p.Grounded, p.DY)
	}
}

func TestCoinTierDistribution(t *testing.T) {
	tiers := config.DefaultConfig().Coins.Tiers
	rng := rand.New(rand.NewSource(1))

	const samples = 10000
	counts := make(map[int]int)
	for i := 0; i < samples; i++ {
		counts[drawTier(rng, tiers).Value]++
	}

	for _, tier := range tiers {
		got := float64(counts[tier.Value]) / samples
		if math.Abs(got-tier.Weight) > 0.02 {
			t.Errorf("value %d: frequency %.3f, expected %.2f", tier.Value, got, tier.Weight)
		}
	}
	if len(counts) != len(tiers) {
		t.Errorf("unexpected values drawn: %v", counts)
	}
}

func TestCoinTierColors(t *testing.T) {
	expected := map[int]string{10: "gold", 20: "silver", 50: "blue", 100: "green"}
	for _, tier := range config.DefaultConfig().Coins.Tiers {
		if expected[tier.Value] != tier.Color {
			t.Errorf("value %d has color %q, expected %q", tier.Value, tier.Color, expected[tier.Value])
		}
	}
}

func TestCollectionOverlap(t *testing.T) {
	player := core.NewRect(100, 100, 57, 50)

	tests := []struct {
		name     string
		coin     core.Rect
		expected bool
	}{
		{"inside", core.NewRect(110, 110, 20, 20), true},
		{"overlap corner", core.NewRect(150, 140, 20, 20), true},
		{"touching right edge", core.NewRect(157, 110, 20, 20), false},
		{"touching top edge", core.NewRect(110, 80, 20, 20), false},
		{"apart", core.NewRect(300, 300, 20, 20), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.coin); got != tc.expected {
				t.Errorf("player.Intersects(coin) = %v, expected %v", got, tc.expected)
			}
			if got := tc.coin.Intersects(player); got != tc.expected {
				t.Errorf("coin.Intersects(player) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestEffectLifetime(t *testing.T) {
	e := newPopup(50, 50, "+10", core.ColorBrightYellow, config.DefaultConfig().Effects)

	prev := e.Alpha()
	if prev != 1 {
		t.Fatalf("fresh effect alpha = %v, expected 1", prev)
	}

	for i := 1; i < 50; i++ {
		e.Update()
		if e.Expired() {
			t.Fatalf("effect expired early after %d frames", i)
		}
		if e.Alpha() >= prev {
			t.Fatalf("alpha did not decrease at frame %d", i)
		}
		prev = e.Alpha()
	}

	e.Update()
	if !e.Expired() {
		t.Error("effect should expire after 50 frames")
	}
	if e.Y != 0 {
		t.Errorf("effect should rise one unit per frame, y = %v", e.Y)
	}
}

func TestCloudWraps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := &Cloud{X: 10, Y: 599, W: 128, H: 72, Speed: 20}

	c.Update(0.1, 400, 600, rng)
	if c.Y != -72 {
		t.Errorf("cloud should wrap to -height, y = %v", c.Y)
	}
	if c.X < 0 || c.X > 400-128 {
		t.Errorf("wrapped cloud x = %v outside the world", c.X)
	}
}

func TestSchedulerFiresPerInterval(t *testing.T) {
	s := NewScheduler()
	s.Every(EventPassiveScore, 500*time.Millisecond, 500*time.Millisecond)

	if got := s.Due(499 * time.Millisecond); len(got) != 0 {
		t.Errorf("fired early: %v", got)
	}
	if got := s.Due(500 * time.Millisecond); len(got) != 1 {
		t.Errorf("expected one firing at 500ms, got %v", got)
	}
	got := s.Due(1600 * time.Millisecond)
	if len(got) != 2 || got[0].At != time.Second || got[1].At != 1500*time.Millisecond {
		t.Errorf("expected firings at 1s and 1.5s, got %v", got)
	}
}

func TestSchedulerOrdersFirings(t *testing.T) {
	s := NewScheduler()
	s.Every(EventSpawnCoin, 0, 3*time.Second)
	s.Every(EventPassiveScore, 500*time.Millisecond, 500*time.Millisecond)

	got := s.Due(3 * time.Second)
	if len(got) != 8 {
		t.Fatalf("expected 8 firings, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].At < got[i-1].At {
			t.Fatalf("firings out of order: %v", got)
		}
	}
	if got[0].Kind != EventSpawnCoin {
		t.Errorf("first firing = %v, expected spawn-coin", got[0].Kind)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	s.Every(EventSpawnCoin, 0, time.Second)
	s.Every(EventPassiveScore, 0, time.Second)

	s.Cancel(EventSpawnCoin)
	for _, f := range s.Due(10 * time.Second) {
		if f.Kind == EventSpawnCoin {
			t.Fatal("cancelled timer fired")
		}
	}

	s.CancelAll()
	if s.Pending() != 0 {
		t.Errorf("pending = %d after CancelAll", s.Pending())
	}
	if got := s.Due(time.Hour); len(got) != 0 {
		t.Errorf("fired after CancelAll: %v", got)
	}
}
