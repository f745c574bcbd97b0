package boxcoin

import (
	"time"

	"github.com/vovakirdan/boxcoin/internal/config"
	"github.com/vovakirdan/boxcoin/internal/core"
)

// Player is the box the user steers.
type Player struct {
	X, Y   float64
	W, H   float64
	DX, DY float64

	Jumping   bool          // a jump is in progress
	Holding   bool          // jump key still held, ramp active
	Grounded  bool          // landed on a platform this frame
	JumpStart time.Duration // simulated time the current jump began

	speed           float64
	baseJumpPower   float64
	maxJumpPower    float64
	maxJumpDuration time.Duration
}

// NewPlayer creates a player at rest at (x, y).
func NewPlayer(cfg config.PlayerConfig, x, y float64) *Player {
	return &Player{
		X:               x,
		Y:               y,
		W:               cfg.Width,
		H:               cfg.Height,
		speed:           cfg.Speed,
		baseJumpPower:   cfg.BaseJumpPower,
		maxJumpPower:    cfg.MaxJumpPower,
		maxJumpDuration: cfg.MaxJumpDuration(),
	}
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Feet returns the y coordinate of the player's bottom edge.
func (p *Player) Feet() float64 {
	return p.Y + p.H
}

// Update integrates gravity and velocity over dt seconds and keeps the
// player inside [0, worldW-W] horizontally.
func (p *Player) Update(dt, gravity, worldW float64) {
	p.DY += gravity * dt
	p.Y += p.DY * dt
	p.X += p.DX * dt

	if p.X+p.W > worldW {
		p.X = worldW - p.W
	} else if p.X < 0 {
		p.X = 0
	}
}

func (p *Player) MoveLeft()  { p.DX = -p.speed }
func (p *Player) MoveRight() { p.DX = p.speed }
func (p *Player) Stop()      { p.DX = 0 }

// Jump starts a jump unless one is already running or the player is
// still travelling upward.
func (p *Player) Jump(now time.Duration) {
	if p.Jumping || p.DY < 0 {
		return
	}
	p.DY = -p.baseJumpPower
	p.Jumping = true
	p.Holding = true
	p.Grounded = false
	p.JumpStart = now
}

// ContinueJump applies the extra upward force of a held jump. The ramp
// stops once the hold exceeds the maximum jump duration.
//
// The force per frame is (max-base)/(maxDuration_ms/10)*dt, which only
// approximates reaching maxJumpPower; the jump feel depends on it.
func (p *Player) ContinueJump(dt float64, now time.Duration) {
	if !p.Holding || !p.Jumping {
		return
	}
	if now-p.JumpStart >= p.maxJumpDuration {
		p.Holding = false
		return
	}

	steps := float64(p.maxJumpDuration.Milliseconds()) / 10
	p.DY -= (p.maxJumpPower - p.baseJumpPower) / steps * dt
}

// EndJump stops the ramp when the jump key is released.
func (p *Player) EndJump() {
	p.Holding = false
	p.Jumping = false
}

// Land puts the player on a platform moving down at speed.
func (p *Player) Land(speed float64) {
	p.Jumping = false
	p.Grounded = true
	p.DY = speed
}
