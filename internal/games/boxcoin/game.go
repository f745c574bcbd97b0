// Package boxcoin implements BoxCoin, an endless platformer.
// The player bounces between platforms scrolling down the screen, collects
// falling coins and loses once it drops below the bottom edge.
//
// The simulation runs in world units on a fixed playfield (400x600 by
// default) and in simulated time: every duration below is the sum of the
// frame deltas passed to Step, so pausing freezes timers and tests replay
// exactly.
package boxcoin

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/boxcoin/internal/config"
	"github.com/vovakirdan/boxcoin/internal/core"
	"github.com/vovakirdan/boxcoin/internal/registry"
)

// ID is the registry and score storage identifier.
const ID = "boxcoin"

var (
	configMu sync.Mutex
	// cliConfig is the config resolved from --config, nil until set
	cliConfig *config.BoxCoinConfig
	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath loads the config at path once for every game created by
// New. An empty path restores the default search order.
func SetConfigPath(path string) error {
	configMu.Lock()
	defer configMu.Unlock()

	if path == "" {
		cliConfig = nil
		return nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cliConfig = &cfg
	return nil
}

// SetDifficultyPreset sets the difficulty preset used by games without
// their own.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	configMu.Lock()
	difficultyPreset = p
	configMu.Unlock()
	return nil
}

// loadConfig returns the CLI config or the first config found on disk.
func loadConfig() (config.BoxCoinConfig, config.DifficultyPreset) {
	configMu.Lock()
	defer configMu.Unlock()

	if cliConfig != nil {
		return *cliConfig, difficultyPreset
	}
	cfg, _ := config.Load("") // the implicit search never fails
	return cfg, difficultyPreset
}

// Game implements the BoxCoin game logic.
type Game struct {
	// Configuration
	runtime    core.RuntimeConfig
	base       config.BoxCoinConfig
	fixedCfg   bool                    // base was injected, do not reload on Reset
	loaded     bool                    // base was read from disk by an earlier Reset
	cliPreset  config.DifficultyPreset // preset captured with base
	preset     config.DifficultyPreset // per-instance preset, overrides the CLI one
	cfg        config.BoxCoinConfig    // base with the preset applied
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	scheduler  *Scheduler

	// Entities
	player    *Player
	platforms []*Platform
	coins     []*Coin
	clouds    []*Cloud
	effects   []*Effect

	// Game state
	phase             core.Phase
	paused            bool
	debug             bool
	score             int
	coinCount         int
	level             int
	milestonesReached int
	platformSpeed     float64
	platformWidth     float64
	elapsed           time.Duration // simulated running time
	lastDT            float64       // seconds, for the FPS readout
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to cfg.
func NewWithConfig(cfg config.BoxCoinConfig) *Game {
	return &Game{base: cfg, fixedCfg: true}
}

// SetPreset selects the difficulty preset for this instance. It takes
// effect on the next Reset.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.preset = p
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "BoxCoin"
}

// Reset initializes or restarts the game. The game waits on the start
// screen until the first key press.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg && !g.loaded {
		g.base, g.cliPreset = loadConfig()
		g.loaded = true
	}
	cfg := g.base
	preset := g.preset
	if preset == "" && !g.fixedCfg {
		preset = g.cliPreset
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.scheduler = NewScheduler()

	g.phase = core.PhaseStart
	g.paused = false
	g.debug = false
	g.score = 0
	g.coinCount = 0
	g.level = 1
	g.milestonesReached = 0
	g.platformSpeed = g.cfg.Platforms.Speed
	g.platformWidth = g.cfg.Platforms.Width
	g.elapsed = 0
	g.lastDT = 0

	g.coins = nil
	g.effects = nil
	g.initClouds()
	g.initPlatforms()

	// Start on the highest platform
	top := g.platforms[len(g.platforms)-1]
	g.player = NewPlayer(g.cfg.Player, g.cfg.World.Width/2-g.cfg.Player.Width/2, 0)
	g.player.Y = top.Y - g.player.H
}

// start leaves the start screen and arms both timers.
func (g *Game) start() {
	g.phase = core.PhaseRunning
	g.scheduler.Every(EventSpawnCoin, 0, g.cfg.Coins.SpawnInterval())
	g.scheduler.Every(EventPassiveScore, g.cfg.Scoring.PassiveInterval(), g.cfg.Scoring.PassiveInterval())
}

// endGame stops the run. Both timers are cancelled so nothing changes
// after the game-over screen appears.
func (g *Game) endGame() {
	g.phase = core.PhaseGameOver
	g.paused = false
	g.scheduler.CancelAll()
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	switch g.phase {
	case core.PhaseStart:
		// The key that starts the run does nothing else
		if in.AnyPressed() {
			g.start()
		}
		return core.StepResult{State: g.State()}
	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			next := g.runtime
			next.Seed++
			g.Reset(next)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	g.applyReleases(in)
	if g.paused {
		g.lastDT = 0
		return core.StepResult{State: g.State()}
	}
	g.applyPresses(in)

	dt = g.clampDelta(dt)
	g.elapsed += dt
	secs := dt.Seconds()
	g.lastDT = secs

	for _, f := range g.scheduler.Due(g.elapsed) {
		g.fire(f.Kind)
	}

	g.updateClouds(secs)
	g.applyMilestones()
	g.updatePlatforms(secs)
	g.updateCoins(secs)
	g.updateEffects()
	g.player.ContinueJump(secs, g.elapsed)
	g.player.Update(secs, g.cfg.Physics.Gravity, g.cfg.World.Width)

	if g.elapsed > g.cfg.Rules.GracePeriod() && g.player.Y > g.cfg.World.Height {
		g.endGame()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) clampDelta(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if limit := g.cfg.Rules.MaxFrameDelta(); limit > 0 && dt > limit {
		return limit
	}
	return dt
}

func (g *Game) applyPresses(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.player.MoveLeft()
	case in.Has(core.ActionRight):
		g.player.MoveRight()
	case in.Has(core.ActionStop):
		g.player.Stop()
	}
	if in.Has(core.ActionJump) {
		g.player.Jump(g.elapsed)
	}
}

func (g *Game) applyReleases(in core.InputFrame) {
	if in.Released(core.ActionLeft) || in.Released(core.ActionRight) {
		g.player.Stop()
	}
	if in.Released(core.ActionJump) {
		g.player.EndJump()
	}
}

func (g *Game) fire(kind EventKind) {
	switch kind {
	case EventSpawnCoin:
		g.spawnCoin()
	case EventPassiveScore:
		g.score += g.cfg.Scoring.PassivePoints
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    g.score,
		Coins:    g.coinCount,
		Level:    g.level,
		Elapsed:  g.elapsed,
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.paused,
	}
}

// Config returns the configuration the current run uses.
func (g *Game) Config() config.BoxCoinConfig {
	return g.cfg
}

// Debug reports whether the debug overlay is enabled.
func (g *Game) Debug() bool {
	return g.debug
}

// FPS returns the frame rate implied by the last frame delta, 0 when the
// delta was zero.
func (g *Game) FPS() float64 {
	if g.lastDT <= 0 {
		return 0
	}
	return 1 / g.lastDT
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
