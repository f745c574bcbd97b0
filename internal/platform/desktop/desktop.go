// Package desktop runs BoxCoin in an Ebitengine window, drawing the
// playfield one world unit per pixel.
package desktop

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/boxcoin/internal/config"
	"github.com/vovakirdan/boxcoin/internal/core"
	"github.com/vovakirdan/boxcoin/internal/games/boxcoin"
	"github.com/vovakirdan/boxcoin/internal/storage"
)

// Options configures a desktop run.
type Options struct {
	Runtime    core.RuntimeConfig
	Difficulty config.DifficultyPreset // empty uses the saved setting
	Scale      float64                 // zero uses the saved setting
	Store      *storage.Store          // may be nil
	Settings   *SettingsStore          // may be nil
	Logger     *log.Logger
}

// Window adapts a BoxCoin game to ebiten.Game.
type Window struct {
	game       *boxcoin.Game
	store      *storage.Store
	logger     *log.Logger
	difficulty config.DifficultyPreset
	dt         time.Duration
	scoreSaved bool
	last       core.StepResult
}

// NewWindow creates the window model and resets the game.
func NewWindow(game *boxcoin.Game, opts Options) *Window {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}
	game.SetPreset(difficulty)
	game.Reset(opts.Runtime)

	return &Window{
		game:       game,
		store:      opts.Store,
		logger:     logger,
		difficulty: difficulty,
		dt:         time.Second / time.Duration(opts.Runtime.TickRate),
	}
}

// Update advances the simulation by one fixed tick.
func (w *Window) Update() error {
	frame, quit := readFrame(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased, ebiten.IsKeyPressed, inpututil.AppendJustPressedKeys(nil))
	if quit {
		return ebiten.Termination
	}
	w.step(frame)
	return nil
}

// step runs one simulation step and records finished runs.
func (w *Window) step(frame core.InputFrame) {
	w.last = w.game.Step(frame, w.dt)
	st := w.last.State

	if !st.GameOver {
		w.scoreSaved = false
		return
	}
	if w.scoreSaved {
		return
	}
	w.scoreSaved = true
	w.logger.Info("run finished", "score", st.Score, "coins", st.Coins, "level", st.Level, "survival", st.Elapsed.Round(time.Second))

	if w.store == nil || st.Score <= 0 {
		return
	}
	if _, err := w.store.SaveRun(storage.Run{
		GameID:     w.game.ID(),
		Score:      st.Score,
		Coins:      st.Coins,
		Level:      st.Level,
		Survival:   st.Elapsed,
		Difficulty: string(w.difficulty),
	}); err != nil {
		w.logger.Warn("could not save run", "error", err)
	}
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, w.game.Snapshot())
}

// Layout fixes the logical screen to the world size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	world := w.game.Config().World
	return int(world.Width), int(world.Height)
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}

	settings := DefaultSettings()
	if opts.Settings != nil {
		settings = opts.Settings.Settings()
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyPreset(settings.Difficulty)
	}
	if opts.Scale > 0 {
		settings.Scale = opts.Scale
	}
	settings.Difficulty = string(opts.Difficulty)

	game := boxcoin.New()
	w := NewWindow(game, opts)
	world := game.Config().World

	settings = settings.normalize()
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(world.Width*settings.Scale), int(world.Height*settings.Scale))
	ebiten.SetTPS(opts.Runtime.TickRate)
	ebiten.SetFullscreen(settings.Fullscreen)

	logger.Info("opening window", "difficulty", opts.Difficulty, "scale", settings.Scale)
	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}

	if opts.Settings != nil {
		opts.Settings.Update(settings)
		if saveErr := opts.Settings.Save(); saveErr != nil {
			logger.Warn("could not save settings", "error", saveErr)
		}
	}
	return err
}
