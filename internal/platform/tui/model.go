package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boxcoin/internal/config"
	"github.com/vovakirdan/boxcoin/internal/core"
	"github.com/vovakirdan/boxcoin/internal/registry"
	"github.com/vovakirdan/boxcoin/internal/storage"
)

// presetter is implemented by games with per-instance difficulty presets.
type presetter interface {
	SetPreset(config.DifficultyPreset)
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Difficulty  config.DifficultyPreset // recorded with saved runs, applied when the game supports it
	HoldTimeout time.Duration           // see HoldTracker
	Standalone  bool                    // the model owns its program; going back ends it
}

// GameModel is the Bubble Tea model for running a game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	clock      *core.Clock
	hold       *HoldTracker
	keyMapper  *KeyMapper
	inputFrame *core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	if p, ok := game.(presetter); ok && opts.Difficulty != "" {
		p.SetPreset(opts.Difficulty)
	}

	frame := core.NewInputFrame()
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		clock:      core.NewClock(core.DefaultMaxFrameDelta),
		hold:       NewHoldTracker(opts.HoldTimeout),
		keyMapper:  NewKeyMapper(),
		inputFrame: &frame,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		// The playfield is scaled, so a resize never resets the run
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.opts.Standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	for _, released := range m.hold.Press(action, now) {
		m.inputFrame.Release(released)
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)

	for _, a := range m.hold.Expire(now) {
		m.inputFrame.Release(a)
	}

	// Run game simulation
	result := m.game.Step(*m.inputFrame, dt)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveRun()
		m.scoreSaved = true
		m.hold.Reset()
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Best-effort: the game continues
// without a store.
func (m *GameModel) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	difficulty := string(m.opts.Difficulty)
	if difficulty == "" {
		difficulty = string(config.DifficultyNormal)
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.Run{
		GameID:     m.game.ID(),
		Score:      m.gameState.Score,
		Coins:      m.gameState.Coins,
		Level:      m.gameState.Level,
		Survival:   m.gameState.Elapsed,
		Difficulty: difficulty,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(home, ".boxcoin", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the user asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
