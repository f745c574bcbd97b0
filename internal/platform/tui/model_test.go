package tui

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boxcoin/internal/config"
	"github.com/vovakirdan/boxcoin/internal/core"
	"github.com/vovakirdan/boxcoin/internal/registry"
	"github.com/vovakirdan/boxcoin/internal/storage"
)

const stubID = "tui_stub"

// recordingGame remembers the frames it was stepped with.
type recordingGame struct {
	frames []core.InputFrame
	dts    []time.Duration
	state  core.GameState
	preset config.DifficultyPreset
	resets int
}

func (g *recordingGame) ID() string { return stubID }
func (g *recordingGame) Title() string { return "Stub" }
func (g *recordingGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	g.dts = append(g.dts, dt)
	return core.StepResult{State: g.state}
}
func (g *recordingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *recordingGame) State() core.GameState { return g.state }
func (g *recordingGame) SetPreset(p config.DifficultyPreset) { g.preset = p }

var registerStub sync.Once

func stubRegistered() {
	registerStub.Do(func() {
		registry.Register(stubID, func() registry.Game { return &recordingGame{} })
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func pressKey(m GameModel, msg tea.KeyMsg, now time.Time) GameModel {
	next, _ := m.handleKey(msg, now)
	return next.(GameModel)
}

func tickAt(m GameModel, now time.Time) GameModel {
	next, _ := m.handleTick(now)
	return next.(GameModel)
}

func TestGameModelPressThenSyntheticRelease(t *testing.T) {
	g := &recordingGame{}
	m := NewGameModel(g, nil, testConfig(), GameOptions{HoldTimeout: 100 * time.Millisecond})
	t0 := time.Unix(1000, 0)

	m = pressKey(m, runes("a"), t0)
	m = tickAt(m, t0)
	if !g.frames[0].Has(core.ActionLeft) {
		t.Fatal("first frame should carry the left press")
	}
	if g.dts[0] != 0 {
		t.Errorf("first tick dt = %v, expected 0", g.dts[0])
	}

	m = tickAt(m, t0.Add(50*time.Millisecond))
	if g.frames[1].Has(core.ActionLeft) || g.frames[1].Released(core.ActionLeft) {
		t.Error("second frame should be empty: press consumed, key still held")
	}
	if g.dts[1] != 50*time.Millisecond {
		t.Errorf("dt = %v, expected 50ms", g.dts[1])
	}

	tickAt(m, t0.Add(150*time.Millisecond))
	if !g.frames[2].Released(core.ActionLeft) {
		t.Error("left should be released once the hold timeout passes")
	}
}

func TestGameModelOppositeDirectionReleases(t *testing.T) {
	g := &recordingGame{}
	m := NewGameModel(g, nil, testConfig(), GameOptions{})
	t0 := time.Unix(1000, 0)

	m = pressKey(m, runes("a"), t0)
	m = tickAt(m, t0)
	m = pressKey(m, runes("d"), t0.Add(10*time.Millisecond))
	tickAt(m, t0.Add(20*time.Millisecond))

	f := g.frames[1]
	if !f.Has(core.ActionRight) || !f.Released(core.ActionLeft) {
		t.Error("pressing right should release left in the same frame")
	}
}

func TestGameModelAppliesPreset(t *testing.T) {
	g := &recordingGame{}
	NewGameModel(g, nil, testConfig(), GameOptions{Difficulty: config.DifficultyHard})
	if g.preset != config.DifficultyHard {
		t.Errorf("preset = %q, expected hard", g.preset)
	}
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &recordingGame{}
	m := NewGameModel(g, store, testConfig(), GameOptions{Difficulty: config.DifficultyEasy})
	t0 := time.Unix(1000, 0)

	m = tickAt(m, t0)
	g.state = core.GameState{Phase: core.PhaseGameOver, GameOver: true, Score: 42, Coins: 3, Level: 2, Elapsed: 12 * time.Second}
	m = tickAt(m, t0.Add(16*time.Millisecond))
	m = tickAt(m, t0.Add(32*time.Millisecond))

	runs, err := store.TopRuns(stubID, 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Score != 42 || r.Coins != 3 || r.Level != 2 || r.Survival != 12*time.Second || r.Difficulty != "easy" {
		t.Errorf("saved run = %+v", r)
	}

	// A restarted run that ends again is saved again
	g.state = core.GameState{Phase: core.PhaseRunning, Score: 1}
	m = tickAt(m, t0.Add(48*time.Millisecond))
	g.state = core.GameState{Phase: core.PhaseGameOver, GameOver: true, Score: 7}
	tickAt(m, t0.Add(64*time.Millisecond))

	runs, _ = store.TopRuns(stubID, 10)
	if len(runs) != 2 {
		t.Errorf("saved %d runs after second game over, expected 2", len(runs))
	}
}

func TestGameModelBackOnlyWhenOverOrPaused(t *testing.T) {
	g := &recordingGame{}
	m := NewGameModel(g, nil, testConfig(), GameOptions{})
	t0 := time.Unix(1000, 0)

	m = tickAt(m, t0)
	m = pressKey(m, runes("b"), t0)
	if m.BackToMenu() {
		t.Fatal("back should be ignored while running")
	}

	g.state = core.GameState{Phase: core.PhaseRunning, Paused: true}
	m = tickAt(m, t0.Add(16*time.Millisecond))
	m = pressKey(m, runes("b"), t0.Add(20*time.Millisecond))
	if !m.BackToMenu() {
		t.Error("back should leave a paused run")
	}
	if m.IsQuitting() {
		t.Error("back is not quit")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&recordingGame{}, nil, testConfig(), GameOptions{})
	next, cmd := m.handleKey(runes("q"), time.Now())
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(GameModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	g := &recordingGame{}
	m := NewGameModel(g, nil, testConfig(), GameOptions{})
	m.Init()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	gm := next.(GameModel)
	if g.resets != 1 {
		t.Errorf("resets = %d, a resize must not reset the run", g.resets)
	}
	if gm.screen.Width() != 100 || gm.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", gm.screen.Width(), gm.screen.Height())
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, stubID, testConfig(), config.DifficultyNormal)

	step := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("difficulty = %q, expected hard", m.Difficulty())
	}
	step(tea.KeyMsg{Type: tea.KeyRight})
	step(tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("difficulty should wrap to easy, got %q", m.Difficulty())
	}
	step(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("difficulty should wrap back to fixed, got %q", m.Difficulty())
	}

	step(tea.KeyMsg{Type: tea.KeyUp})
	step(tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if !res.Play || res.Quit || res.WantsScoreboard {
		t.Errorf("result = %+v, expected play", res)
	}
	if res.Difficulty != config.DifficultyFixed {
		t.Errorf("result difficulty = %q", res.Difficulty)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, stubID, testConfig(), config.DifficultyNormal)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(runes("q"))
	if !next.(MenuModel).Result().Quit {
		t.Error("q should quit")
	}
}

func TestMenuShowsBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.Run{GameID: stubID, Score: 77}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewMenuModel(store, stubID, testConfig(), config.DifficultyNormal)
	if got := m.View(); !containsAll(got, "Best: 77", "Play", "Difficulty: < normal >") {
		t.Errorf("menu view missing entries:\n%s", got)
	}
}

func TestSessionFlow(t *testing.T) {
	stubRegistered()
	s := NewSessionModel(nil, stubID, testConfig(), config.DifficultyNormal)

	update := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.gameModel == nil {
		t.Fatal("enter on Play should start a game")
	}

	game := s.gameModel.game.(*recordingGame)
	game.state = core.GameState{Phase: core.PhaseGameOver, GameOver: true}
	update(TickMsg(time.Now()))
	update(runes("b"))
	if s.screen != screenMenu || s.gameModel != nil {
		t.Fatal("back after game over should return to the menu")
	}

	update(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	update(runes("b"))
	if s.screen != screenMenu {
		t.Fatal("back should leave the scoreboard")
	}

	if cmd := update(runes("q")); cmd == nil || !s.quitting {
		t.Error("q in the menu should end the session")
	}
}
