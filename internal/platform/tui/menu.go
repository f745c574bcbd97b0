package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/boxcoin/internal/config"
	"github.com/vovakirdan/boxcoin/internal/core"
	"github.com/vovakirdan/boxcoin/internal/storage"
)

// MenuEntry identifies a row of the main menu.
type MenuEntry int

const (
	MenuPlay MenuEntry = iota
	MenuDifficulty
	MenuScores
	MenuQuit
)

var menuEntries = []MenuEntry{MenuPlay, MenuDifficulty, MenuScores, MenuQuit}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	gameID     string
	cursor     int
	difficulty int // index into config.Presets
	width      int
	height     int
	best       int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	selected   MenuEntry
	done       bool
}

// NewMenuModel creates a new menu model. The best score is read once from
// the store; a nil store shows no best line.
func NewMenuModel(store *storage.Store, gameID string, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) MenuModel {
	m := MenuModel{
		gameID:    gameID,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		best:      -1,
	}
	m.difficulty = presetIndex(difficulty)

	if store != nil {
		if best, err := store.HighScore(gameID); err == nil {
			m.best = best
		}
	}
	return m
}

func presetIndex(p config.DifficultyPreset) int {
	for i, preset := range config.Presets {
		if preset == p {
			return i
		}
	}
	return presetIndex(config.DifficultyNormal)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuEntries[m.cursor] == MenuDifficulty {
			m.cycleDifficulty(-1)
		}

	case MenuActionRight:
		if menuEntries[m.cursor] == MenuDifficulty {
			m.cycleDifficulty(1)
		}

	case MenuActionScoreboard:
		m.selected = MenuScores
		m.done = true
		return m, tea.Quit

	case MenuActionSelect:
		entry := menuEntries[m.cursor]
		switch entry {
		case MenuDifficulty:
			m.cycleDifficulty(1)
			return m, nil
		case MenuQuit:
			m.quitting = true
		}
		m.selected = entry
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) cycleDifficulty(delta int) {
	n := len(config.Presets)
	m.difficulty = ((m.difficulty+delta)%n + n) % n
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B O X C O I N"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText("Jump between falling platforms and catch the coins", m.width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		label := m.entryLabel(entry)
		if i == m.cursor {
			b.WriteString(centerText(menuCursorStyle.Render("> "+label), m.width))
		} else {
			b.WriteString(centerText("  "+label, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) entryLabel(e MenuEntry) string {
	switch e {
	case MenuPlay:
		return "Play"
	case MenuDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", m.Difficulty())
	case MenuScores:
		return "High Scores"
	default:
		return "Quit"
	}
}

// Selected returns the chosen entry and whether the menu finished.
func (m MenuModel) Selected() (MenuEntry, bool) {
	return m.selected, m.done
}

// Difficulty returns the currently chosen preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Play            bool
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, gameID string, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, gameID, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return m.Result(), nil
}

// Result converts the finished menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}

	entry, done := m.Selected()
	switch {
	case m.IsQuitting() || !done:
		result.Quit = true
	case entry == MenuScores:
		result.WantsScoreboard = true
	case entry == MenuPlay:
		result.Play = true
	}
	return result
}
