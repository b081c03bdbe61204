package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// defaultSoftDropHold is used when the game does not report its own window.
const defaultSoftDropHold = 500 * time.Millisecond

// minSizer is implemented by games with a fixed layout.
type minSizer interface {
	MinSize() (w, h int)
}

// softDropHolder is implemented by games that configure the soft drop hold window.
type softDropHolder interface {
	SoftDropHold() time.Duration
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	softDrop   *SoftDropHold
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	window := defaultSoftDropHold
	if h, ok := game.(softDropHolder); ok && h.SoftDropHold() > 0 {
		window = h.SoftDropHold()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(game, cfg.ScreenH, 1)),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		softDrop:   NewSoftDropHold(window),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// gameHeight returns the rows left for the game after the help footer. The
// footer is dropped when the game would not fit next to it.
func gameHeight(game registry.Game, h, footer int) int {
	minH := 1
	if s, ok := game.(minSizer); ok {
		_, minH = s.MinSize()
	}
	if h-footer >= minH {
		return h - footer
	}
	return h
}

// footerRows returns the height of the help footer.
func (m Model) footerRows() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 1
	for _, col := range m.keys.Keys().FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Keys().Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, gameHeight(m.game, m.config.ScreenH, m.footerRows()))
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.inputFrame.Has(core.ActionRestart):
		m.softDrop.Reset()
	case m.inputFrame.Has(core.ActionSoftDrop):
		m.softDrop.Press(time.Now())
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps its state and
// draws a warning while the screen is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(m.game, msg.Height, m.footerRows()))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.softDrop.Poll(now) {
		m.inputFrame.Release(core.ActionSoftDrop)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tetris", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	view := RenderScreen(m.screen)
	if m.screen.Height() < m.config.ScreenH {
		view += "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
	}
	return view
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
