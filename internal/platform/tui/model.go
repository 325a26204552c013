package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// helpHeight is the number of rows under the board reserved for key hints.
const helpHeight = 1

// Model is the Bubble Tea model for one game of 2048.
type Model struct {
	game          *t2048.Game
	screen        *core.Screen
	painter       *Painter
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	keys          KeyMap
	keyMapper     *KeyMapper
	help          help.Model
	helpStyle     lipgloss.Style
	logger        *log.Logger
	screenshotDir string
	status        string // Last screenshot result, cleared on the next key
	lastTick      time.Time
	quitting      bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for screenshot and lifecycle events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithRenderer renders through r instead of the local stdout renderer.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.painter = NewPainter(r)
		m.helpStyle = r.NewStyle().Foreground(lipgloss.Color("241"))
	}
}

// WithScreenshotDir sets where Ctrl+S writes screen dumps.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.screenshotDir = dir }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *t2048.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		painter:       defaultPainter,
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keys:          keys,
		keyMapper:     NewKeyMapper(keys),
		help:          h,
		helpStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		logger:        log.New(io.Discard),
		screenshotDir: defaultScreenshotDir(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "t2048", "screenshots")
	}
	return filepath.Join(home, ".t2048", "screenshots")
}

// gameConfig returns the runtime config for the board area.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Debug("game started", "seed", m.game.Seed())

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
	m.status = ""

	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.game.Finish()
		return m, tea.Quit
	}

	return m, nil
}

// handleResize keeps the board and only re-checks the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.game.Resize(cfg.ScreenW, cfg.ScreenH)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick runs one frame with the input collected since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	wasOver := m.gameState.GameOver
	restart := m.inputFrame.Has(core.ActionRestart) && !m.gameState.Animating && !m.gameState.Paused
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Quit {
		m.quitting = true
		m.game.Finish()
		return m, tea.Quit
	}

	if restart {
		m.logger.Info("game restarted", "seed", m.game.Seed())
	}
	if m.gameState.GameOver && !wasOver {
		snap := m.game.Snapshot()
		m.logger.Info("game over", "score", snap.Score, "max_tile", snap.MaxTile, "moves", snap.Moves)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Error("could not create screenshot directory", "dir", m.screenshotDir, "error", err)
		m.status = "screenshot failed"
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("2048_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("could not save screenshot", "path", path, "error", err)
		m.status = "screenshot failed"
		return
	}

	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return m.painter.Render(m.screen) + "\n" + m.helpStyle.Render(footer)
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game *t2048.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	game.Finish()
	return err
}
