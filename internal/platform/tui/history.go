package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// HistoryKeyMap defines the key bindings for the journal browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel lists recorded games and lets the player pick one to replay.
type HistoryModel struct {
	sessions []storage.SessionEntry
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	styles   historyStyles
	selected int64 // Zero until a row is chosen
	quitting bool
}

// NewHistoryModel creates a journal browser over the given sessions.
func NewHistoryModel(sessions []storage.SessionEntry, width, height int) HistoryModel {
	m := HistoryModel{
		sessions: sessions,
		help:     help.New(),
		keys:     DefaultHistoryKeyMap(),
		styles:   newHistoryStyles(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	return m
}

func historyColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Started", Width: 14},
		{Title: "Via", Width: 5},
		{Title: "Moves", Width: 7},
		{Title: "Max", Width: 6},
		{Title: "Result", Width: 10},
	}
}

// HistoryRows formats sessions as table rows.
func HistoryRows(sessions []storage.SessionEntry) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		result := "open"
		switch {
		case s.GameOver:
			result = "game over"
		case !s.EndedAt.IsZero():
			result = "quit"
		}
		rows[i] = table.Row{
			strconv.FormatInt(s.ID, 10),
			s.StartedAt.Format("Jan 02 15:04"),
			s.FrontEnd,
			strconv.Itoa(s.Moves),
			strconv.Itoa(s.MaxTile),
			result,
		}
	}
	return rows
}

// historyStyles is the look of the journal browser.
type historyStyles struct {
	title lipgloss.Style
	frame lipgloss.Style
	empty lipgloss.Style
	hint  lipgloss.Style
	table table.Styles
}

func newHistoryStyles() historyStyles {
	dim := lipgloss.Color("241")
	border := lipgloss.Color("240")
	accent := lipgloss.Color(core.ColorTile2048.Hex())

	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(border)
	ts.Selected = ts.Selected.Bold(false).Foreground(lipgloss.Color(core.ColorTextLight.Hex())).Background(accent)

	return historyStyles{
		title: lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		empty: lipgloss.NewStyle().Italic(true).Foreground(dim).Padding(1, 2),
		hint:  lipgloss.NewStyle().Foreground(dim),
		table: ts,
	}
}

// createTable sizes the sessions table to the terminal, below the title and
// above the help line.
func (m *HistoryModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithRows(HistoryRows(m.sessions)),
		table.WithFocused(true),
		table.WithHeight(max(m.height-6, 3)),
		table.WithStyles(m.styles.table),
	)
	return t
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				if id, err := strconv.ParseInt(row[0], 10, 64); err == nil {
					m.selected = id
				}
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal browser.
func (m HistoryModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	body := m.styles.empty.Render("No games recorded yet.\nPlay with --record to fill the journal.")
	if len(m.sessions) > 0 {
		body = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render(fmt.Sprintf("RECORDED GAMES (%d)", len(m.sessions))),
		m.styles.frame.Render(body),
		m.styles.hint.Render(m.help.View(m.keys)),
	)
}

// Selected returns the chosen session ID, or zero.
func (m HistoryModel) Selected() int64 {
	return m.selected
}

// RunHistory runs the journal browser.
// Returns the session the player chose to replay, or zero.
func RunHistory(sessions []storage.SessionEntry, width, height int) (int64, error) {
	model := NewHistoryModel(sessions, width, height)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return 0, fmt.Errorf("tui: history: %w", err)
	}
	if m, ok := final.(HistoryModel); ok {
		return m.Selected(), nil
	}
	return 0, nil
}
