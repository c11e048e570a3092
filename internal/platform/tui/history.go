package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-towers/internal/registry"
	"github.com/vovakirdan/tui-towers/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the mode sidebar
	sidebarWidth       = 22  // Width of the mode sidebar
	maxSessions        = 100 // Max sessions to load per mode
)

// HistoryKeyMap defines the key bindings for the session history.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
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
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel lists recorded sessions per mode.
type HistoryModel struct {
	modes       []registry.GameInfo
	modeCursor  int
	store       *storage.Store
	sessions    []storage.Session
	stats       *storage.GameStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a history model. store may be nil.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		modes:       registry.List(),
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.modes) > 0 {
		m.loadSessions(m.modes[0].ID)
	}
	return m
}

// createTable creates a table sized for the current layout.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Outcome", Width: 8},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 7},
		{Title: "Towers", Width: 6},
		{Title: "Kills", Width: 6},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions loads the most recent sessions and stats of a mode.
func (m *HistoryModel) loadSessions(gameID string) {
	m.sessions, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.sessions, m.loadErr = m.store.RecentSessions(gameID, maxSessions)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(gameID)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded sessions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			s.Outcome,
			strconv.Itoa(s.Earned),
			strconv.FormatUint(s.Ticks, 10),
			strconv.Itoa(s.TowersBuilt),
			strconv.Itoa(s.Defeated),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			if len(m.modes) > 0 {
				m.modeCursor = (m.modeCursor + 1) % len(m.modes)
				m.loadSessions(m.modes[m.modeCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			if len(m.modes) > 0 {
				m.modeCursor = (m.modeCursor + len(m.modes) - 1) % len(m.modes)
				m.loadSessions(m.modes[m.modeCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "SESSION HISTORY"
	if len(m.modes) > 0 {
		title = "SESSION HISTORY - " + m.modes[m.modeCursor].Title
	}
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the mode list beside the table.
func (m HistoryModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Modes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for i, g := range m.modes {
		cursor, style := "  ", lipgloss.NewStyle()
		if i == m.modeCursor {
			cursor, style = "> ", menuSelectedStyle
		}
		name := g.Title
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		m.renderPanel(),
	)
}

// renderNarrowLayout renders a single mode selector line above the table.
func (m HistoryModel) renderNarrowLayout() string {
	var b strings.Builder
	if len(m.modes) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.modes[m.modeCursor].Title), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderPanel())
	return b.String()
}

// renderPanel renders the stats line and the table, or an empty message.
func (m HistoryModel) renderPanel() string {
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return panelStyle.Render(emptyStyle.Render("Session history is unavailable."))
	case m.loadErr != nil:
		return panelStyle.Render(emptyStyle.Render("Cannot load sessions:\n" + m.loadErr.Error()))
	case len(m.sessions) == 0:
		return panelStyle.Render(emptyStyle.Render("No sessions recorded yet.\nPlay a round to fill this table!"))
	}

	var b strings.Builder
	if m.stats != nil {
		b.WriteString(formatStats(*m.stats))
		b.WriteString("\n\n")
	}
	b.WriteString(m.table.View())
	return panelStyle.Render(b.String())
}

// formatStats renders the aggregate line shown above the table.
func formatStats(s storage.GameStats) string {
	return fmt.Sprintf("Sessions %d  Wins %d  Losses %d  Best %d  Avg %.1f",
		s.Sessions, s.Wins, s.Losses, s.BestScore, s.AvgScore)
}

// IsGoingBack returns true if the user wants to go back to the menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen in the local terminal.
// Returns true if the user wants to go back to the menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
