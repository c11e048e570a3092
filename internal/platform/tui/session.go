package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-towers/internal/core"
	"github.com/vovakirdan/tui-towers/internal/registry"
	"github.com/vovakirdan/tui-towers/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenHistory
)

// SessionModel manages the full flow of one SSH session:
// menu -> game or history -> menu.
type SessionModel struct {
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	game     GameModel
	history  HistoryModel
	quitting bool
}

// NewSessionModel creates a session that starts at the menu. store and
// logger may be nil.
func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		logger: logger,
		config: cfg,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while the menu is shown. The child models
// return tea.Quit to signal a choice, which is swallowed here.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsHistory():
		m.history = NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenHistory
		return m, m.history.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		game, err := registry.Create(id)
		if err != nil {
			m.logger.Error("cannot create game", "game", id, "error", err)
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}
		m.logger.Info("game started", "game", id)
		m.game = NewGameModel(game, m.store, m.logger, m.config, true)
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a game runs.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		m.logger.Info("game ended", "game", m.game.game.ID(), "score", m.game.gameState.Score)
		return m.showMenu()
	}

	return m, cmd
}

// updateHistory handles updates while the history is shown.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	if history, ok := next.(HistoryModel); ok {
		m.history = history
	}

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.history.IsGoingBack():
		return m.showMenu()
	}

	return m, cmd
}

func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}
