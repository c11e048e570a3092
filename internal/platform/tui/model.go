package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-towers/internal/core"
	"github.com/vovakirdan/tui-towers/internal/registry"
	"github.com/vovakirdan/tui-towers/internal/storage"
)

// SessionReporter is implemented by games that can summarize a session for
// the session store.
type SessionReporter interface {
	SessionRecord() storage.Session
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       GameKeyMap
	loop       int64
	inputFrame core.InputFrame
	gameState  core.GameState
	allowBack  bool // B returns to the menu instead of quitting
	quitting   bool
	backToMenu bool
	saved      bool // Session for the current round was recorded
}

// NewGameModel creates a model for the given game. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, allowBack bool) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		loop:       newTickLoop(),
		inputFrame: core.NewInputFrame(),
		allowBack:  allowBack,
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is camera relative, so only the buffer changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.recordSession()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		m.recordSession()
		if !m.allowBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.recordSession()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// recordSession stores the current round once. Rounds that never ticked
// are skipped.
func (m *GameModel) recordSession() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	var rec storage.Session
	if r, ok := m.game.(SessionReporter); ok {
		rec = r.SessionRecord()
	} else {
		rec = storage.Session{GameID: m.game.ID(), Outcome: "unknown", Earned: m.gameState.Score}
	}
	if rec.Ticks == 0 && rec.Earned == 0 {
		return
	}

	id, err := m.store.SaveSession(rec)
	if err != nil {
		m.logger.Warn("could not save session", "game", rec.GameID, "error", err)
		return
	}
	m.logger.Debug("session saved", "id", id, "game", rec.GameID, "outcome", rec.Outcome, "score", rec.Earned)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the user quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg, false)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// menuGame ends the program when the player goes back to the menu.
type menuGame struct {
	GameModel
}

func (m menuGame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.GameModel = gm
	}
	if m.BackToMenu() {
		return m, tea.Quit
	}
	return m, cmd
}

// RunFromMenu plays a game started from the local menu. B returns to the
// caller with quit false; Q returns quit true.
func RunFromMenu(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (quit bool, err error) {
	p := tea.NewProgram(
		menuGame{NewGameModel(game, store, logger, cfg, true)},
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(menuGame)
	if !ok {
		return true, nil
	}
	return m.IsQuitting(), nil
}
