package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-towers/internal/core"
	"github.com/vovakirdan/tui-towers/internal/storage"
)

// stubGame counts frames and ends after overAt steps when overAt > 0.
type stubGame struct {
	resets int
	steps  int
	overAt int
	paused bool
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.paused = false
}

func (g *stubGame) over() bool { return g.overAt > 0 && g.steps >= g.overAt }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused && !g.over() {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.steps * 10, GameOver: g.over(), Paused: g.paused}
}

func (g *stubGame) SessionRecord() storage.Session {
	outcome := "ongoing"
	if g.over() {
		outcome = "win"
	}
	return storage.Session{GameID: g.ID(), Outcome: outcome, Ticks: uint64(g.steps), Earned: g.steps * 10}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "towers.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, g *stubGame, store *storage.Store, allowBack bool) GameModel {
	t.Helper()
	m := NewGameModel(g, store, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}, allowBack)
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm
}

func tick(t *testing.T, m GameModel, n int) GameModel {
	t.Helper()
	for range n {
		m = update(t, m, TickMsg{Loop: m.loop})
	}
	return m
}

func sessions(t *testing.T, store *storage.Store) []storage.Session {
	t.Helper()
	list, err := store.RecentSessions("stub", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	return list
}

func TestGameModelTicks(t *testing.T) {
	g := &stubGame{}
	m := tick(t, newTestModel(t, g, nil, false), 3)

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if g.steps != 3 {
		t.Errorf("steps = %d, want 3", g.steps)
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("View() does not contain rendered game")
	}
}

func TestGameModelDropsStaleTicks(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil, false)

	m = update(t, m, TickMsg{Loop: m.loop + 1})
	if g.steps != 0 {
		t.Errorf("stale tick advanced the game to %d steps", g.steps)
	}
}

func TestGameModelResizeKeepsSession(t *testing.T) {
	g := &stubGame{}
	m := tick(t, newTestModel(t, g, nil, false), 2)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize reset the game (resets = %d)", g.resets)
	}
	if g.steps != 2 {
		t.Errorf("steps = %d after resize, want 2", g.steps)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelRecordsGameOverOnce(t *testing.T) {
	store := openTestStore(t)
	g := &stubGame{overAt: 3}
	m := tick(t, newTestModel(t, g, store, false), 6)

	list := sessions(t, store)
	if len(list) != 1 {
		t.Fatalf("recorded %d sessions, want 1", len(list))
	}
	if list[0].Outcome != "win" || list[0].Earned != 30 || list[0].Ticks != 3 {
		t.Errorf("session = %+v, want win with 30 after 3 ticks", list[0])
	}

	// Restart starts a new round that is recorded separately.
	m = update(t, m, runeKey('r'))
	m = tick(t, m, 1)
	if g.resets != 2 {
		t.Fatalf("resets = %d after restart, want 2", g.resets)
	}
	tick(t, m, 4)
	if got := len(sessions(t, store)); got != 2 {
		t.Errorf("recorded %d sessions after restart, want 2", got)
	}
}

func TestGameModelRestartIgnoredWhilePlaying(t *testing.T) {
	g := &stubGame{}
	m := tick(t, newTestModel(t, g, nil, false), 2)

	m = update(t, m, runeKey('r'))
	tick(t, m, 1)

	if g.resets != 1 {
		t.Errorf("restart during play reset the game (resets = %d)", g.resets)
	}
}

func TestGameModelQuitRecordsAbandonedSession(t *testing.T) {
	store := openTestStore(t)
	g := &stubGame{}
	m := tick(t, newTestModel(t, g, store, false), 2)

	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Fatal("q did not quit")
	}
	list := sessions(t, store)
	if len(list) != 1 || list[0].Outcome != "ongoing" {
		t.Fatalf("sessions = %+v, want one ongoing session", list)
	}
}

func TestGameModelQuitBeforeFirstTick(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, &stubGame{}, store, false)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if got := len(sessions(t, store)); got != 0 {
		t.Errorf("recorded %d sessions for an unplayed round, want 0", got)
	}
}

func TestGameModelBack(t *testing.T) {
	tests := []struct {
		name      string
		allowBack bool
		pause     bool
		wantMenu  bool
		wantQuit  bool
	}{
		{"ignored while playing", true, false, false, false},
		{"menu when paused", true, true, true, false},
		{"quits without menu", false, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tick(t, newTestModel(t, &stubGame{}, nil, tt.allowBack), 1)
			if tt.pause {
				m = update(t, m, runeKey('p'))
				m = tick(t, m, 1)
			}

			m = update(t, m, runeKey('b'))

			if m.BackToMenu() != tt.wantMenu {
				t.Errorf("BackToMenu() = %v, want %v", m.BackToMenu(), tt.wantMenu)
			}
			if m.IsQuitting() != tt.wantQuit {
				t.Errorf("IsQuitting() = %v, want %v", m.IsQuitting(), tt.wantQuit)
			}
		})
	}
}

func TestMenuGameQuitsProgramOnBack(t *testing.T) {
	m := menuGame{tick(t, newTestModel(t, &stubGame{overAt: 1}, nil, true), 1)}

	next, cmd := m.Update(runeKey('b'))
	mg, ok := next.(menuGame)
	if !ok {
		t.Fatalf("Update returned %T, want menuGame", next)
	}
	if !mg.BackToMenu() || mg.IsQuitting() {
		t.Errorf("BackToMenu() = %v, IsQuitting() = %v, want true, false", mg.BackToMenu(), mg.IsQuitting())
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
}
