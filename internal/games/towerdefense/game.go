// Package towerdefense adapts the tower defense simulation to the arcade
// platform: it turns input frames into simulation commands, advances one
// tick per frame and draws a camera-centered view of the world.
package towerdefense

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-towers/internal/config"
	"github.com/vovakirdan/tui-towers/internal/core"
	"github.com/vovakirdan/tui-towers/internal/games/towerdefense/sim"
)

// noticeSeconds is how long a placement message stays on screen.
const noticeSeconds = 2

// Game implements registry.Game on top of a sim.Simulation.
type Game struct {
	mode    Mode
	cfg     config.TowerDefenseConfig
	fixed   bool // cfg was supplied by NewFromConfig and is not reloaded
	runtime core.RuntimeConfig

	sim      *sim.Simulation
	err      error // startup failure, shown instead of the world
	selected int
	paused   bool
	last     sim.TickResult

	notice      string
	noticeColor core.Color
	noticeTTL   int

	now      func() time.Time
	lastStep time.Time
}

// New creates a game for a mode. The configuration is loaded on Reset.
func New(mode Mode) *Game {
	return &Game{mode: mode, now: time.Now}
}

// NewFromConfig creates a game from an already loaded configuration.
// It fails with a sim.ConfigurationError when the catalog is empty.
func NewFromConfig(mode Mode, cfg config.TowerDefenseConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := NewSimulation(cfg); err != nil {
		return nil, err
	}
	return &Game{mode: mode, cfg: cfg, fixed: true, now: time.Now}, nil
}

// NewSimulation builds a simulation from configuration.
func NewSimulation(cfg config.TowerDefenseConfig) (*sim.Simulation, error) {
	catalog, err := Catalog(cfg)
	if err != nil {
		return nil, err
	}
	return sim.New(catalog, Options(cfg))
}

// Catalog converts the configured towers and enemies.
func Catalog(cfg config.TowerDefenseConfig) (sim.Catalog, error) {
	towers := make([]sim.TowerType, len(cfg.Towers))
	for i, t := range cfg.Towers {
		towers[i] = sim.TowerType{
			Name:       t.Name,
			Cost:       t.Cost,
			Damage:     t.Damage,
			Range:      t.Range,
			RateOfFire: t.RateOfFire,
		}
	}
	enemies := make([]sim.EnemyType, len(cfg.Enemies))
	for i, e := range cfg.Enemies {
		enemies[i] = sim.EnemyType{
			Name:         e.Name,
			MaxHitPoints: e.HitPoints,
			Speed:        e.Speed,
			Reward:       e.Reward,
		}
	}
	return sim.NewCatalog(towers, enemies)
}

// Options converts the player, camera and spawn settings.
func Options(cfg config.TowerDefenseConfig) sim.Options {
	return sim.Options{
		Resources:  cfg.Player.Resources,
		Lives:      cfg.Player.Lives,
		Camera:     sim.Pt(cfg.Camera.Start.X, cfg.Camera.Start.Y),
		CameraStep: cfg.Camera.Speed,
		Spawn: sim.SpawnRules{
			Origin:      sim.Pt(cfg.Spawn.Origin.X, cfg.Spawn.Origin.Y),
			WaveDivisor: cfg.Spawn.WaveDivisor,
			MaxEnemies:  cfg.Spawn.MaxEnemies,
		},
	}
}

// ID returns the registry ID of the mode.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name of the mode.
func (g *Game) Title() string {
	return g.mode.Title
}

// Reset starts a new session. Unless the game was built with
// NewFromConfig, the configuration is reloaded so edits apply on restart.
// The previous session is dropped even when the new one cannot start.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sim = nil
	g.err = nil
	g.selected = 0
	g.paused = false
	g.last = sim.TickResult{}
	g.notice = ""
	g.noticeTTL = 0
	g.lastStep = time.Time{}

	if !g.fixed {
		cfg, err := LoadConfig(g.mode.Preset)
		if err != nil {
			g.err = err
			return
		}
		g.cfg = cfg
	}

	s, err := NewSimulation(g.cfg)
	if err != nil {
		g.err = err
		return
	}
	g.sim = s
}

// Step applies this frame's input and runs one simulation tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil || g.last.Outcome.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.lastStep = time.Time{}
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)

	g.last = g.sim.Tick(g.frameSeconds())
	for _, r := range g.last.Commands {
		g.report(r)
	}
	if g.noticeTTL > 0 {
		g.noticeTTL--
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	towers := len(g.sim.Catalog().Towers)
	if in.Has(core.ActionNext) {
		g.selected = (g.selected + 1) % towers
	}
	if in.Has(core.ActionPrev) {
		g.selected = (g.selected + towers - 1) % towers
	}

	moves := []struct {
		action core.Action
		dir    sim.Direction
	}{
		{core.ActionUp, sim.DirUp},
		{core.ActionDown, sim.DirDown},
		{core.ActionLeft, sim.DirLeft},
		{core.ActionRight, sim.DirRight},
	}
	for _, m := range moves {
		if in.Has(m.action) {
			g.sim.Enqueue(sim.MoveCameraCmd{Direction: m.dir})
		}
	}

	if in.Has(core.ActionPlace) {
		g.sim.Enqueue(sim.PlaceTowerCmd{Index: g.selected})
	}
}

// frameSeconds returns the simulated time for this frame according to
// the timing mode.
func (g *Game) frameSeconds() float64 {
	if g.cfg.Timing.Mode != config.TimingVariable {
		return g.cfg.Timing.FrameTime
	}

	now := g.now()
	wall := g.runtime.FrameSeconds()
	if !g.lastStep.IsZero() {
		wall = now.Sub(g.lastStep).Seconds()
	}
	g.lastStep = now
	return g.cfg.Timing.FrameSeconds(wall)
}

// report turns a placement result into an on-screen notice.
func (g *Game) report(r sim.CommandResult) {
	place, ok := r.Command.(sim.PlaceTowerCmd)
	if !ok {
		return
	}

	var short *sim.InsufficientResourcesError
	switch {
	case errors.As(r.Err, &short):
		g.setNotice(fmt.Sprintf("Not enough resources for %s (%d/%d)", short.Tower, short.Have, short.Cost), core.ColorBrightRed)
	case r.Err != nil:
		g.setNotice(r.Err.Error(), core.ColorBrightRed)
	default:
		t := g.sim.Catalog().Towers[place.Index]
		g.setNotice(fmt.Sprintf("Built %s for %d", t.Name, t.Cost), core.ColorBrightGreen)
	}
}

func (g *Game) setNotice(msg string, c core.Color) {
	g.notice = msg
	g.noticeColor = c
	g.noticeTTL = noticeSeconds * max(g.runtime.TickRate, 1)
}

// Selected returns the catalog index of the tower that Place will build.
func (g *Game) Selected() int {
	return g.selected
}

// Outcome returns the outcome of the last tick.
func (g *Game) Outcome() sim.Outcome {
	return g.last.Outcome
}

// Err returns the error that prevented the session from starting.
func (g *Game) Err() error {
	return g.err
}

// State reports the score (total reward earned) and whether the session
// has reached a terminal outcome.
func (g *Game) State() core.GameState {
	if g.err != nil {
		return core.GameState{GameOver: true, Message: g.err.Error()}
	}
	if g.sim == nil {
		return core.GameState{}
	}

	st := core.GameState{
		Score:  g.sim.Stats().Earned,
		Paused: g.paused,
	}
	switch g.last.Outcome {
	case sim.OutcomeWin:
		st.GameOver = true
		st.Message = "You win!"
	case sim.OutcomeLoss:
		st.GameOver = true
		st.Message = "You lose!"
	}
	return st
}
