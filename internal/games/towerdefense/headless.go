package towerdefense

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-towers/internal/config"
	"github.com/vovakirdan/tui-towers/internal/games/towerdefense/sim"
)

// HeadlessOptions controls a run without a terminal.
type HeadlessOptions struct {
	// MaxTicks bounds the run. Must be positive.
	MaxTicks uint64

	// Placements are queued before the tick they name.
	Placements []Placement

	// Logger receives per-command and summary events. Nil discards them.
	Logger *log.Logger

	// OnTick, if set, is called after every tick with its frame.
	OnTick func(Frame)
}

// ErrNoLimit is returned when HeadlessOptions.MaxTicks is zero. Enemies
// spawn every tick, so without towers a session never ends on its own.
var ErrNoLimit = errors.New("towerdefense: headless run needs a tick limit")

// RunHeadless plays a session with fixed frame time cfg.Timing.FrameTime
// until the outcome is terminal, MaxTicks is reached or ctx is done.
// It returns the final frame.
func RunHeadless(ctx context.Context, mode Mode, cfg config.TowerDefenseConfig, opts HeadlessOptions) (Frame, error) {
	if err := cfg.Validate(); err != nil {
		return Frame{}, err
	}
	if opts.MaxTicks == 0 {
		return Frame{}, ErrNoLimit
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s, err := NewSimulation(cfg)
	if err != nil {
		return Frame{}, err
	}

	placements := slices.Clone(opts.Placements)
	slices.SortStableFunc(placements, func(a, b Placement) int {
		switch {
		case a.At < b.At:
			return -1
		case a.At > b.At:
			return 1
		}
		return 0
	})

	var (
		last sim.TickResult
		next int
	)
	for last.Tick < opts.MaxTicks {
		if err := ctx.Err(); err != nil {
			return headlessFrame(mode, s, last), err
		}

		// Each placement is planned from the camera left by the previous one.
		camera := s.Snapshot().Camera
		for next < len(placements) && placements[next].At <= last.Tick {
			p := placements[next]
			next++
			cmds, err := p.Commands(s.Catalog(), camera, cfg.Camera.Speed)
			if err != nil {
				return headlessFrame(mode, s, last), err
			}
			for _, c := range cmds {
				s.Enqueue(c)
			}
			camera = sim.Pt(float64(p.X)*cfg.Camera.Speed, float64(p.Y)*cfg.Camera.Speed)
		}

		last = s.Tick(cfg.Timing.FrameTime)
		for _, r := range last.Commands {
			if r.Err != nil {
				logger.Warn("command rejected", "tick", last.Tick, "command", r.Command, "error", r.Err)
			} else if _, ok := r.Command.(sim.PlaceTowerCmd); ok {
				logger.Info("tower built", "tick", last.Tick, "command", r.Command)
			}
		}
		logger.Debug("tick", "tick", last.Tick, "spawned", last.Spawned, "hits", last.Hits,
			"defeated", last.Settlement.Defeated, "outcome", last.Outcome)

		if opts.OnTick != nil {
			opts.OnTick(headlessFrame(mode, s, last))
		}
		if last.Outcome.Terminal() {
			break
		}
	}

	f := headlessFrame(mode, s, last)
	logger.Info("run finished", "mode", mode.ID, "ticks", f.Tick, "outcome", f.Outcome,
		"earned", f.Stats.Earned, "towers", f.Stats.TowersBuilt)
	return f, nil
}

func headlessFrame(mode Mode, s *sim.Simulation, last sim.TickResult) Frame {
	return Frame{
		Mode:    mode.ID,
		Tick:    last.Tick,
		Outcome: last.Outcome.String(),
		Stats:   s.Stats(),
		World:   s.Snapshot(),
	}
}
