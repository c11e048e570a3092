package sim

import "sync"

// Options configures a new Simulation.
type Options struct {
	Resources  int
	Lives      int
	Camera     Point
	CameraStep float64
	Spawn      SpawnRules
}

// DefaultOptions returns the reference starting conditions:
// 100 resources, 10 lives, camera at the origin.
func DefaultOptions() Options {
	return Options{
		Resources:  100,
		Lives:      10,
		Camera:     Point{},
		CameraStep: DefaultCameraStep,
		Spawn:      DefaultSpawnRules(),
	}
}

// Stats accumulates per-session counters. No rule reads them.
type Stats struct {
	Ticks       uint64 `msgpack:"ticks"`
	Spawned     int    `msgpack:"spawned"`
	Defeated    int    `msgpack:"defeated"`
	Earned      int    `msgpack:"earned"`
	Spent       int    `msgpack:"spent"`
	TowersBuilt int    `msgpack:"towers_built"`
}

// TickResult describes what happened during one Tick.
type TickResult struct {
	Tick       uint64
	Commands   []CommandResult
	Spawned    int
	Hits       int
	Settlement Settlement
	Outcome    Outcome
}

// Simulation owns a GameState and runs the per-tick pipeline:
// spawn, move, resolve combat, settle, evaluate.
//
// Tick and ApplyCommands hold the simulation lock for their full duration,
// and Enqueue may be called from any goroutine, so a queued placement is
// always applied entirely before or after a tick.
type Simulation struct {
	mu      sync.Mutex
	catalog Catalog
	opts    Options
	state   GameState
	pending []Command
	stats   Stats
	outcome Outcome
}

// New creates a simulation over the given catalog.
// It returns a ConfigurationError if either side of the catalog is empty.
func New(catalog Catalog, opts Options) (*Simulation, error) {
	if len(catalog.Towers) == 0 {
		return nil, ConfigurationError{Code: "EMPTY_TOWERS", Message: "no tower types available"}
	}
	if len(catalog.Enemies) == 0 {
		return nil, ConfigurationError{Code: "EMPTY_ENEMIES", Message: "no enemy types available"}
	}
	if opts.CameraStep == 0 {
		opts.CameraStep = DefaultCameraStep
	}
	if opts.Spawn.WaveDivisor <= 0 {
		opts.Spawn.WaveDivisor = DefaultWaveDivisor
	}

	return &Simulation{
		catalog: catalog,
		opts:    opts,
		state:   NewGameState(opts.Resources, opts.Lives, opts.Camera),
		outcome: OutcomeOngoing,
	}, nil
}

// Catalog returns the session catalog.
func (s *Simulation) Catalog() Catalog {
	return s.catalog
}

// Enqueue schedules a command for the next drain. Safe for concurrent use.
func (s *Simulation) Enqueue(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, cmd)
}

// ApplyCommands drains the command queue without advancing time.
func (s *Simulation) ApplyCommands() []CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drain()
}

// drain applies pending commands in order. Caller holds s.mu.
func (s *Simulation) drain() []CommandResult {
	if len(s.pending) == 0 {
		return nil
	}
	results := make([]CommandResult, 0, len(s.pending))
	for _, cmd := range s.pending {
		results = append(results, CommandResult{Command: cmd, Err: cmd.apply(s)})
	}
	s.pending = s.pending[:0]
	return results
}

// Tick drains queued commands and then advances the game by elapsed seconds.
func (s *Simulation) Tick(elapsed float64) TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := TickResult{Commands: s.drain()}

	result.Spawned = s.opts.Spawn.Spawn(&s.state, s.catalog.Enemies, elapsed)
	AdvanceAll(&s.state, elapsed)
	result.Hits = Resolve(&s.state)
	result.Settlement = Settle(&s.state)
	s.outcome = Evaluate(&s.state)

	s.stats.Ticks++
	s.stats.Spawned += result.Spawned
	s.stats.Defeated += result.Settlement.Defeated
	s.stats.Earned += result.Settlement.Reward

	result.Tick = s.stats.Ticks
	result.Outcome = s.outcome
	return result
}

// Outcome returns the outcome of the most recent tick.
// Before the first tick it is OutcomeOngoing.
func (s *Simulation) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Stats returns a copy of the session counters.
func (s *Simulation) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Snapshot returns a deep copy of the current state for rendering.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}
