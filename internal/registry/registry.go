// Package registry maps game mode IDs to factories. Modes register
// themselves from init(), so the platform can list and start them
// without importing each game directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-towers/internal/core"
)

// Game is a playable mode driven frame by frame by the platform.
type Game interface {
	// ID is the stable identifier used by the CLI and the session store.
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset starts a fresh session. Called at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies this frame's input and advances the game by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, game-over and pause flags.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
	Order       int // Menu position, lower first
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. It panics on an empty or duplicate ID.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered modes sorted by Order, then ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the info for a registered mode.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
