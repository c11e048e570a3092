package towerdefense

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-towers/internal/games/towerdefense/sim"
)

// Placement is a scripted build order for headless runs: the tower named
// Tower, built with the camera X and Y camera steps away from the origin,
// queued before tick At.
type Placement struct {
	Tower string
	X, Y  int
	At    uint64
}

var errPlacementSyntax = errors.New("want <tower>@<x>,<y>[:<tick>]")

// ParsePlacement parses "Archer@3,-2" or "Archer@3,-2:10".
// Without a tick the tower is queued before the first tick.
func ParsePlacement(s string) (Placement, error) {
	name, rest, ok := strings.Cut(s, "@")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Placement{}, fmt.Errorf("placement %q: %w", s, errPlacementSyntax)
	}

	p := Placement{Tower: name}
	if pos, tick, hasTick := strings.Cut(rest, ":"); hasTick {
		at, err := strconv.ParseUint(strings.TrimSpace(tick), 10, 64)
		if err != nil {
			return Placement{}, fmt.Errorf("placement %q: bad tick: %w", s, err)
		}
		p.At = at
		rest = pos
	}

	xs, ys, ok := strings.Cut(rest, ",")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q: %w", s, errPlacementSyntax)
	}
	var err error
	if p.X, err = strconv.Atoi(strings.TrimSpace(xs)); err != nil {
		return Placement{}, fmt.Errorf("placement %q: bad x: %w", s, err)
	}
	if p.Y, err = strconv.Atoi(strings.TrimSpace(ys)); err != nil {
		return Placement{}, fmt.Errorf("placement %q: bad y: %w", s, err)
	}
	return p, nil
}

// Commands returns the camera moves from camera to the placement target
// followed by the build command.
func (p Placement) Commands(catalog sim.Catalog, camera sim.Point, step float64) ([]sim.Command, error) {
	index := FindTower(catalog, p.Tower)
	if index < 0 {
		return nil, fmt.Errorf("unknown tower %q", p.Tower)
	}
	if step <= 0 {
		return nil, fmt.Errorf("camera step must be positive, got %v", step)
	}

	dx := int(math.Round((float64(p.X)*step - camera.X) / step))
	dy := int(math.Round((float64(p.Y)*step - camera.Y) / step))

	cmds := make([]sim.Command, 0, abs(dx)+abs(dy)+1)
	cmds = appendMoves(cmds, dx, sim.DirRight, sim.DirLeft)
	cmds = appendMoves(cmds, dy, sim.DirUp, sim.DirDown)
	cmds = append(cmds, sim.PlaceTowerCmd{Index: index})
	return cmds, nil
}

// FindTower returns the catalog index of the tower called name, ignoring
// case. A unique prefix such as "mage" for "Mage Tower" also matches.
// It returns -1 when nothing or more than one tower matches.
func FindTower(catalog sim.Catalog, name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return -1
	}
	found := -1
	for i, t := range catalog.Towers {
		lower := strings.ToLower(t.Name)
		if lower == name {
			return i
		}
		if strings.HasPrefix(lower, name) {
			if found >= 0 {
				return -1
			}
			found = i
		}
	}
	return found
}

func appendMoves(cmds []sim.Command, n int, pos, neg sim.Direction) []sim.Command {
	dir := pos
	if n < 0 {
		dir = neg
	}
	for range abs(n) {
		cmds = append(cmds, sim.MoveCameraCmd{Direction: dir})
	}
	return cmds
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
