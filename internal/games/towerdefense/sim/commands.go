package sim

import "fmt"

// Command is a player intent applied between ticks.
type Command interface {
	apply(s *Simulation) error
	fmt.Stringer
}

// MoveCameraCmd moves the camera one step.
type MoveCameraCmd struct {
	Direction Direction
}

func (c MoveCameraCmd) apply(s *Simulation) error {
	MoveCamera(&s.state, c.Direction, s.opts.CameraStep)
	return nil
}

func (c MoveCameraCmd) String() string {
	return "move camera " + c.Direction.String()
}

// PlaceTowerCmd builds the catalog tower at Index at the camera position.
type PlaceTowerCmd struct {
	Index int
}

func (c PlaceTowerCmd) apply(s *Simulation) error {
	t, err := s.catalog.Tower(c.Index)
	if err != nil {
		return err
	}
	if err := PlaceTower(&s.state, t); err != nil {
		return err
	}
	s.stats.TowersBuilt++
	s.stats.Spent += t.Cost
	return nil
}

func (c PlaceTowerCmd) String() string {
	return fmt.Sprintf("place tower #%d", c.Index)
}

// CommandResult records how a queued command was applied.
type CommandResult struct {
	Command Command
	Err     error
}
