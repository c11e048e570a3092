package sim

// Direction is a camera movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DefaultCameraStep is how far one camera command moves the camera.
const DefaultCameraStep = 1.0

// PlaceTower builds a tower of type t at the camera position.
// When resources are short it returns an *InsufficientResourcesError and
// leaves the state untouched.
func PlaceTower(state *GameState, t *TowerType) error {
	if state.Resources < t.Cost {
		return &InsufficientResourcesError{
			Tower: t.Name,
			Have:  state.Resources,
			Cost:  t.Cost,
		}
	}
	state.Towers = append(state.Towers, Tower{Position: state.Camera, Type: t})
	state.Resources -= t.Cost
	return nil
}

// MoveCamera moves the camera one step in the given direction.
// Up is +y.
func MoveCamera(state *GameState, dir Direction, step float64) {
	switch dir {
	case DirUp:
		state.Camera = state.Camera.Add(0, step)
	case DirDown:
		state.Camera = state.Camera.Add(0, -step)
	case DirLeft:
		state.Camera = state.Camera.Add(-step, 0)
	case DirRight:
		state.Camera = state.Camera.Add(step, 0)
	}
}
