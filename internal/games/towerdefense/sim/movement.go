package sim

// Advance moves an enemy toward decreasing x by speed * elapsed.
// Enemies march in a straight line; y never changes.
func Advance(e *Enemy, elapsed float64) {
	e.Position.X -= e.Type.Speed * elapsed
}

// AdvanceAll advances every enemy in the state.
func AdvanceAll(state *GameState, elapsed float64) {
	for i := range state.Enemies {
		Advance(&state.Enemies[i], elapsed)
	}
}
