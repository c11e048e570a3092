package sim

// Settlement summarizes one settle step.
type Settlement struct {
	Defeated int // Enemies removed this tick
	Reward   int // Resources credited this tick
}

// Settle removes defeated enemies (hit points <= 0) and credits the sum of
// their rewards to the player in a single batch.
func Settle(state *GameState) Settlement {
	var result Settlement

	alive := state.Enemies[:0]
	for _, e := range state.Enemies {
		if e.IsAlive() {
			alive = append(alive, e)
			continue
		}
		result.Defeated++
		result.Reward += e.Type.Reward
	}
	// Drop references held by the tail of the backing array.
	for i := len(alive); i < len(state.Enemies); i++ {
		state.Enemies[i] = Enemy{}
	}
	state.Enemies = alive

	state.Resources += result.Reward
	return result
}
