package sim

// Resolve applies one tick of tower fire and returns the number of hits.
//
// Every tower damages every enemy strictly inside its range, once per tick.
// There is no target selection, cooldown or falloff, so the result does not
// depend on iteration order. RateOfFire is not consulted.
func Resolve(state *GameState) int {
	hits := 0
	for _, tower := range state.Towers {
		for i := range state.Enemies {
			enemy := &state.Enemies[i]
			if tower.Position.DistanceTo(enemy.Position) < tower.Type.Range {
				enemy.ApplyDamage(tower.Type.Damage)
				hits++
			}
		}
	}
	return hits
}
