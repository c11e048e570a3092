package sim

// DefaultWaveDivisor is the number of live enemies per additional spawn.
const DefaultWaveDivisor = 10

// SpawnRules controls where and how many enemies enter the map each tick.
type SpawnRules struct {
	Origin      Point // Every enemy spawns here
	WaveDivisor int   // Wave size is live/WaveDivisor + 1
	MaxEnemies  int   // Caps live enemies after a spawn; 0 means no cap
}

// DefaultSpawnRules spawns at the world origin with a divisor of 10.
func DefaultSpawnRules() SpawnRules {
	return SpawnRules{
		Origin:      Point{},
		WaveDivisor: DefaultWaveDivisor,
	}
}

// WaveSize returns the number of enemies spawned in a tick that starts
// with live enemies on the map.
//
// The size follows the live count, not the total ever spawned: killing
// enemies lowers the pressure, letting them survive raises it.
func (r SpawnRules) WaveSize(live int) int {
	d := r.WaveDivisor
	if d <= 0 {
		d = DefaultWaveDivisor
	}
	return live/d + 1
}

// Spawn appends one wave of enemies to the state and returns how many
// were added. All enemies of a wave share the type
// enemyTypes[wave % len(enemyTypes)].
//
// With MaxEnemies set, the wave is truncated so the live count never
// exceeds the cap; the enemy type is still chosen from the full wave size.
//
// enemyTypes must be non-empty; Simulation checks this once at construction.
// The elapsed time is accepted for symmetry with the other stages and is
// not used.
func (r SpawnRules) Spawn(state *GameState, enemyTypes []*EnemyType, _ float64) int {
	live := len(state.Enemies)
	wave := r.WaveSize(live)
	t := enemyTypes[wave%len(enemyTypes)]

	n := wave
	if r.MaxEnemies > 0 {
		n = max(0, min(wave, r.MaxEnemies-live))
	}
	for i := 0; i < n; i++ {
		state.Enemies = append(state.Enemies, NewEnemy(t, r.Origin))
	}
	return n
}

// Spawn runs one spawn step with DefaultSpawnRules.
func Spawn(state *GameState, enemyTypes []*EnemyType, elapsed float64) int {
	return DefaultSpawnRules().Spawn(state, enemyTypes, elapsed)
}
