package sim

import "testing"

func TestWaveSize(t *testing.T) {
	rules := DefaultSpawnRules()

	tests := []struct {
		live, expected int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{20, 3},
		{95, 10},
		{100, 11},
	}

	for _, tc := range tests {
		if got := rules.WaveSize(tc.live); got != tc.expected {
			t.Errorf("WaveSize(%d) = %d, expected %d", tc.live, got, tc.expected)
		}
	}
}

func TestWaveSizeFallsBackToDefaultDivisor(t *testing.T) {
	rules := SpawnRules{WaveDivisor: 0}
	if got := rules.WaveSize(25); got != 3 {
		t.Errorf("WaveSize(25) with zero divisor = %d, expected 3", got)
	}
}

func TestSpawnCount(t *testing.T) {
	c := newTestCatalog(t)

	for _, n := range []int{0, 5, 10, 33, 120} {
		state := stateWithEnemies(n, Pt(-40, 0))
		wave := n/10 + 1

		added := Spawn(&state, c.Enemies, 0.01)

		if added != wave {
			t.Errorf("n=%d: Spawn() returned %d, expected %d", n, added, wave)
		}
		if len(state.Enemies) != n+wave {
			t.Fatalf("n=%d: expected %d enemies after spawn, got %d", n, n+wave, len(state.Enemies))
		}

		expectedType := c.Enemies[wave%len(c.Enemies)]
		for _, e := range state.Enemies[n:] {
			if e.Type != expectedType {
				t.Errorf("n=%d: spawned %s, expected %s", n, e.Type.Name, expectedType.Name)
			}
			if e.HitPoints != e.Type.MaxHitPoints {
				t.Errorf("n=%d: spawned with %d hp, expected %d", n, e.HitPoints, e.Type.MaxHitPoints)
			}
			if e.Position != (Point{}) {
				t.Errorf("n=%d: spawned at %+v, expected origin", n, e.Position)
			}
		}
	}
}

func TestSpawnUsesConfiguredOrigin(t *testing.T) {
	c := newTestCatalog(t)
	rules := SpawnRules{Origin: Pt(300, -12), WaveDivisor: 10}

	state := NewGameState(0, 1, Point{})
	rules.Spawn(&state, c.Enemies, 0.01)

	if len(state.Enemies) != 1 {
		t.Fatalf("expected 1 enemy, got %d", len(state.Enemies))
	}
	if state.Enemies[0].Position != Pt(300, -12) {
		t.Errorf("spawned at %+v, expected {300 -12}", state.Enemies[0].Position)
	}
}

func TestSpawnDoesNotTouchExistingEnemies(t *testing.T) {
	c := newTestCatalog(t)
	state := stateWithEnemies(3, Pt(-7, 2))
	state.Enemies[1].HitPoints = 4

	Spawn(&state, c.Enemies, 0.01)

	if state.Enemies[1].HitPoints != 4 || state.Enemies[1].Position != Pt(-7, 2) {
		t.Errorf("existing enemy changed by spawn: %+v", state.Enemies[1])
	}
}

func TestSpawnRespectsCap(t *testing.T) {
	c := newTestCatalog(t)
	rules := SpawnRules{WaveDivisor: 10, MaxEnemies: 25}

	tests := []struct {
		live, added int
	}{
		{0, 1},
		{20, 3},
		{24, 1},
		{25, 0},
		{40, 0},
	}

	for _, tc := range tests {
		state := stateWithEnemies(tc.live, Point{})
		if got := rules.Spawn(&state, c.Enemies, 0.01); got != tc.added {
			t.Errorf("live=%d: Spawn() = %d, expected %d", tc.live, got, tc.added)
		}
		if len(state.Enemies) != tc.live+tc.added {
			t.Errorf("live=%d: %d enemies after spawn, expected %d", tc.live, len(state.Enemies), tc.live+tc.added)
		}
	}
}

func TestSpawnCapKeepsWaveType(t *testing.T) {
	c := newTestCatalog(t)
	rules := SpawnRules{WaveDivisor: 10, MaxEnemies: 11}

	// Full wave is 2, so the type is Enemies[0] even though only one fits.
	state := stateWithEnemies(10, Point{})
	rules.Spawn(&state, c.Enemies, 0.01)

	if got := state.Enemies[10].Type; got != c.Enemies[0] {
		t.Errorf("spawned %s, expected %s", got.Name, c.Enemies[0].Name)
	}
}
