package sim

import "testing"

func TestAdvance(t *testing.T) {
	goblin := testGoblin
	orc := testOrc

	tests := []struct {
		name    string
		typ     *EnemyType
		start   Point
		elapsed float64
	}{
		{"reference frame", &goblin, Pt(0, 0), 0.01},
		{"long frame", &orc, Pt(12.5, -3), 0.25},
		{"variable frame", &goblin, Pt(-100, 40), 0.0167},
		{"one second", &orc, Pt(5, 5), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEnemy(tc.typ, tc.start)
			Advance(&e, tc.elapsed)

			expectedX := tc.start.X - tc.typ.Speed*tc.elapsed
			if e.Position.X != expectedX {
				t.Errorf("X = %v, expected %v", e.Position.X, expectedX)
			}
			if e.Position.X >= tc.start.X {
				t.Errorf("X did not decrease: %v -> %v", tc.start.X, e.Position.X)
			}
			if e.Position.Y != tc.start.Y {
				t.Errorf("Y changed: %v -> %v", tc.start.Y, e.Position.Y)
			}
		})
	}
}

func TestAdvanceAll(t *testing.T) {
	state := stateWithEnemies(4, Pt(10, 1))
	AdvanceAll(&state, 0.5)

	for i, e := range state.Enemies {
		if e.Position != Pt(9, 1) {
			t.Errorf("enemy %d at %+v, expected {9 1}", i, e.Position)
		}
	}
}
