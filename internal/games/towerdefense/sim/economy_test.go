package sim

import "testing"

func TestSettle(t *testing.T) {
	goblin := testGoblin // reward 20
	orc := testOrc       // reward 30

	state := NewGameState(100, 10, Point{})
	state.Enemies = []Enemy{
		{Position: Pt(1, 0), HitPoints: 5, Type: &goblin},
		{Position: Pt(2, 0), HitPoints: 0, Type: &goblin},
		{Position: Pt(3, 0), HitPoints: -7, Type: &orc},
		{Position: Pt(4, 0), HitPoints: 1, Type: &orc},
		{Position: Pt(5, 0), HitPoints: 0, Type: &orc},
	}

	result := Settle(&state)

	if result.Defeated != 3 {
		t.Errorf("Defeated = %d, expected 3", result.Defeated)
	}
	if result.Reward != 20+30+30 {
		t.Errorf("Reward = %d, expected 80", result.Reward)
	}
	if state.Resources != 180 {
		t.Errorf("Resources = %d, expected 180", state.Resources)
	}

	// Survivors keep their insertion order
	if len(state.Enemies) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(state.Enemies))
	}
	if state.Enemies[0].Position != Pt(1, 0) || state.Enemies[1].Position != Pt(4, 0) {
		t.Errorf("survivors out of order: %+v", state.Enemies)
	}
}

func TestSettleConservation(t *testing.T) {
	goblin := testGoblin
	orc := testOrc

	for seed := 0; seed < 20; seed++ {
		state := NewGameState(seed*7, 10, Point{})
		expectedReward := 0
		for i := 0; i < 15; i++ {
			typ := &goblin
			if (i+seed)%3 == 0 {
				typ = &orc
			}
			hp := (i*seed)%9 - 3
			if hp <= 0 {
				expectedReward += typ.Reward
			}
			state.Enemies = append(state.Enemies, Enemy{HitPoints: hp, Type: typ})
		}
		before := state.Resources

		Settle(&state)

		if state.Resources != before+expectedReward {
			t.Errorf("seed %d: Resources = %d, expected %d", seed, state.Resources, before+expectedReward)
		}
		for _, e := range state.Enemies {
			if !e.IsAlive() {
				t.Errorf("seed %d: defeated enemy left on map: %+v", seed, e)
			}
		}
	}
}

func TestSettleNothingDefeated(t *testing.T) {
	state := stateWithEnemies(3, Point{})

	result := Settle(&state)

	if result != (Settlement{}) {
		t.Errorf("Settle() = %+v, expected zero settlement", result)
	}
	if len(state.Enemies) != 3 || state.Resources != 100 {
		t.Errorf("state changed: %d enemies, %d resources", len(state.Enemies), state.Resources)
	}
}
