package sim

import "testing"

var (
	testGoblin = EnemyType{Name: "Goblin", MaxHitPoints: 10, Speed: 2.0, Reward: 20}
	testOrc    = EnemyType{Name: "Orc", MaxHitPoints: 20, Speed: 1.5, Reward: 30}
	testArcher = TowerType{Name: "Archer Tower", Cost: 50, Damage: 5, Range: 100, RateOfFire: 1.0}
	testMage   = TowerType{Name: "Mage Tower", Cost: 75, Damage: 10, Range: 200, RateOfFire: 2.0}
)

// newTestCatalog builds the reference two-tower, two-enemy catalog.
func newTestCatalog(t *testing.T) Catalog {
	t.Helper()
	c, err := NewCatalog([]TowerType{testArcher, testMage}, []EnemyType{testGoblin, testOrc})
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	return c
}

// stateWithEnemies returns a state holding n goblins at the given position.
func stateWithEnemies(n int, at Point) GameState {
	goblin := testGoblin
	s := NewGameState(100, 10, Point{})
	for i := 0; i < n; i++ {
		s.Enemies = append(s.Enemies, NewEnemy(&goblin, at))
	}
	return s
}
