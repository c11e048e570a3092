package sim

// Tower is a placed tower. Towers are never removed during a session.
type Tower struct {
	Position Point
	Type     *TowerType
}

// Enemy is a live enemy unit.
type Enemy struct {
	Position  Point
	HitPoints int
	Type      *EnemyType
}

// NewEnemy creates an enemy at full health at the given position.
func NewEnemy(t *EnemyType, at Point) Enemy {
	return Enemy{
		Position:  at,
		HitPoints: t.MaxHitPoints,
		Type:      t,
	}
}

// ApplyDamage subtracts damage from the enemy's hit points.
// Hit points may go negative; settlement treats anything <= 0 as defeated.
func (e *Enemy) ApplyDamage(damage int) {
	e.HitPoints -= damage
}

// IsAlive reports whether the enemy still has hit points left.
func (e *Enemy) IsAlive() bool {
	return e.HitPoints > 0
}
