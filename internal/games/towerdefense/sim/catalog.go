package sim

import "fmt"

// TowerType is an immutable template for a buildable tower.
type TowerType struct {
	Name       string
	Cost       int
	Damage     int
	Range      float64
	RateOfFire float64 // Shots per second. Stored for display; combat does not consult it.
}

// EnemyType is an immutable template for a spawnable enemy.
type EnemyType struct {
	Name         string
	MaxHitPoints int
	Speed        float64 // World units per second
	Reward       int
}

// Catalog is the fixed set of templates available for a session.
// Towers and enemies hold pointers into it, so entries must not be
// modified after NewCatalog returns.
type Catalog struct {
	Towers  []*TowerType
	Enemies []*EnemyType
}

// NewCatalog copies the given templates into a Catalog.
// Both sequences must be non-empty and no cost, range, rate of fire or
// hit points may be negative.
func NewCatalog(towers []TowerType, enemies []EnemyType) (Catalog, error) {
	if len(towers) == 0 {
		return Catalog{}, ConfigurationError{
			Code:    "EMPTY_TOWERS",
			Message: "tower catalog must contain at least one tower type",
		}
	}
	if len(enemies) == 0 {
		return Catalog{}, ConfigurationError{
			Code:    "EMPTY_ENEMIES",
			Message: "enemy catalog must contain at least one enemy type",
		}
	}

	for _, t := range towers {
		if t.Cost < 0 || t.Range < 0 || t.RateOfFire < 0 {
			return Catalog{}, ConfigurationError{
				Code:    "INVALID_TOWER",
				Message: fmt.Sprintf("tower %q: cost, range and rate of fire must not be negative", t.Name),
			}
		}
	}
	for _, e := range enemies {
		if e.MaxHitPoints < 0 {
			return Catalog{}, ConfigurationError{
				Code:    "INVALID_ENEMY",
				Message: fmt.Sprintf("enemy %q: hit points must not be negative", e.Name),
			}
		}
	}

	c := Catalog{
		Towers:  make([]*TowerType, len(towers)),
		Enemies: make([]*EnemyType, len(enemies)),
	}
	for i := range towers {
		t := towers[i]
		c.Towers[i] = &t
	}
	for i := range enemies {
		e := enemies[i]
		c.Enemies[i] = &e
	}
	return c, nil
}

// Tower returns the tower type at index i.
func (c Catalog) Tower(i int) (*TowerType, error) {
	if i < 0 || i >= len(c.Towers) {
		return nil, fmt.Errorf("tower index %d out of range [0, %d)", i, len(c.Towers))
	}
	return c.Towers[i], nil
}

// TowerIndex returns the index of the tower type with the given name, or -1.
func (c Catalog) TowerIndex(name string) int {
	for i, t := range c.Towers {
		if t.Name == name {
			return i
		}
	}
	return -1
}
