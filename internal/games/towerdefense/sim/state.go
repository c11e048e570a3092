package sim

// GameState is the authoritative state of one session.
// It is owned by a Simulation; no other component keeps references into
// it across ticks.
type GameState struct {
	Resources int
	Lives     int
	Towers    []Tower
	Enemies   []Enemy
	Camera    Point
}

// NewGameState returns a state with the given economy and an empty map.
func NewGameState(resources, lives int, camera Point) GameState {
	return GameState{
		Resources: resources,
		Lives:     lives,
		Towers:    make([]Tower, 0),
		Enemies:   make([]Enemy, 0),
		Camera:    camera,
	}
}

// TowerView is the read-only render data for a tower.
type TowerView struct {
	Position Point   `msgpack:"pos"`
	Type     string  `msgpack:"type"`
	Range    float64 `msgpack:"range"`
}

// EnemyView is the read-only render data for an enemy.
type EnemyView struct {
	Position     Point  `msgpack:"pos"`
	Type         string `msgpack:"type"`
	HitPoints    int    `msgpack:"hp"`
	MaxHitPoints int    `msgpack:"max_hp"`
}

// Snapshot is a deep copy of the state handed to renderers after a tick.
type Snapshot struct {
	Resources int         `msgpack:"resources"`
	Lives     int         `msgpack:"lives"`
	Towers    []TowerView `msgpack:"towers"`
	Enemies   []EnemyView `msgpack:"enemies"`
	Camera    Point       `msgpack:"camera"`
}

// Snapshot copies the state into a Snapshot.
func (s *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Resources: s.Resources,
		Lives:     s.Lives,
		Towers:    make([]TowerView, len(s.Towers)),
		Enemies:   make([]EnemyView, len(s.Enemies)),
		Camera:    s.Camera,
	}
	for i, t := range s.Towers {
		snap.Towers[i] = TowerView{Position: t.Position, Type: t.Type.Name, Range: t.Type.Range}
	}
	for i, e := range s.Enemies {
		snap.Enemies[i] = EnemyView{
			Position:     e.Position,
			Type:         e.Type.Name,
			HitPoints:    e.HitPoints,
			MaxHitPoints: e.Type.MaxHitPoints,
		}
	}
	return snap
}
