package towerdefense

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-towers/internal/games/towerdefense/sim"
	"github.com/vovakirdan/tui-towers/internal/storage"
)

// Frame is a serializable capture of one tick: the world snapshot plus
// the counters needed to replay or inspect a session offline.
type Frame struct {
	Mode     string       `msgpack:"mode"`
	Tick     uint64       `msgpack:"tick"`
	Outcome  string       `msgpack:"outcome"`
	Selected int          `msgpack:"selected"`
	Stats    sim.Stats    `msgpack:"stats"`
	World    sim.Snapshot `msgpack:"world"`
}

// Snapshot returns a deep copy of the current world.
func (g *Game) Snapshot() sim.Snapshot {
	if g.sim == nil {
		return sim.Snapshot{}
	}
	return g.sim.Snapshot()
}

// Frame captures the current tick.
func (g *Game) Frame() Frame {
	f := Frame{
		Mode:     g.mode.ID,
		Tick:     g.last.Tick,
		Outcome:  g.last.Outcome.String(),
		Selected: g.selected,
		World:    g.Snapshot(),
	}
	if g.sim != nil {
		f.Stats = g.sim.Stats()
	}
	return f
}

// EncodeFrame serializes a frame with MessagePack.
func EncodeFrame(f Frame) ([]byte, error) {
	data, err := msgpack.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("towerdefense: cannot encode frame: %w", err)
	}
	return data, nil
}

// DecodeFrame parses a frame produced by EncodeFrame.
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("towerdefense: cannot decode frame: %w", err)
	}
	return f, nil
}

// SessionRecord summarizes the session for the session store.
func (g *Game) SessionRecord() storage.Session {
	return SessionFrom(g.Frame())
}

// SessionFrom builds a store record from a frame.
func SessionFrom(f Frame) storage.Session {
	return storage.Session{
		GameID:      f.Mode,
		Outcome:     f.Outcome,
		Ticks:       f.Stats.Ticks,
		Resources:   f.World.Resources,
		Lives:       f.World.Lives,
		TowersBuilt: f.Stats.TowersBuilt,
		Spawned:     f.Stats.Spawned,
		Defeated:    f.Stats.Defeated,
		Earned:      f.Stats.Earned,
		Spent:       f.Stats.Spent,
	}
}
