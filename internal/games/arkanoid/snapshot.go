package arkanoid

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/arcadekit/arkanoid/internal/arena"
)

// Snapshot captures the complete session state: the state machine, the
// counters, and every live entity in creation order. It is an
// in-memory test instrument, not persistence; determinism tests
// compare hashes of identically driven games.
type Snapshot struct {
	State string
	Tick  uint64
	Score int
	Lives int

	Entities []EntityState
}

// EntityState is one entity's state in primitive fields. Extra carries
// the variant-specific value: radius for a ball, width for a paddle,
// remaining hits for a brick.
type EntityState struct {
	Kind   string
	X, Y   float64
	VX, VY float64
	Extra  float64
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State: g.state,
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score: g.score,
		Lives: g.lives,
	}
	g.reg.Each(func(e arena.Entity) {
		var es EntityState
		es.Kind = e.Kind().String()
		switch v := e.(type) {
		case *arena.Ball:
			es.X, es.Y = v.Pos.X, v.Pos.Y
			es.VX, es.VY = v.Vel.X, v.Vel.Y
			es.Extra = v.Radius
		case *arena.Paddle:
			es.X, es.Y = v.Pos.X, v.Pos.Y
			es.VX, es.VY = v.Vel.X, v.Vel.Y
			es.Extra = v.W
		case *arena.Brick:
			es.X, es.Y = v.Pos.X, v.Pos.Y
			es.Extra = float64(v.RequiredHits)
		}
		snap.Entities = append(snap.Entities, es)
	})
	return snap
}

// Hash folds the snapshot through xxhash. Identical states hash
// identically; field order is fixed so the hash is stable.
func (s Snapshot) Hash() uint64 {
	d := xxhash.New()

	var buf [8]byte
	u64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	f64 := func(v float64) { u64(math.Float64bits(v)) }

	_, _ = d.WriteString(s.State)
	u64(s.Tick)
	u64(uint64(int64(s.Score))) //#nosec G115 -- two's complement round-trip
	u64(uint64(int64(s.Lives))) //#nosec G115
	u64(uint64(len(s.Entities)))
	for _, e := range s.Entities {
		_, _ = d.WriteString(e.Kind)
		f64(e.X)
		f64(e.Y)
		f64(e.VX)
		f64(e.VY)
		f64(e.Extra)
	}
	return d.Sum64()
}
