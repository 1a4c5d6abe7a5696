package angry

import (
	"fmt"
	"hash/fnv"
	"math"
)

// Snapshot contains the complete simulation state of a game.
// Positions are stored in thousandths of a world unit so that snapshots
// compare exactly.
type Snapshot struct {
	Tick        uint64
	Stage       Stage
	Won         bool
	Lost        bool
	Score       int
	Targets     int
	Projectiles int
	Paused      bool
	ProjX       int64
	ProjY       int64
	VecX        int64
	VecY        int64
	Launched    bool
	Visible     []bool
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	vec := g.projectile.Motion.Vector()
	visible := make([]bool, len(g.targets))
	for i, t := range g.targets {
		visible[i] = t.Visible
	}

	return Snapshot{
		Tick:        uint64(max(0, g.tickCount)), //nolint:gosec // tickCount is never negative
		Stage:       g.round.Stage,
		Won:         g.round.Won,
		Lost:        g.round.Lost,
		Score:       g.round.Score,
		Targets:     g.round.TargetsRemaining,
		Projectiles: g.round.ProjectilesRemaining,
		Paused:      g.paused,
		ProjX:       milli(g.projectile.Box.X),
		ProjY:       milli(g.projectile.Box.Y),
		VecX:        milli(vec.X),
		VecY:        milli(vec.Y),
		Launched:    g.projectile.Motion.Launched(),
		Visible:     visible,
	}
}

// Hash returns a 64-bit FNV-1a hash of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%t|%t|%d|%d|%d|%t|%d|%d|%d|%d|%t|%v",
		s.Tick, s.Stage, s.Won, s.Lost, s.Score, s.Targets, s.Projectiles, s.Paused,
		s.ProjX, s.ProjY, s.VecX, s.VecY, s.Launched, s.Visible)
	return h.Sum64()
}

func milli(v float64) int64 {
	return int64(math.Round(v * 1000))
}
