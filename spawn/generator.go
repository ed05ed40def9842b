// Package spawn places obstacles and targets on the grid.
//
// Placement is uniform over [0,width) x [0,height) with no overlap checks:
// an obstacle may share a cell with a target, another obstacle or the
// drone's start cell. Callers that need disjoint layouts must filter.
package spawn

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/drone-sim/event"
	"github.com/lixenwraith/drone-sim/world"
)

// Generator assigns random cells to world slots
type Generator struct {
	rng  *rand.Rand
	sink event.Sink
}

// NewGenerator creates a generator with the given seed; seed 0 seeds from the clock
func NewGenerator(seed int64, sink event.Sink) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGeneratorWithRand(rand.New(rand.NewSource(seed)), sink)
}

// NewGeneratorWithRand creates a generator on an existing source
func NewGeneratorWithRand(rng *rand.Rand, sink event.Sink) *Generator {
	if sink == nil {
		sink = event.Discard
	}
	return &Generator{rng: rng, sink: sink}
}

// RandomCell returns a uniform cell inside the state's grid
func (g *Generator) RandomCell(st *world.State) world.Cell {
	return world.Cell{
		X: g.rng.Intn(st.Width()),
		Y: g.rng.Intn(st.Height()),
	}
}

// Obstacles fills every obstacle slot
func (g *Generator) Obstacles(st *world.State) {
	for i := 0; i < st.ObstacleCount(); i++ {
		c := g.RandomCell(st)
		st.SetObstacle(i, c)
		g.sink.Emit(event.Event{
			Kind:    event.KindGenerated,
			Payload: event.RespawnPayload{Entity: "obstacle", Slot: i, To: c},
		})
	}
}

// Targets fills every target slot, numbering them slot+1
func (g *Generator) Targets(st *world.State) {
	for i := 0; i < st.TargetCount(); i++ {
		t := world.Target{Cell: g.RandomCell(st), ID: i + 1}
		st.SetTarget(i, t)
		g.sink.Emit(event.Event{
			Kind:    event.KindGenerated,
			Payload: event.RespawnPayload{Entity: "target", Slot: i, To: t.Cell, ID: t.ID},
		})
	}
}

// RespawnObstacle moves obstacle i to a fresh cell and returns the event payload
func (g *Generator) RespawnObstacle(st *world.State, i int) event.RespawnPayload {
	from := st.Obstacle(i)
	to := g.RandomCell(st)
	st.SetObstacle(i, to)
	return event.RespawnPayload{Entity: "obstacle", Slot: i, From: from, To: to}
}

// RespawnTarget moves target i to a fresh cell with identifier i+1
func (g *Generator) RespawnTarget(st *world.State, i int) event.RespawnPayload {
	from := st.Target(i).Cell
	t := world.Target{Cell: g.RandomCell(st), ID: i + 1}
	st.SetTarget(i, t)
	return event.RespawnPayload{Entity: "target", Slot: i, From: from, To: t.Cell, ID: t.ID}
}
