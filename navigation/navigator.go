// Package navigation runs the per-tick drone state machine.
//
// A tick reads one intent. Quit ends the run. A motion intent moves the
// drone one cell unless an obstacle occupies it. No intent lets the
// potential field steer: obstacle repulsion plus target attraction,
// clamped per axis and integrated. Every non-quit tick then saturates the
// drone into the grid, respawns obstacles and targets sharing its cell,
// mirrors the drone into the world state and publishes a snapshot.
package navigation

import (
	"time"

	"github.com/lixenwraith/drone-sim/event"
	"github.com/lixenwraith/drone-sim/input"
	"github.com/lixenwraith/drone-sim/parameter"
	"github.com/lixenwraith/drone-sim/physics"
	"github.com/lixenwraith/drone-sim/spawn"
	"github.com/lixenwraith/drone-sim/world"
)

// Clock supplies tick timestamps
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config holds the force model and integrator parameters
type Config struct {
	Repulsion  physics.RepulsionProfile
	Attraction physics.AttractionProfile
	Kinetic    physics.KineticProfile
	ForceClamp float64
}

// DefaultConfig returns the design parameters
func DefaultConfig() Config {
	return Config{
		Repulsion:  physics.DefaultRepulsion(),
		Attraction: physics.DefaultAttraction(),
		Kinetic:    physics.DefaultKinetic(),
		ForceClamp: parameter.ForceClamp,
	}
}

// Mode is how the drone moved during a tick
type Mode uint8

const (
	ModeAuto Mode = iota
	ModeManual
	ModeQuit
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	case ModeQuit:
		return "quit"
	}
	return "auto"
}

// TickResult is everything an outer loop needs after a tick
// Moved and Timestamp feed the inactivity watchdog
type TickResult struct {
	Tick      uint64
	Mode      Mode
	Quit      bool
	Moved     bool // Manual move changed the drone cell
	Timestamp time.Time
	Agent     physics.Agent
	Force     physics.Vec // Clamped net force, zero on manual ticks
	Snapshot  *world.Snapshot
	Events    []event.Event
}

// Manual reports whether the operator drove this tick
func (r TickResult) Manual() bool {
	return r.Mode == ModeManual
}

// Navigator owns the drone and mutates the world state once per tick
// Not safe for concurrent use; readers on other goroutines use world.State.Latest
type Navigator struct {
	cfg   Config
	state *world.State
	gen   *spawn.Generator
	sink  event.Sink
	clock Clock

	agent physics.Agent
	tick  uint64
}

// Option customizes a Navigator
type Option func(*Navigator)

// WithSink routes tick events to sink
func WithSink(sink event.Sink) Option {
	return func(n *Navigator) {
		if sink != nil {
			n.sink = sink
		}
	}
}

// WithClock replaces the wall clock
func WithClock(c Clock) Option {
	return func(n *Navigator) {
		if c != nil {
			n.clock = c
		}
	}
}

// New creates a navigator starting from the state's current agent cell
func New(st *world.State, gen *spawn.Generator, cfg Config, opts ...Option) *Navigator {
	start := st.Agent()
	n := &Navigator{
		cfg:   cfg,
		state: st,
		gen:   gen,
		sink:  event.Discard,
		clock: systemClock{},
		agent: physics.Agent{X: start.X, Y: start.Y},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Agent returns a copy of the drone
func (n *Navigator) Agent() physics.Agent {
	return n.agent
}

// TickCount returns the number of completed ticks
func (n *Navigator) TickCount() uint64 {
	return n.tick
}

// Tick advances the simulation by one intent
func (n *Navigator) Tick(in input.Intent) TickResult {
	if in.Type == input.IntentQuit {
		return TickResult{
			Tick:      n.tick,
			Mode:      ModeQuit,
			Quit:      true,
			Timestamp: n.clock.Now(),
			Agent:     n.agent,
			Snapshot:  n.state.Latest(),
		}
	}

	n.tick++
	res := TickResult{Tick: n.tick, Timestamp: n.clock.Now()}
	before := n.cell()

	if in.Type == input.IntentMotion {
		res.Mode = ModeManual
		n.manual(in.Motion, &res)
	} else {
		res.Mode = ModeAuto
		n.auto(&res)
	}

	pos := n.state.Clamp(n.cell())
	n.agent.X, n.agent.Y = pos.X, pos.Y

	n.resolveContacts(pos, &res)

	n.state.SetAgent(pos)
	res.Snapshot = n.state.Publish(n.tick)
	res.Agent = n.agent
	res.Moved = res.Mode == ModeManual && pos != before

	// A failing sink never aborts the tick
	for _, ev := range res.Events {
		event.EmitSafe(n.sink, ev)
	}
	return res
}

// NetForce returns the unclamped potential field force at c
// Targets at distance zero are skipped
func (n *Navigator) NetForce(c world.Cell) physics.Vec {
	var f physics.Vec
	for i := 0; i < n.state.ObstacleCount(); i++ {
		f = f.Add(n.cfg.Repulsion.Repulsion(c, n.state.Obstacle(i)))
	}
	for i := 0; i < n.state.TargetCount(); i++ {
		pull, reached := n.cfg.Attraction.Attraction(c, n.state.Target(i).Cell)
		if reached {
			continue
		}
		f = f.Add(pull)
	}
	return f
}

func (n *Navigator) manual(op input.MotionOp, res *TickResult) {
	dx, dy := op.Delta()
	from := n.cell()
	candidate := from.Add(dx, dy)

	if n.state.ObstacleAt(candidate) {
		res.Events = append(res.Events, event.Event{
			Kind:    event.KindMoveRejected,
			Tick:    n.tick,
			Payload: event.MovePayload{From: from, Candidate: candidate},
		})
		return
	}

	n.agent.X, n.agent.Y = candidate.X, candidate.Y
	physics.Stop(&n.agent)
}

func (n *Navigator) auto(res *TickResult) {
	raw := n.NetForce(n.cell())
	f := physics.ClampForce(raw, n.cfg.ForceClamp)
	physics.Integrate(&n.agent, f, n.cfg.Kinetic)

	res.Force = f
	res.Events = append(res.Events, event.Event{
		Kind: event.KindForceApplied,
		Tick: n.tick,
		Payload: event.ForcePayload{
			RawX:     raw.X,
			RawY:     raw.Y,
			FX:       f.X,
			FY:       f.Y,
			VX:       n.agent.VX,
			VY:       n.agent.VY,
			Position: n.state.Clamp(n.cell()),
		},
	})
}

// resolveContacts respawns every obstacle and target on pos; the drone itself is untouched
func (n *Navigator) resolveContacts(pos world.Cell, res *TickResult) {
	for i := 0; i < n.state.ObstacleCount(); i++ {
		if n.state.Obstacle(i) != pos {
			continue
		}
		res.Events = append(res.Events, event.Event{
			Kind:    event.KindRespawnObstacle,
			Tick:    n.tick,
			Payload: n.gen.RespawnObstacle(n.state, i),
		})
	}

	for i := 0; i < n.state.TargetCount(); i++ {
		if n.state.Target(i).Cell != pos {
			continue
		}
		res.Events = append(res.Events, event.Event{
			Kind:    event.KindRespawnTarget,
			Tick:    n.tick,
			Payload: n.gen.RespawnTarget(n.state, i),
		})
	}
}

func (n *Navigator) cell() world.Cell {
	return world.Cell{X: n.agent.X, Y: n.agent.Y}
}
