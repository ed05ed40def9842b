package world

import (
	"fmt"
	"sync/atomic"
)

// State is the blackboard: agent mirror plus fixed obstacle and target slots
// Accessors are not synchronized; one goroutine owns State and other readers use Latest
type State struct {
	width, height int

	agent     Cell
	obstacles []Cell
	targets   []Target

	published atomic.Pointer[Snapshot]
}

// New creates a state with a fixed number of slots, all at the origin until generated
// Panics on non-positive dimensions or negative counts, config validation rejects those first
func New(width, height, obstacles, targets int) *State {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid grid %dx%d", width, height))
	}
	if obstacles < 0 || targets < 0 {
		panic(fmt.Sprintf("world: invalid slot counts %d/%d", obstacles, targets))
	}
	s := &State{
		width:     width,
		height:    height,
		obstacles: make([]Cell, obstacles),
		targets:   make([]Target, targets),
	}
	s.Publish(0)
	return s
}

func (s *State) Width() int         { return s.width }
func (s *State) Height() int        { return s.height }
func (s *State) ObstacleCount() int { return len(s.obstacles) }
func (s *State) TargetCount() int   { return len(s.targets) }

// InBounds reports whether c lies in [0,width) x [0,height)
func (s *State) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < s.width && c.Y >= 0 && c.Y < s.height
}

// Clamp saturates c into the grid
func (s *State) Clamp(c Cell) Cell {
	c.X = max(0, min(c.X, s.width-1))
	c.Y = max(0, min(c.Y, s.height-1))
	return c
}

func (s *State) Agent() Cell {
	return s.agent
}

func (s *State) SetAgent(c Cell) {
	s.mustInBounds("agent", c)
	s.agent = c
}

func (s *State) Obstacle(i int) Cell {
	s.mustSlot("obstacle", i, len(s.obstacles))
	return s.obstacles[i]
}

func (s *State) SetObstacle(i int, c Cell) {
	s.mustSlot("obstacle", i, len(s.obstacles))
	s.mustInBounds("obstacle", c)
	s.obstacles[i] = c
}

func (s *State) Target(i int) Target {
	s.mustSlot("target", i, len(s.targets))
	return s.targets[i]
}

func (s *State) SetTarget(i int, t Target) {
	s.mustSlot("target", i, len(s.targets))
	s.mustInBounds("target", t.Cell)
	s.targets[i] = t
}

// ObstacleAt reports whether any obstacle slot holds c
func (s *State) ObstacleAt(c Cell) bool {
	for _, o := range s.obstacles {
		if o == c {
			return true
		}
	}
	return false
}

// Publish swaps in an immutable snapshot of the current state
func (s *State) Publish(tick uint64) *Snapshot {
	snap := &Snapshot{
		Tick:      tick,
		Width:     s.width,
		Height:    s.height,
		Agent:     s.agent,
		Obstacles: append([]Cell(nil), s.obstacles...),
		Targets:   append([]Target(nil), s.targets...),
	}
	s.published.Store(snap)
	return snap
}

// Latest returns the last published snapshot, safe from any goroutine
func (s *State) Latest() *Snapshot {
	return s.published.Load()
}

func (s *State) mustSlot(kind string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("world: %s index %d out of range [0,%d)", kind, i, n))
	}
}

func (s *State) mustInBounds(kind string, c Cell) {
	if !s.InBounds(c) {
		panic(fmt.Sprintf("world: %s position %v outside %dx%d grid", kind, c, s.width, s.height))
	}
}
