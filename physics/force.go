package physics

import (
	"math"

	"github.com/lixenwraith/drone-sim/world"
)

// RepulsionMagnitude returns the Khatib gradient magnitude at distance d
// Zero outside RhoMax, flat below RhoMin, continuous at RhoMax
func (p RepulsionProfile) RepulsionMagnitude(d float64) float64 {
	if d > p.RhoMax {
		return 0
	}
	e := math.Max(d, p.RhoMin)
	return p.Eta * (1/e - 1/p.RhoMax) / (e * e)
}

// RepulsivePotential returns 0.5*eta*(1/e - 1/rhoMax)^2 inside the radius, 0 outside
func (p RepulsionProfile) RepulsivePotential(d float64) float64 {
	if d > p.RhoMax {
		return 0
	}
	e := math.Max(d, p.RhoMin)
	k := 1/e - 1/p.RhoMax
	return 0.5 * p.Eta * k * k
}

// Repulsion returns the force pushing from obstacle toward from
// An agent exactly on the obstacle has no defined direction and gets zero force
func (p RepulsionProfile) Repulsion(from, obstacle world.Cell) Vec {
	dx := float64(from.X - obstacle.X)
	dy := float64(from.Y - obstacle.Y)
	d := math.Hypot(dx, dy)
	if d == 0 {
		return Vec{}
	}
	mag := p.RepulsionMagnitude(d)
	if mag == 0 {
		return Vec{}
	}
	return Vec{mag * dx / d, mag * dy / d}
}

// AttractionMagnitude returns the pull magnitude at distance d
// xi*d inside RhoGoal, constant xi*RhoGoal beyond it
func (p AttractionProfile) AttractionMagnitude(d float64) float64 {
	if d <= p.RhoGoal {
		return p.Xi * d
	}
	return p.Xi * p.RhoGoal
}

// AttractivePotential returns the parabolic (inside) or conic (outside) potential
func (p AttractionProfile) AttractivePotential(d float64) float64 {
	if d <= p.RhoGoal {
		return 0.5 * p.Xi * d * d
	}
	return p.Xi * p.RhoGoal * (d - 0.5*p.RhoGoal)
}

// Attraction returns the force pulling from toward target
// reached is true when from equals target; the force is then zero and no division happens
func (p AttractionProfile) Attraction(from, target world.Cell) (f Vec, reached bool) {
	dx := float64(target.X - from.X)
	dy := float64(target.Y - from.Y)
	if dx == 0 && dy == 0 {
		return Vec{}, true
	}
	d := math.Hypot(dx, dy)
	mag := p.AttractionMagnitude(d)
	return Vec{mag * dx / d, mag * dy / d}, false
}

// ClampForce limits each component to [-limit, limit]
func ClampForce(f Vec, limit float64) Vec {
	return Vec{
		X: math.Max(-limit, math.Min(f.X, limit)),
		Y: math.Max(-limit, math.Min(f.Y, limit)),
	}
}
