package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/drone-sim/world"
)

const eps = 1e-9

// TestRepulsionOutsideRadius verifies no influence beyond RhoMax
func TestRepulsionOutsideRadius(t *testing.T) {
	p := DefaultRepulsion()
	for _, d := range []float64{5.0001, 6, 10, 1e6} {
		if m := p.RepulsionMagnitude(d); m != 0 {
			t.Errorf("Expected zero repulsion at d=%f, got %f", d, m)
		}
	}
}

// TestRepulsionContinuousAtRadius verifies the magnitude approaches zero from inside
func TestRepulsionContinuousAtRadius(t *testing.T) {
	p := DefaultRepulsion()

	if m := p.RepulsionMagnitude(p.RhoMax); math.Abs(m) > eps {
		t.Errorf("Expected ~0 at RhoMax, got %g", m)
	}

	inside := p.RepulsionMagnitude(p.RhoMax - 1e-6)
	outside := p.RepulsionMagnitude(p.RhoMax + 1e-6)
	if math.Abs(inside-outside) > 1e-6 {
		t.Errorf("Discontinuity at RhoMax: inside %g, outside %g", inside, outside)
	}
}

// TestRepulsionPlateau verifies d <= RhoMin behaves as d = RhoMin
func TestRepulsionPlateau(t *testing.T) {
	p := DefaultRepulsion()
	plateau := p.RepulsionMagnitude(p.RhoMin)
	if math.Abs(plateau-0.8) > eps {
		t.Fatalf("Expected plateau 0.8 with design constants, got %f", plateau)
	}
	for _, d := range []float64{0, 0.01, 0.5, 0.999} {
		if m := p.RepulsionMagnitude(d); m != plateau {
			t.Errorf("Expected plateau %f at d=%f, got %f", plateau, d, m)
		}
	}
}

// TestRepulsionMonotonic verifies the gradient grows as the agent closes in
func TestRepulsionMonotonic(t *testing.T) {
	p := DefaultRepulsion()
	prev := p.RepulsionMagnitude(p.RhoMax)
	for d := p.RhoMax - 0.25; d >= p.RhoMin; d -= 0.25 {
		m := p.RepulsionMagnitude(d)
		if m < prev {
			t.Errorf("Repulsion decreased from %f to %f at d=%f", prev, m, d)
		}
		prev = m
	}
}

// TestRepulsionDirection verifies the vector points away from the obstacle
func TestRepulsionDirection(t *testing.T) {
	p := DefaultRepulsion()
	obstacle := world.Cell{X: 10, Y: 10}

	f := p.Repulsion(world.Cell{X: 12, Y: 10}, obstacle)
	if f.X <= 0 || f.Y != 0 {
		t.Errorf("Expected +X push, got %+v", f)
	}
	if math.Abs(f.Magnitude()-p.RepulsionMagnitude(2)) > eps {
		t.Errorf("Vector magnitude %f differs from scalar %f", f.Magnitude(), p.RepulsionMagnitude(2))
	}

	f = p.Repulsion(world.Cell{X: 10, Y: 7}, obstacle)
	if f.Y >= 0 || f.X != 0 {
		t.Errorf("Expected -Y push, got %+v", f)
	}

	if f := p.Repulsion(obstacle, obstacle); !f.IsZero() {
		t.Errorf("Expected zero force on contact, got %+v", f)
	}
}

// TestAttractionDirection verifies the pull points from the agent toward the target for all d > 0
func TestAttractionDirection(t *testing.T) {
	p := DefaultAttraction()
	from := world.Cell{X: 5, Y: 5}

	targets := []world.Cell{
		{X: 6, Y: 5}, {X: 5, Y: 0}, {X: 0, Y: 9}, {X: 40, Y: 30}, {X: 4, Y: 4},
	}
	for _, target := range targets {
		f, reached := p.Attraction(from, target)
		if reached {
			t.Fatalf("Unexpected reached for %v", target)
		}
		dx := float64(target.X - from.X)
		dy := float64(target.Y - from.Y)
		if f.X*dx+f.Y*dy <= 0 {
			t.Errorf("Force %+v does not point toward %v", f, target)
		}
		// Collinear with the offset
		if cross := f.X*dy - f.Y*dx; math.Abs(cross) > 1e-9 {
			t.Errorf("Force %+v not collinear with offset to %v", f, target)
		}
	}
}

// TestAttractionReached verifies the zero-distance short circuit
func TestAttractionReached(t *testing.T) {
	p := DefaultAttraction()
	c := world.Cell{X: 3, Y: 3}
	f, reached := p.Attraction(c, c)
	if !reached {
		t.Error("Expected reached at zero distance")
	}
	if !f.IsZero() || math.IsNaN(f.X) || math.IsNaN(f.Y) {
		t.Errorf("Expected zero force, got %+v", f)
	}
}

// TestAttractionMagnitude verifies parabolic and conic regions meet at RhoGoal
func TestAttractionMagnitude(t *testing.T) {
	p := DefaultAttraction()

	if m := p.AttractionMagnitude(4); m != 4 {
		t.Errorf("Expected xi*d = 4, got %f", m)
	}
	if m := p.AttractionMagnitude(25); m != 10 {
		t.Errorf("Expected xi*rhoGoal = 10 far away, got %f", m)
	}
	if math.Abs(p.AttractionMagnitude(p.RhoGoal)-p.AttractionMagnitude(p.RhoGoal+1e-9)) > 1e-6 {
		t.Error("Attraction magnitude discontinuous at RhoGoal")
	}

	// Potentials meet at the boundary
	in := p.AttractivePotential(p.RhoGoal)
	out := p.AttractivePotential(p.RhoGoal + 1e-9)
	if math.Abs(in-out) > 1e-6 {
		t.Errorf("Potential discontinuous at RhoGoal: %f vs %f", in, out)
	}
	if in != 50 {
		t.Errorf("Expected potential 50 at RhoGoal, got %f", in)
	}
}

// TestRepulsivePotential verifies the potential vanishes at the radius
func TestRepulsivePotential(t *testing.T) {
	p := DefaultRepulsion()
	if v := p.RepulsivePotential(p.RhoMax); math.Abs(v) > eps {
		t.Errorf("Expected zero potential at RhoMax, got %f", v)
	}
	if v := p.RepulsivePotential(0); math.Abs(v-0.32) > eps {
		t.Errorf("Expected clamped potential 0.32, got %f", v)
	}
}

// TestClampForce verifies per-component saturation
func TestClampForce(t *testing.T) {
	got := ClampForce(Vec{0.8, -0.3}, 0.5)
	if got != (Vec{0.5, -0.3}) {
		t.Errorf("Expected (0.5, -0.3), got %+v", got)
	}

	got = ClampForce(Vec{-4, 9}, 0.5)
	if got != (Vec{-0.5, 0.5}) {
		t.Errorf("Expected (-0.5, 0.5), got %+v", got)
	}
}
