package physics

import "github.com/lixenwraith/drone-sim/parameter"

// RepulsionProfile parameterizes the obstacle potential
type RepulsionProfile struct {
	Eta    float64 // Gradient scale
	RhoMin float64 // Inner clamp distance (cells)
	RhoMax float64 // Influence radius (cells)
}

// AttractionProfile parameterizes the target potential
type AttractionProfile struct {
	Xi      float64 // Gradient scale
	RhoGoal float64 // Parabolic/conic switch radius (cells)
}

// KineticProfile parameterizes the integrator
type KineticProfile struct {
	Mass    float64
	Damping float64 // Fraction of velocity removed per tick, [0, 1)
}

// DefaultRepulsion returns the design repulsion profile
func DefaultRepulsion() RepulsionProfile {
	return RepulsionProfile{
		Eta:    parameter.RepulsionEta,
		RhoMin: parameter.RepulsionRhoMin,
		RhoMax: parameter.RepulsionRhoMax,
	}
}

// DefaultAttraction returns the design attraction profile
func DefaultAttraction() AttractionProfile {
	return AttractionProfile{
		Xi:      parameter.AttractionXi,
		RhoGoal: parameter.AttractionRhoGoal,
	}
}

// DefaultKinetic returns the design kinetic profile
func DefaultKinetic() KineticProfile {
	return KineticProfile{
		Mass:    parameter.AgentMass,
		Damping: parameter.AgentDamping,
	}
}
