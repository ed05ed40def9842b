package parameter

// Kinematics
const (
	// AgentMass is the drone mass used by the integrator
	AgentMass = 1.0

	// AgentDamping is the fraction of velocity removed after each tick, must stay in [0, 1)
	// 1.0 would cancel velocity every tick and the drone could only move on a single-tick force > 1
	AgentDamping = 0.2

	// ForceClamp bounds each net force component per tick
	ForceClamp = 0.5
)
