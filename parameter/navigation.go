package parameter

// Navigation - Repulsion (Khatib potential around obstacles)
const (
	// RepulsionEta scales the repulsive gradient
	RepulsionEta = 1.0

	// RepulsionRhoMin is the inner clamp distance; closer obstacles repel as if at this distance
	RepulsionRhoMin = 1.0

	// RepulsionRhoMax is the influence radius; obstacles farther than this exert no force
	RepulsionRhoMax = 5.0
)

// Navigation - Attraction (parabolic inside RhoGoal, conic outside)
const (
	// AttractionXi scales the attractive gradient
	AttractionXi = 1.0

	// AttractionRhoGoal is the switch radius between the parabolic and conic potentials (cells)
	AttractionRhoGoal = 10.0
)
