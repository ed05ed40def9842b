package parameter

// Slot capacities; collection sizes never change within a run
const (
	// ObstacleCapacity is the maximum number of obstacle slots
	ObstacleCapacity = 10

	// TargetCapacity is the maximum number of target slots
	TargetCapacity = 6
)

// Default world
const (
	// GridWidth, GridHeight fit an 80x24 terminal with header and status rows
	GridWidth  = 80
	GridHeight = 22

	DefaultObstacles = 10
	DefaultTargets   = 5

	// AgentStartX, AgentStartY is the drone start cell
	AgentStartX = 10
	AgentStartY = 10
)
