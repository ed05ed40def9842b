package event

import "fmt"

// Kind identifies a navigation event
type Kind uint8

const (
	// KindRespawnObstacle relocates an obstacle the drone landed on
	// Trigger: Navigator collision check | Payload: RespawnPayload
	KindRespawnObstacle Kind = iota + 1

	// KindRespawnTarget relocates and renumbers a reached target
	// Trigger: Navigator reach check | Payload: RespawnPayload
	KindRespawnTarget

	// KindForceApplied records the clamped net force of an automatic tick
	// Trigger: Navigator auto mode | Payload: ForcePayload
	KindForceApplied

	// KindMoveRejected records a manual step into an obstacle
	// Trigger: Navigator manual mode | Payload: MovePayload
	KindMoveRejected

	// KindGenerated records initial placement of a slot
	// Trigger: spawn.Generator at startup | Payload: RespawnPayload
	KindGenerated
)

var kindNames = map[Kind]string{
	KindRespawnObstacle: "respawn_obstacle",
	KindRespawnTarget:   "respawn_target",
	KindForceApplied:    "force_applied",
	KindMoveRejected:    "move_rejected",
	KindGenerated:       "generated",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText emits the wire name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a wire name
func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("event: unknown kind %q", b)
}

// Event is one structured record emitted by the core
type Event struct {
	Kind    Kind   `json:"kind"`
	Tick    uint64 `json:"tick"`
	Payload any    `json:"payload,omitempty"`
}
