package network

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/lixenwraith/drone-sim/navigation"
	"github.com/lixenwraith/drone-sim/world"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FrameType tags every message on the feed
const FrameType = "snapshot"

// Frame is one feed message
type Frame struct {
	Type     string          `json:"type"`
	Mode     string          `json:"mode"`
	Velocity [2]float64      `json:"velocity"`
	Force    [2]float64      `json:"force"`
	Events   []string        `json:"events,omitempty"` // Event kind names in emission order
	Snapshot *world.Snapshot `json:"snapshot"`
}

// NewFrame builds the feed message for a tick
func NewFrame(res navigation.TickResult) Frame {
	f := Frame{
		Type:     FrameType,
		Mode:     res.Mode.String(),
		Velocity: [2]float64{res.Agent.VX, res.Agent.VY},
		Force:    [2]float64{res.Force.X, res.Force.Y},
		Snapshot: res.Snapshot,
	}
	for _, ev := range res.Events {
		f.Events = append(f.Events, ev.Kind.String())
	}
	return f
}

// Encode marshals the frame
func (f Frame) Encode() ([]byte, error) {
	return json.Marshal(f)
}

// DecodeFrame parses a feed message
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	err := json.Unmarshal(data, &f)
	return f, err
}
