package event

import (
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/drone-sim/world"
)

// RespawnPayload describes a slot moved to a fresh cell
type RespawnPayload struct {
	Entity string     `json:"entity"` // "obstacle" or "target"
	Slot   int        `json:"slot"`
	From   world.Cell `json:"from"`
	To     world.Cell `json:"to"`
	ID     int        `json:"id,omitempty"` // Target identifier after respawn
}

func (p RespawnPayload) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("entity", p.Entity)
	enc.AddInt("slot", p.Slot)
	enc.AddString("from", p.From.String())
	enc.AddString("to", p.To.String())
	if p.ID != 0 {
		enc.AddInt("id", p.ID)
	}
	return nil
}

// ForcePayload describes an automatic navigation step
type ForcePayload struct {
	RawX, RawY float64    `json:"-"`
	FX         float64    `json:"fx"`
	FY         float64    `json:"fy"`
	VX         float64    `json:"vx"`
	VY         float64    `json:"vy"`
	Position   world.Cell `json:"position"`
}

func (p ForcePayload) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("raw_x", p.RawX)
	enc.AddFloat64("raw_y", p.RawY)
	enc.AddFloat64("fx", p.FX)
	enc.AddFloat64("fy", p.FY)
	enc.AddFloat64("vx", p.VX)
	enc.AddFloat64("vy", p.VY)
	enc.AddString("position", p.Position.String())
	return nil
}

// MovePayload describes a rejected manual step
type MovePayload struct {
	From      world.Cell `json:"from"`
	Candidate world.Cell `json:"candidate"`
}

func (p MovePayload) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("from", p.From.String())
	enc.AddString("candidate", p.Candidate.String())
	return nil
}
