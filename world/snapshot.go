package world

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Snapshot is an immutable copy of State taken after a tick
// Renderers and feed clients read snapshots, never State
type Snapshot struct {
	Tick      uint64   `json:"tick"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Agent     Cell     `json:"agent"`
	Obstacles []Cell   `json:"obstacles"`
	Targets   []Target `json:"targets"`
}

// FeatureCollection renders the snapshot as GeoJSON in grid coordinates
// The grid boundary is a polygon feature; entities are points tagged with a "kind" property
func (s *Snapshot) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	w, h := float64(s.Width), float64(s.Height)
	grid := geojson.NewFeature(orb.Polygon{{{0, 0}, {w, 0}, {w, h}, {0, h}, {0, 0}}})
	grid.Properties["kind"] = "grid"
	grid.Properties["tick"] = s.Tick
	fc.Append(grid)

	agent := geojson.NewFeature(s.Agent.Point())
	agent.Properties["kind"] = "agent"
	fc.Append(agent)

	for i, o := range s.Obstacles {
		f := geojson.NewFeature(o.Point())
		f.Properties["kind"] = "obstacle"
		f.Properties["slot"] = i
		fc.Append(f)
	}

	for i, t := range s.Targets {
		f := geojson.NewFeature(t.Point())
		f.Properties["kind"] = "target"
		f.Properties["slot"] = i
		f.Properties["id"] = t.ID
		fc.Append(f)
	}

	return fc
}
