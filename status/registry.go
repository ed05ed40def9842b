package status

import "sync/atomic"

// Counter names maintained by the engine
const (
	TicksTotal       = "ticks"
	TicksManual      = "ticks.manual"
	TicksAuto        = "ticks.auto"
	RespawnObstacles = "respawn.obstacle"
	RespawnTargets   = "respawn.target"
	MovesRejected    = "moves.rejected"
)

// Gauge names maintained by the engine
const (
	VelocityX = "velocity.x"
	VelocityY = "velocity.y"
	ForceX    = "force.x"
	ForceY    = "force.y"
)

// Registry is the run-wide metrics facade
// Writers on the tick goroutine, readers on the render and feed goroutines
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Counter returns the current value of a counter, 0 if never written
func (r *Registry) Counter(name string) int64 {
	return r.Counters.Get(name).Load()
}

// Gauge returns the current value of a gauge
func (r *Registry) Gauge(name string) float64 {
	return r.Gauges.Get(name).Get()
}

// Snapshot copies every metric into a plain map
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.Counters.Count()+r.Gauges.Count())
	r.Counters.Range(func(k string, v *atomic.Int64) { out[k] = float64(v.Load()) })
	r.Gauges.Range(func(k string, v *Gauge) { out[k] = v.Get() })
	return out
}
