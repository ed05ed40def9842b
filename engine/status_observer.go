package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/drone-sim/event"
	"github.com/lixenwraith/drone-sim/navigation"
	"github.com/lixenwraith/drone-sim/status"
)

// StatusObserver folds tick results into the metrics registry
type StatusObserver struct {
	ticks, manual, auto *atomic.Int64
	obstacleRespawns    *atomic.Int64
	targetRespawns      *atomic.Int64
	rejected            *atomic.Int64
	vx, vy, fx, fy      *status.Gauge
}

// NewStatusObserver caches metric pointers from reg
func NewStatusObserver(reg *status.Registry) *StatusObserver {
	return &StatusObserver{
		ticks:            reg.Counters.Get(status.TicksTotal),
		manual:           reg.Counters.Get(status.TicksManual),
		auto:             reg.Counters.Get(status.TicksAuto),
		obstacleRespawns: reg.Counters.Get(status.RespawnObstacles),
		targetRespawns:   reg.Counters.Get(status.RespawnTargets),
		rejected:         reg.Counters.Get(status.MovesRejected),
		vx:               reg.Gauges.Get(status.VelocityX),
		vy:               reg.Gauges.Get(status.VelocityY),
		fx:               reg.Gauges.Get(status.ForceX),
		fy:               reg.Gauges.Get(status.ForceY),
	}
}

func (s *StatusObserver) Observe(res navigation.TickResult) {
	s.ticks.Add(1)
	if res.Manual() {
		s.manual.Add(1)
	} else {
		s.auto.Add(1)
	}

	for _, ev := range res.Events {
		switch ev.Kind {
		case event.KindRespawnObstacle:
			s.obstacleRespawns.Add(1)
		case event.KindRespawnTarget:
			s.targetRespawns.Add(1)
		case event.KindMoveRejected:
			s.rejected.Add(1)
		}
	}

	s.vx.Set(res.Agent.VX)
	s.vy.Set(res.Agent.VY)
	s.fx.Set(res.Force.X)
	s.fy.Set(res.Force.Y)
}
