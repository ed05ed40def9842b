package engine

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/drone-sim/input"
	"github.com/lixenwraith/drone-sim/navigation"
	"github.com/lixenwraith/drone-sim/parameter"
)

// ErrWatchdogExpired ends a run after prolonged manual inactivity
var ErrWatchdogExpired = errors.New("watchdog: no manual movement within timeout")

// Observer receives every completed tick on the runner goroutine
// Implementations must return quickly; slow work belongs on their own goroutine
type Observer interface {
	Observe(navigation.TickResult)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(navigation.TickResult)

func (f ObserverFunc) Observe(res navigation.TickResult) { f(res) }

// RunnerConfig configures the loop
type RunnerConfig struct {
	TickInterval    time.Duration
	WatchdogTimeout time.Duration
	Clock           Clock
	Logger          *zap.Logger
}

// Runner drives the navigator: one tick per intent, one automatic tick per interval
// Ticks never overlap; the navigator is only touched from Run's goroutine
type Runner struct {
	nav       *navigation.Navigator
	intents   <-chan input.Intent
	observers []Observer
	watchdog  *Watchdog
	clock     Clock
	interval  time.Duration
	logger    *zap.Logger
}

// NewRunner creates a runner reading intents from the given channel
func NewRunner(nav *navigation.Navigator, intents <-chan input.Intent, cfg RunnerConfig, observers ...Observer) *Runner {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = parameter.TickInterval
	}
	return &Runner{
		nav:       nav,
		intents:   intents,
		observers: observers,
		watchdog:  NewWatchdog(cfg.WatchdogTimeout, cfg.Clock.Now()),
		clock:     cfg.Clock,
		interval:  cfg.TickInterval,
		logger:    cfg.Logger.Named("runner"),
	}
}

// Watchdog exposes the inactivity policy for status display
func (r *Runner) Watchdog() *Watchdog {
	return r.watchdog
}

// Run loops until quit, a closed intent channel, watchdog expiry or ctx cancellation
// Quit and a closed channel return nil
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("simulation started", zap.Duration("tick_interval", r.interval))

	for {
		var in input.Intent
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next, ok := <-r.intents:
			if !ok {
				r.logger.Info("intent source closed")
				return nil
			}
			in = next
		case <-ticker.C:
			in = input.None
		}

		res := r.nav.Tick(in)
		if res.Quit {
			r.logger.Info("quit requested", zap.Uint64("tick", res.Tick))
			return nil
		}

		for _, o := range r.observers {
			o.Observe(res)
		}

		r.watchdog.Observe(res)
		if now := r.clock.Now(); r.watchdog.Expired(now) {
			r.logger.Warn("watchdog expired",
				zap.Uint64("tick", res.Tick),
				zap.Time("last_move", r.watchdog.LastMove()))
			return ErrWatchdogExpired
		}
	}
}
