package engine

import (
	"time"

	"github.com/lixenwraith/drone-sim/navigation"
)

// Watchdog ends a run after a period without manual movement
// It only reads tick results; it never touches the simulation
type Watchdog struct {
	timeout  time.Duration
	lastMove time.Time
}

// NewWatchdog starts the inactivity window at start; timeout <= 0 disables it
func NewWatchdog(timeout time.Duration, start time.Time) *Watchdog {
	return &Watchdog{timeout: timeout, lastMove: start}
}

// Observe records a tick; only manual moves that changed the drone cell reset the window
func (w *Watchdog) Observe(res navigation.TickResult) {
	if res.Moved {
		w.lastMove = res.Timestamp
	}
}

// Expired reports whether the timeout elapsed since the last manual move
func (w *Watchdog) Expired(now time.Time) bool {
	if w.timeout <= 0 {
		return false
	}
	return now.Sub(w.lastMove) >= w.timeout
}

// Remaining returns time left before expiry, or -1 when disabled
func (w *Watchdog) Remaining(now time.Time) time.Duration {
	if w.timeout <= 0 {
		return -1
	}
	left := w.timeout - now.Sub(w.lastMove)
	if left < 0 {
		return 0
	}
	return left
}

// LastMove returns the timestamp of the last manual move
func (w *Watchdog) LastMove() time.Time {
	return w.lastMove
}
