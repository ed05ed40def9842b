package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/drone-sim/event"
	"github.com/lixenwraith/drone-sim/navigation"
)

func newCapturingPlayer(cfg Config) (*Player, *[]beep.Streamer) {
	p := NewPlayer(cfg, nil)
	var got []beep.Streamer
	p.play = func(s beep.Streamer) { got = append(got, s) }
	return p, &got
}

func TestObservePlaysCuePerEvent(t *testing.T) {
	p, got := newCapturingPlayer(DefaultConfig())

	p.Observe(navigation.TickResult{Events: []event.Event{
		{Kind: event.KindForceApplied},
		{Kind: event.KindRespawnTarget},
		{Kind: event.KindRespawnObstacle},
		{Kind: event.KindMoveRejected},
	}})

	if len(*got) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(*got))
	}
	if p.Played() != 3 {
		t.Errorf("expected played=3, got %d", p.Played())
	}
}

func TestSilentPlayer(t *testing.T) {
	p := NewPlayer(DefaultConfig(), nil)
	if p.Play(CueReach) {
		t.Error("uninitialized player should not play")
	}

	cfg := DefaultConfig()
	cfg.Enabled = false
	disabled := NewPlayer(cfg, nil)
	if err := disabled.Initialize(); err != nil {
		t.Fatalf("disabled init: %v", err)
	}
	if disabled.Play(CueReach) {
		t.Error("disabled player should not play")
	}
	disabled.Close()
}

func TestCueFor(t *testing.T) {
	cases := map[event.Kind]Cue{
		event.KindRespawnTarget:   CueReach,
		event.KindRespawnObstacle: CueCollision,
		event.KindMoveRejected:    CueReject,
	}
	for k, want := range cases {
		c, ok := cueFor(k)
		if !ok || c != want {
			t.Errorf("%s: expected %s, got %s (ok=%v)", k, want, c, ok)
		}
	}
	if _, ok := cueFor(event.KindGenerated); ok {
		t.Error("generated events have no cue")
	}
}
