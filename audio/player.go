package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/drone-sim/event"
	"github.com/lixenwraith/drone-sim/navigation"
	"github.com/lixenwraith/drone-sim/parameter"
)

// DefaultConfig returns an enabled player at the default master volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
		CueVolumes: map[Cue]float64{
			CueReject: 0.5,
		},
	}
}

// Player turns tick events into sound cues
// Without a working speaker it stays silent; audio is never fatal to a run
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	logger      *zap.Logger

	// play hands a streamer to the output; nil while silent
	play func(beep.Streamer)

	played atomic.Uint64
}

// NewPlayer creates a silent player; call Initialize to open the speaker
func NewPlayer(cfg Config, logger *zap.Logger) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger.Named("audio"),
	}
}

// Initialize opens the speaker; a disabled player is a no-op
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)

	p.play = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	p.logger.Debug("speaker initialized", zap.Int("sample_rate", p.cfg.SampleRate))
	return nil
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.play = nil
	p.initialized = false
}

// Play queues a cue, false when silent
func (p *Player) Play(c Cue) bool {
	p.mu.Lock()
	play := p.play
	cfg := p.cfg
	p.mu.Unlock()

	if play == nil || !cfg.Enabled {
		return false
	}
	s := NewCue(c, &cfg)
	if s == nil {
		return false
	}
	play(s)
	p.played.Add(1)
	return true
}

// Played returns the number of cues handed to the output
func (p *Player) Played() uint64 {
	return p.played.Load()
}

// Observe plays one cue per contact or rejection in the tick
func (p *Player) Observe(res navigation.TickResult) {
	for _, ev := range res.Events {
		if c, ok := cueFor(ev.Kind); ok {
			p.Play(c)
		}
	}
}

func cueFor(k event.Kind) (Cue, bool) {
	switch k {
	case event.KindRespawnTarget:
		return CueReach, true
	case event.KindRespawnObstacle:
		return CueCollision, true
	case event.KindMoveRejected:
		return CueReject, true
	default:
		return 0, false
	}
}
