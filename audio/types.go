package audio

// Cue identifies a short sound effect
type Cue int

const (
	CueReach     Cue = iota // Target reached
	CueCollision            // Obstacle touched
	CueReject               // Manual move blocked
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueReach:
		return "reach"
	case CueCollision:
		return "collision"
	case CueReject:
		return "reject"
	default:
		return "unknown"
	}
}

// Config holds the playback settings
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64

	// CueVolumes scales each cue before the master volume, missing entries play at 1.0
	CueVolumes map[Cue]float64
}

// cueVolume returns the combined gain for a cue
func (c *Config) cueVolume(cue Cue) float64 {
	vol := 1.0
	if v, ok := c.CueVolumes[cue]; ok {
		vol = v
	}
	return vol * c.MasterVolume
}
