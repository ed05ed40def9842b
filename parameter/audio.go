package parameter

import "time"

const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length; larger is safer, smaller lowers latency
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 0.5
)

// Reach cue: two-partial chime
const (
	ReachSoundDuration        = 400 * time.Millisecond
	ReachSoundAttack          = 5 * time.Millisecond
	ReachSoundFundamentalFreq = 880.0
	ReachSoundOvertoneFreq    = 1320.0
	ReachSoundRelease         = 350 * time.Millisecond
)

// Collision cue: low saw buzz
const (
	CollisionSoundDuration = 150 * time.Millisecond
	CollisionSoundAttack   = 5 * time.Millisecond
	CollisionSoundRelease  = 40 * time.Millisecond
	CollisionSoundFreq     = 110.0
)

// Rejected move cue: short square blip
const (
	RejectSoundDuration = 60 * time.Millisecond
	RejectSoundAttack   = 2 * time.Millisecond
	RejectSoundRelease  = 20 * time.Millisecond
	RejectSoundFreq     = 220.0
)
