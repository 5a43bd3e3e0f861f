package audio

import "time"

// SoundType represents different feedback sounds
type SoundType int

const (
	SoundTap   SoundType = iota // Toggle flipped
	SoundReset                  // All toggles cleared
	soundTypeCount
)

// AudioConfig holds feedback sound settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// Sound timing
const (
	speakerBuffer = 50 * time.Millisecond

	TapSoundDuration = 30 * time.Millisecond
	TapSoundAttack   = 2 * time.Millisecond
	TapSoundRelease  = 20 * time.Millisecond

	ResetSoundDuration = 120 * time.Millisecond
	ResetSoundAttack   = 5 * time.Millisecond
	ResetSoundRelease  = 80 * time.Millisecond
)
