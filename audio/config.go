package audio

import (
	"os"
	"strconv"
)

// DefaultAudioConfig returns the feedback settings used when nothing is configured
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundTap:   0.6,
			SoundReset: 0.8,
		},
		SampleRate: 44100,
	}
}

// ApplyEnv overlays SWITCHES_AUDIO_ENABLED and SWITCHES_VOLUME (0-100) onto cfg.
// Unparseable values are ignored.
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv("SWITCHES_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("SWITCHES_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
