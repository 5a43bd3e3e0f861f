// Package config loads screen settings from defaults, an optional YAML file
// and SWITCHES_* environment variables, in that order.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/switches/audio"
	"github.com/lixenwraith/switches/palette"
)

// Config is the on-disk shape of the settings file
type Config struct {
	Toggles          int           `yaml:"toggles"`
	BaseHue          *float64      `yaml:"base_hue,omitempty"`
	BaseSaturation   float64       `yaml:"base_saturation"`
	BaseBrightness   float64       `yaml:"base_brightness"`
	HuePolicy        string        `yaml:"hue_policy"`
	SaturationPolicy string        `yaml:"saturation_policy"`
	BrightnessPolicy string        `yaml:"brightness_policy"`
	OffsetPolicy     string        `yaml:"offset_policy"`
	Transition       time.Duration `yaml:"transition"`
	Audio            Audio         `yaml:"audio"`
}

// Audio is the feedback sound section
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the settings of the shipped screen
func Default() *Config {
	return &Config{
		Toggles:          10,
		BaseSaturation:   0.5,
		BaseBrightness:   0.5,
		HuePolicy:        palette.OverflowNone.String(),
		SaturationPolicy: palette.OverflowWrap.String(),
		BrightnessPolicy: palette.OverflowWrap.String(),
		OffsetPolicy:     palette.OffsetDoubleUntil.String(),
		Transition:       250 * time.Millisecond,
		Audio: Audio{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading config")
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing config %s", path)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays SWITCHES_BASE_HUE and SWITCHES_TOGGLES
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SWITCHES_BASE_HUE"); v != "" {
		hue, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(err, "SWITCHES_BASE_HUE")
		}
		c.BaseHue = &hue
	}
	if v := os.Getenv("SWITCHES_TOGGLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "SWITCHES_TOGGLES")
		}
		c.Toggles = n
	}
	return nil
}

// Validate rejects settings the board cannot be built from
func (c *Config) Validate() error {
	if c.Toggles < 1 {
		return errors.Errorf("toggles must be at least 1, got %d", c.Toggles)
	}
	if c.BaseHue != nil {
		if err := unitRange("base_hue", *c.BaseHue); err != nil {
			return err
		}
	}
	if err := unitRange("base_saturation", c.BaseSaturation); err != nil {
		return err
	}
	if err := unitRange("base_brightness", c.BaseBrightness); err != nil {
		return err
	}
	if err := unitRange("audio.volume", c.Audio.Volume); err != nil {
		return err
	}
	if c.Transition < 0 {
		return errors.Errorf("transition must not be negative, got %s", c.Transition)
	}
	if _, ok := palette.ParseOffsetPolicy(c.OffsetPolicy); !ok {
		return errors.Errorf("unknown offset_policy %q", c.OffsetPolicy)
	}
	policies := []struct {
		name, value string
	}{
		{"hue_policy", c.HuePolicy},
		{"saturation_policy", c.SaturationPolicy},
		{"brightness_policy", c.BrightnessPolicy},
	}
	for _, p := range policies {
		if _, ok := palette.ParseOverflowPolicy(p.value); !ok {
			return errors.Errorf("unknown %s %q", p.name, p.value)
		}
	}
	return nil
}

// unitRange also rejects NaN, which fails every comparison
func unitRange(name string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return errors.Errorf("%s must be within [0,1], got %v", name, v)
	}
	return nil
}

// Settings converts a validated config into board construction input
func (c *Config) Settings() palette.Settings {
	s := palette.Settings{
		Toggles:        c.Toggles,
		BaseSaturation: c.BaseSaturation,
		BaseBrightness: c.BaseBrightness,
	}
	if c.BaseHue != nil {
		hue := *c.BaseHue
		s.BaseHue = &hue
	}
	s.Overflow[palette.Hue], _ = palette.ParseOverflowPolicy(c.HuePolicy)
	s.Overflow[palette.Saturation], _ = palette.ParseOverflowPolicy(c.SaturationPolicy)
	s.Overflow[palette.Brightness], _ = palette.ParseOverflowPolicy(c.BrightnessPolicy)
	s.Offset, _ = palette.ParseOffsetPolicy(c.OffsetPolicy)
	return s
}

// AudioConfig converts the audio section, then applies the audio environment overrides
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	audio.ApplyEnv(ac)
	return ac
}
