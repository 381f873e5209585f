// Package config holds the settings read from flags, environment and the
// YAML config file.
package config

import (
	"fmt"
	"time"

	"github.com/callcopy/callcopy/internal/audio"
)

// Config contains all callcopy settings.
type Config struct {
	Debug bool `yaml:"debug"`

	Audio AudioConfig `yaml:"audio"`
	Speed SpeedConfig `yaml:"speed"`
}

// AudioConfig configures the output device.
type AudioConfig struct {
	// Mock replaces the device with a silent simulated one.
	Mock         bool          `yaml:"mock"`
	SampleRate   int           `yaml:"sample_rate"`
	Channels     int           `yaml:"channels"`
	Volume       float64       `yaml:"volume"`
	BufferSize   time.Duration `yaml:"buffer_size"`
	ReadyTimeout time.Duration `yaml:"ready_timeout"`
}

// SpeedConfig configures the speed slider.
type SpeedConfig struct {
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Debug: false,
		Audio: AudioConfig{
			Mock:         false,
			SampleRate:   audio.DefaultSampleRate,
			Channels:     audio.DefaultChannels,
			Volume:       1.0,
			BufferSize:   0,
			ReadyTimeout: 5 * time.Second,
		},
		Speed: SpeedConfig{
			Max:  audio.DefaultSliderMax,
			Step: audio.DefaultSliderStep,
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Format().Validate(); err != nil {
		return err
	}

	if c.Audio.Volume < 0.0 || c.Audio.Volume > 1.0 {
		return fmt.Errorf("volume must be between 0.0 and 1.0, got %.2f", c.Audio.Volume)
	}
	if c.Audio.BufferSize < 0 || c.Audio.BufferSize > time.Second {
		return fmt.Errorf("buffer size must be between 0 and 1s, got %v", c.Audio.BufferSize)
	}
	if c.Audio.ReadyTimeout < 100*time.Millisecond {
		return fmt.Errorf("ready timeout must be at least 100ms, got %v", c.Audio.ReadyTimeout)
	}

	if c.Speed.Step <= 0 || c.Speed.Step > 1.0 {
		return fmt.Errorf("speed step must be between 0.0 and 1.0, got %.2f", c.Speed.Step)
	}
	if c.Speed.Max < c.Speed.Step || c.Speed.Max > 5.0 {
		return fmt.Errorf("max speed must be between %.2f and 5.0, got %.2f", c.Speed.Step, c.Speed.Max)
	}

	return nil
}

// Format returns the device format.
func (c *Config) Format() audio.Format {
	return audio.Format{
		SampleRate: c.Audio.SampleRate,
		Channels:   c.Audio.Channels,
	}
}

// ContextType returns the audio backend to open.
func (c *Config) ContextType() audio.ContextType {
	if c.Audio.Mock {
		return audio.ContextMock
	}
	return audio.ContextProduction
}

// ContextOptions converts the audio settings to context options.
func (c *Config) ContextOptions() audio.ContextOptions {
	return audio.ContextOptions{
		Format:       c.Format(),
		BufferSize:   c.Audio.BufferSize,
		ReadyTimeout: c.Audio.ReadyTimeout,
	}
}

// ControllerConfig converts the audio settings to controller settings.
func (c *Config) ControllerConfig() audio.ControllerConfig {
	return audio.ControllerConfig{
		Volume: c.Audio.Volume,
		Speed:  1.0,
	}
}

// NewSlider returns a speed slider for the configured range.
func (c *Config) NewSlider() *audio.SpeedSlider {
	return audio.NewSpeedSliderWithStep(c.Speed.Max, c.Speed.Step)
}
