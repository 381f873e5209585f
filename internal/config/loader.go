package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyDebug             = "debug"
	KeyAudioMock         = "audio.mock"
	KeyAudioSampleRate   = "audio.sample_rate"
	KeyAudioChannels     = "audio.channels"
	KeyAudioVolume       = "audio.volume"
	KeyAudioBufferSize   = "audio.buffer_size"
	KeyAudioReadyTimeout = "audio.ready_timeout"
	KeySpeedMax          = "speed.max"
	KeySpeedStep         = "speed.step"
)

// Load builds a Config from v, falling back to defaults for unset keys.
func Load(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()

	if v.IsSet(KeyDebug) {
		cfg.Debug = v.GetBool(KeyDebug)
	}

	if v.IsSet(KeyAudioMock) {
		cfg.Audio.Mock = v.GetBool(KeyAudioMock)
	}
	if v.IsSet(KeyAudioSampleRate) {
		cfg.Audio.SampleRate = v.GetInt(KeyAudioSampleRate)
	}
	if v.IsSet(KeyAudioChannels) {
		cfg.Audio.Channels = v.GetInt(KeyAudioChannels)
	}
	if v.IsSet(KeyAudioVolume) {
		cfg.Audio.Volume = v.GetFloat64(KeyAudioVolume)
	}
	if v.IsSet(KeyAudioBufferSize) {
		d, err := time.ParseDuration(v.GetString(KeyAudioBufferSize))
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", KeyAudioBufferSize, err)
		}
		cfg.Audio.BufferSize = d
	}
	if v.IsSet(KeyAudioReadyTimeout) {
		d, err := time.ParseDuration(v.GetString(KeyAudioReadyTimeout))
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", KeyAudioReadyTimeout, err)
		}
		cfg.Audio.ReadyTimeout = d
	}

	if v.IsSet(KeySpeedMax) {
		cfg.Speed.Max = v.GetFloat64(KeySpeedMax)
	}
	if v.IsSet(KeySpeedStep) {
		cfg.Speed.Step = v.GetFloat64(KeySpeedStep)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// SetDefaults registers the default of every key with v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyAudioMock, d.Audio.Mock)
	v.SetDefault(KeyAudioSampleRate, d.Audio.SampleRate)
	v.SetDefault(KeyAudioChannels, d.Audio.Channels)
	v.SetDefault(KeyAudioVolume, d.Audio.Volume)
	v.SetDefault(KeyAudioBufferSize, d.Audio.BufferSize.String())
	v.SetDefault(KeyAudioReadyTimeout, d.Audio.ReadyTimeout.String())
	v.SetDefault(KeySpeedMax, d.Speed.Max)
	v.SetDefault(KeySpeedStep, d.Speed.Step)
}
