package audio

import (
	"fmt"
	"time"
)

// Audio format constants for the output device.
// These constants are used by both CGO and non-CGO builds.
const (
	// DefaultSampleRate is the device sample rate in Hz.
	DefaultSampleRate = 22050
	// DefaultChannels is the number of device channels (1 = mono).
	DefaultChannels = 1
	// BitDepth is the bit depth per sample (16-bit signed little endian).
	BitDepth = 16
	// BytesPerSample is the number of bytes per sample of one channel.
	BytesPerSample = BitDepth / 8
)

// Format describes interleaved signed 16-bit PCM.
type Format struct {
	SampleRate int
	Channels   int
}

// DefaultFormat returns the format the device is opened with unless
// configured otherwise.
func DefaultFormat() Format {
	return Format{
		SampleRate: DefaultSampleRate,
		Channels:   DefaultChannels,
	}
}

// Validate checks that the format can be opened by the device.
func (f Format) Validate() error {
	if f.SampleRate < 8000 || f.SampleRate > 192000 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, f.SampleRate)
	}
	if f.Channels != 1 && f.Channels != 2 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, f.Channels)
	}
	return nil
}

// FrameSize returns the number of bytes in one frame (one sample for every
// channel).
func (f Format) FrameSize() int {
	return BytesPerSample * f.Channels
}

// Duration returns the playing time of n interleaved samples.
func (f Format) Duration(samples int) time.Duration {
	if f.SampleRate == 0 || f.Channels == 0 {
		return 0
	}
	frames := samples / f.Channels
	return time.Duration(frames) * time.Second / time.Duration(f.SampleRate)
}

func (f Format) String() string {
	return fmt.Sprintf("%dHz/%dch/s16le", f.SampleRate, f.Channels)
}
