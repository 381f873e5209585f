package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// AudioContext is an opened audio device.
// This allows for both real (oto-based) and mock implementations.
type AudioContext interface {
	// NewPlayer creates a player that pulls PCM in the context's format
	// from r.
	NewPlayer(r io.Reader) (Player, error)

	// Format returns the PCM format the device was opened with.
	Format() Format

	// Close releases the device.
	Close() error
}

// Player plays one PCM stream.
type Player interface {
	// Play starts or resumes playback.
	Play()

	// Pause pauses playback.
	Pause()

	// IsPlaying reports whether the stream still has audio to play.
	IsPlaying() bool

	// SetVolume sets the playback volume (0.0 to 1.0).
	SetVolume(volume float64)

	// Close releases the player.
	Close() error
}

// ContextType represents the type of audio context to create.
type ContextType int

const (
	// ContextProduction uses real audio hardware via oto.
	ContextProduction ContextType = iota
	// ContextMock plays nothing and simulates timing.
	ContextMock
)

func (t ContextType) String() string {
	switch t {
	case ContextProduction:
		return "production"
	case ContextMock:
		return "mock"
	default:
		return "unknown"
	}
}

// ContextOptions configures a new audio context.
type ContextOptions struct {
	Format Format
	// BufferSize is the device buffer length. Zero picks a per-platform
	// default.
	BufferSize time.Duration
	// ReadyTimeout bounds how long to wait for the device to come up.
	ReadyTimeout time.Duration
}

// NewAudioContext opens an audio context of the given type. Failing to open
// the production device is returned to the caller; there is no fallback.
func NewAudioContext(contextType ContextType, opts ContextOptions) (AudioContext, error) {
	if err := opts.Format.Validate(); err != nil {
		return nil, err
	}
	if opts.ReadyTimeout == 0 {
		opts.ReadyTimeout = 5 * time.Second
	}

	switch contextType {
	case ContextProduction:
		log.Debug("Creating production audio context", "format", opts.Format)
		pc, err := NewProductionContext(opts)
		if err != nil {
			return nil, err
		}
		return pc, nil
	case ContextMock:
		log.Debug("Creating mock audio context", "format", opts.Format)
		return NewMockContext(opts.Format), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownContext, contextType)
	}
}
