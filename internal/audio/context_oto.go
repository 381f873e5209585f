//go:build !nocgo
// +build !nocgo

package audio

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"
)

// ProductionContext implements AudioContext using oto.
type ProductionContext struct {
	context *oto.Context
	format  Format
	mu      sync.Mutex
	ready   bool
}

// NewProductionContext opens the default audio output device.
func NewProductionContext(opts ContextOptions) (*ProductionContext, error) {
	pc := &ProductionContext{format: opts.Format}
	if err := pc.initialize(opts); err != nil {
		return nil, err
	}
	return pc, nil
}

// platformBufferSize returns the device buffer used when none is configured.
func platformBufferSize() time.Duration {
	switch runtime.GOOS {
	case "darwin":
		// macOS benefits from larger buffers
		return 100 * time.Millisecond
	case "windows":
		return 80 * time.Millisecond
	default:
		// Linux ALSA and others
		return 50 * time.Millisecond
	}
}

func (pc *ProductionContext) initialize(opts ContextOptions) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.ready {
		return nil
	}

	options := &oto.NewContextOptions{
		SampleRate:   opts.Format.SampleRate,
		ChannelCount: opts.Format.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   opts.BufferSize,
	}
	if options.BufferSize == 0 {
		options.BufferSize = platformBufferSize()
	}

	log.Debug("Initializing production audio context",
		"sample_rate", options.SampleRate,
		"channels", options.ChannelCount,
		"buffer_size", options.BufferSize)

	context, readyChan, err := oto.NewContext(options)
	if err != nil {
		return fmt.Errorf("failed to create audio context: %w", err)
	}

	select {
	case <-readyChan:
		pc.context = context
		pc.ready = true
		log.Debug("Production audio context initialized")
	case <-time.After(opts.ReadyTimeout):
		// oto v3 contexts have no Close, it will be garbage collected
		return fmt.Errorf("audio context initialization timeout after %v", opts.ReadyTimeout)
	}

	return nil
}

// NewPlayer creates a new oto player reading from r.
func (pc *ProductionContext) NewPlayer(r io.Reader) (Player, error) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.ready || pc.context == nil {
		return nil, ErrContextNotReady
	}
	if err := pc.context.Err(); err != nil {
		return nil, fmt.Errorf("audio device failed: %w", err)
	}

	return &productionPlayer{player: pc.context.NewPlayer(r)}, nil
}

// Format returns the device format.
func (pc *ProductionContext) Format() Format {
	return pc.format
}

// Close marks the context unusable.
func (pc *ProductionContext) Close() error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	// In oto v3, context doesn't have Close method
	pc.ready = false
	pc.context = nil
	return nil
}

// productionPlayer wraps an oto.Player.
type productionPlayer struct {
	player *oto.Player
}

func (p *productionPlayer) Play()                    { p.player.Play() }
func (p *productionPlayer) Pause()                   { p.player.Pause() }
func (p *productionPlayer) IsPlaying() bool          { return p.player.IsPlaying() }
func (p *productionPlayer) SetVolume(volume float64) { p.player.SetVolume(volume) }
func (p *productionPlayer) Close() error             { return p.player.Close() }
