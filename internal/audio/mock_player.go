package audio

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// mockTick is the simulated device period.
const mockTick = 20 * time.Millisecond

// MockContext implements AudioContext without touching audio hardware.
// Players either consume their stream in simulated real time or, in manual
// mode, only when the test drains them.
type MockContext struct {
	mu      sync.Mutex
	format  Format
	manual  bool
	closed  bool
	players []*MockPlayer

	// Test helpers
	PlayersCreated int
}

// NewMockContext creates a mock context whose players consume audio in
// simulated real time.
func NewMockContext(format Format) *MockContext {
	return &MockContext{format: format}
}

// NewManualMockContext creates a mock context whose players never advance
// on their own; call MockPlayer.Drain or MockPlayer.ReadChunk to consume.
func NewManualMockContext(format Format) *MockContext {
	return &MockContext{format: format, manual: true}
}

// NewPlayer creates a new mock player.
func (mc *MockContext) NewPlayer(r io.Reader) (Player, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.closed {
		return nil, ErrContextClosed
	}

	p := &MockPlayer{
		context: mc,
		reader:  r,
		volume:  1.0,
		stopCh:  make(chan struct{}),
	}
	mc.players = append(mc.players, p)
	mc.PlayersCreated++

	log.Debug("Created mock audio player", "players_created", mc.PlayersCreated)
	return p, nil
}

// Format returns the simulated device format.
func (mc *MockContext) Format() Format {
	return mc.format
}

// Close closes every player and the context.
func (mc *MockContext) Close() error {
	mc.mu.Lock()
	players := mc.players
	mc.players = nil
	mc.closed = true
	mc.mu.Unlock()

	for _, p := range players {
		_ = p.Close()
	}
	log.Debug("Mock audio context closed")
	return nil
}

// Players returns the players created so far, oldest first.
func (mc *MockContext) Players() []*MockPlayer {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	out := make([]*MockPlayer, len(mc.players))
	copy(out, mc.players)
	return out
}

// LastPlayer returns the most recently created player or nil.
func (mc *MockContext) LastPlayer() *MockPlayer {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if len(mc.players) == 0 {
		return nil
	}
	return mc.players[len(mc.players)-1]
}

// PlayerState represents the current state of a mock player.
type PlayerState int32

const (
	StateStopped PlayerState = iota
	StatePlaying
	StatePaused
	StateClosed
)

func (s PlayerState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// MockPlayer implements Player for testing.
type MockPlayer struct {
	context *MockContext
	reader  io.Reader

	state  atomic.Int32 // PlayerState
	eof    atomic.Bool
	stopCh chan struct{}

	mu       sync.Mutex
	readMu   sync.Mutex
	volume   float64
	consumed []byte

	// Test helpers
	playCount atomic.Int64
}

// Play starts or resumes playback.
func (mp *MockPlayer) Play() {
	if mp.State() == StateClosed || mp.eof.Load() {
		return
	}
	if !mp.state.CompareAndSwap(int32(StateStopped), int32(StatePlaying)) &&
		!mp.state.CompareAndSwap(int32(StatePaused), int32(StatePlaying)) {
		return
	}
	mp.playCount.Add(1)

	if !mp.context.manual {
		go mp.simulatePlayback()
	}
}

// simulatePlayback pulls one device period of audio per tick until EOF.
func (mp *MockPlayer) simulatePlayback() {
	format := mp.context.format
	chunk := int(float64(format.SampleRate)*mockTick.Seconds()) * format.FrameSize()

	ticker := time.NewTicker(mockTick)
	defer ticker.Stop()

	for {
		select {
		case <-mp.stopCh:
			return
		case <-ticker.C:
			if mp.State() != StatePlaying {
				return
			}
			if _, err := mp.ReadChunk(chunk); err != nil {
				return
			}
		}
	}
}

// ReadChunk consumes up to n bytes from the stream. It returns io.EOF once
// the stream is exhausted, after which the player reports not playing.
func (mp *MockPlayer) ReadChunk(n int) (int, error) {
	mp.readMu.Lock()
	defer mp.readMu.Unlock()

	if mp.eof.Load() {
		return 0, io.EOF
	}

	buf := make([]byte, n)
	read, err := io.ReadAtLeast(mp.reader, buf, 1)
	if read > 0 {
		mp.mu.Lock()
		mp.consumed = append(mp.consumed, buf[:read]...)
		mp.mu.Unlock()
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		mp.eof.Store(true)
		mp.state.CompareAndSwap(int32(StatePlaying), int32(StateStopped))
		return read, io.EOF
	}
	return read, err
}

// Drain consumes the rest of the stream synchronously and returns the number
// of bytes read.
func (mp *MockPlayer) Drain() int {
	total := 0
	for {
		n, err := mp.ReadChunk(4096)
		total += n
		if err != nil {
			return total
		}
	}
}

// Pause pauses playback.
func (mp *MockPlayer) Pause() {
	mp.state.CompareAndSwap(int32(StatePlaying), int32(StatePaused))
}

// IsPlaying reports whether the player is playing and has audio left.
func (mp *MockPlayer) IsPlaying() bool {
	return mp.State() == StatePlaying
}

// SetVolume sets the simulated volume.
func (mp *MockPlayer) SetVolume(volume float64) {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.volume = volume
}

// Volume returns the simulated volume.
func (mp *MockPlayer) Volume() float64 {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return mp.volume
}

// Close stops the player.
func (mp *MockPlayer) Close() error {
	if mp.state.Swap(int32(StateClosed)) != int32(StateClosed) {
		close(mp.stopCh)
	}
	return nil
}

// State returns the player state.
func (mp *MockPlayer) State() PlayerState {
	return PlayerState(mp.state.Load())
}

// Consumed returns a copy of every byte the player has read.
func (mp *MockPlayer) Consumed() []byte {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	out := make([]byte, len(mp.consumed))
	copy(out, mp.consumed)
	return out
}

// PlayCount returns how often playback was started.
func (mp *MockPlayer) PlayCount() int {
	return int(mp.playCount.Load())
}
