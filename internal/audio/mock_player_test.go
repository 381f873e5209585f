package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"
)

func TestMockPlayer_ManualDrain(t *testing.T) {
	ctx := NewManualMockContext(DefaultFormat())
	defer ctx.Close()

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	p, err := ctx.NewPlayer(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	mp := p.(*MockPlayer)

	if mp.IsPlaying() {
		t.Error("Player should not be playing before Play()")
	}

	p.Play()
	if !p.IsPlaying() {
		t.Error("Player should be playing after Play()")
	}
	if mp.PlayCount() != 1 {
		t.Errorf("Expected play count 1, got %d", mp.PlayCount())
	}

	if n := mp.Drain(); n != len(data) {
		t.Errorf("Expected to drain %d bytes, got %d", len(data), n)
	}
	if p.IsPlaying() {
		t.Error("Player should stop once the stream is exhausted")
	}
	if !bytes.Equal(mp.Consumed(), data) {
		t.Errorf("Consumed %v, want %v", mp.Consumed(), data)
	}

	// Play after EOF does nothing
	p.Play()
	if p.IsPlaying() {
		t.Error("Player should not restart after EOF")
	}
}

func TestMockPlayer_PauseAndClose(t *testing.T) {
	ctx := NewManualMockContext(DefaultFormat())
	p, _ := ctx.NewPlayer(bytes.NewReader(make([]byte, 64)))
	mp := p.(*MockPlayer)

	p.Play()
	p.Pause()
	if mp.State() != StatePaused {
		t.Errorf("Expected paused, got %v", mp.State())
	}

	p.Play()
	if mp.State() != StatePlaying {
		t.Errorf("Expected playing after resume, got %v", mp.State())
	}

	p.SetVolume(0.25)
	if mp.Volume() != 0.25 {
		t.Errorf("Expected volume 0.25, got %f", mp.Volume())
	}

	if err := ctx.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if mp.State() != StateClosed {
		t.Errorf("Expected closed after context close, got %v", mp.State())
	}

	if _, err := ctx.NewPlayer(bytes.NewReader(nil)); !errors.Is(err, ErrContextClosed) {
		t.Errorf("Expected ErrContextClosed, got %v", err)
	}
}

func TestMockPlayer_RealtimeFinishes(t *testing.T) {
	format := DefaultFormat()
	ctx := NewMockContext(format)
	defer ctx.Close()

	// 60ms of audio
	data := make([]byte, int(float64(format.SampleRate)*0.06)*format.FrameSize())
	p, _ := ctx.NewPlayer(bytes.NewReader(data))
	p.Play()

	deadline := time.Now().Add(2 * time.Second)
	for p.IsPlaying() {
		if time.Now().After(deadline) {
			t.Fatal("Mock playback did not finish")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if got := len(p.(*MockPlayer).Consumed()); got != len(data) {
		t.Errorf("Expected %d bytes consumed, got %d", len(data), got)
	}
}

func TestMockPlayer_ReadChunkEOF(t *testing.T) {
	ctx := NewManualMockContext(DefaultFormat())
	p, _ := ctx.NewPlayer(bytes.NewReader([]byte{1, 2}))
	mp := p.(*MockPlayer)

	n, err := mp.ReadChunk(1)
	if n != 1 || err != nil {
		t.Fatalf("ReadChunk(1) = %d, %v", n, err)
	}
	n, err = mp.ReadChunk(10)
	if n != 1 || err != nil {
		t.Fatalf("ReadChunk(10) = %d, %v; want 1, nil", n, err)
	}
	if _, err := mp.ReadChunk(10); !errors.Is(err, io.EOF) {
		t.Fatalf("Expected EOF after exhaustion, got %v", err)
	}
	if _, err := mp.ReadChunk(10); !errors.Is(err, io.EOF) {
		t.Fatalf("Expected EOF to stick, got %v", err)
	}
}
