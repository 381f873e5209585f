package audio

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
	"sync/atomic"
)

// Source is a decoded clip in the device format.
type Source interface {
	// PCM returns interleaved samples. Callers must not modify them.
	PCM() []int16
}

// rate is a playback speed shared between a controller and its readers.
type rate struct {
	bits atomic.Uint64
}

func newRate(v float64) *rate {
	r := &rate{}
	r.Store(v)
	return r
}

func (r *rate) Load() float64   { return math.Float64frombits(r.bits.Load()) }
func (r *rate) Store(v float64) { r.bits.Store(math.Float64bits(v)) }

// sequenceReader streams a list of clips back to back as one PCM stream.
// The read position advances by the current rate per output frame, so a
// speed change takes effect on the next Read even mid-clip. Position overflow
// carries into the next clip, which keeps the sequence gapless.
type sequenceReader struct {
	mu       sync.Mutex
	clips    [][]int16
	channels int
	rate     *rate

	clip int
	pos  float64
}

func newSequenceReader(seq []Source, channels int, r *rate) *sequenceReader {
	clips := make([][]int16, 0, len(seq))
	for _, s := range seq {
		if pcm := s.PCM(); len(pcm) >= channels {
			clips = append(clips, pcm)
		}
	}
	return &sequenceReader{
		clips:    clips,
		channels: channels,
		rate:     r,
	}
}

// Read implements io.Reader.
func (r *sequenceReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frameBytes := r.channels * BytesPerSample
	step := r.rate.Load()
	n := 0

	for n+frameBytes <= len(p) {
		if r.clip >= len(r.clips) {
			break
		}
		cur := r.clips[r.clip]
		frames := len(cur) / r.channels
		idx := int(r.pos)
		if idx >= frames {
			r.pos -= float64(frames)
			r.clip++
			continue
		}

		frac := r.pos - float64(idx)
		for ch := 0; ch < r.channels; ch++ {
			s0 := cur[idx*r.channels+ch]
			s1 := s0
			if idx+1 < frames {
				s1 = cur[(idx+1)*r.channels+ch]
			}
			binary.LittleEndian.PutUint16(p[n:], uint16(lerp(s0, s1, frac)))
			n += BytesPerSample
		}
		r.pos += step
	}

	if n == 0 && r.clip >= len(r.clips) {
		return 0, io.EOF
	}
	return n, nil
}

// Done reports whether every clip has been read.
func (r *sequenceReader) Done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clip >= len(r.clips)
}
