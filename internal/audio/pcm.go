package audio

import (
	"encoding/binary"
	"fmt"
	"time"
)

// ValidatePCM checks that raw little-endian PCM holds whole frames.
func ValidatePCM(data []byte, format Format) error {
	if len(data)%format.FrameSize() != 0 {
		return fmt.Errorf("%w: %d bytes with %d-byte frames",
			ErrUnalignedPCM, len(data), format.FrameSize())
	}
	return nil
}

// BytesToSamples decodes signed 16-bit little-endian PCM.
func BytesToSamples(data []byte) []int16 {
	samples := make([]int16, len(data)/BytesPerSample)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*BytesPerSample:]))
	}
	return samples
}

// SamplesToBytes encodes samples as signed 16-bit little-endian PCM.
func SamplesToBytes(samples []int16) []byte {
	data := make([]byte, len(samples)*BytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*BytesPerSample:], uint16(s))
	}
	return data
}

// GenerateSilence returns silent samples for the given duration.
func GenerateSilence(d time.Duration, format Format) []int16 {
	frames := int(d.Seconds() * float64(format.SampleRate))
	return make([]int16, frames*format.Channels)
}

// Convert changes interleaved samples from one format to another. Channels
// are mixed down by averaging or duplicated up; the sample rate is changed
// with linear interpolation.
func Convert(samples []int16, from, to Format) ([]int16, error) {
	if err := from.Validate(); err != nil {
		return nil, fmt.Errorf("source format: %w", err)
	}
	if err := to.Validate(); err != nil {
		return nil, fmt.Errorf("target format: %w", err)
	}
	if len(samples)%from.Channels != 0 {
		return nil, fmt.Errorf("%w: %d samples for %d channels",
			ErrUnalignedPCM, len(samples), from.Channels)
	}

	out := Remix(samples, from.Channels, to.Channels)
	return Resample(out, to.Channels, from.SampleRate, to.SampleRate), nil
}

// Remix converts interleaved samples between channel counts.
func Remix(samples []int16, from, to int) []int16 {
	if from == to {
		return samples
	}

	frames := len(samples) / from
	out := make([]int16, frames*to)
	for f := 0; f < frames; f++ {
		var sum int
		for ch := 0; ch < from; ch++ {
			sum += int(samples[f*from+ch])
		}
		mixed := int16(sum / from)
		for ch := 0; ch < to; ch++ {
			if to > from && ch < from {
				out[f*to+ch] = samples[f*from+ch]
			} else {
				out[f*to+ch] = mixed
			}
		}
	}
	return out
}

// Resample performs simple linear resampling of interleaved samples.
// This is a basic implementation suitable for short speech clips.
func Resample(samples []int16, channels, fromRate, toRate int) []int16 {
	if fromRate == toRate || len(samples) == 0 {
		return samples
	}

	ratio := float64(toRate) / float64(fromRate)
	inFrames := len(samples) / channels
	outFrames := int(float64(inFrames) * ratio)
	out := make([]int16, outFrames*channels)

	for i := 0; i < outFrames; i++ {
		pos := float64(i) / ratio
		idx := int(pos)
		frac := pos - float64(idx)
		for ch := 0; ch < channels; ch++ {
			s0 := samples[idx*channels+ch]
			s1 := s0
			if idx+1 < inFrames {
				s1 = samples[(idx+1)*channels+ch]
			}
			out[i*channels+ch] = lerp(s0, s1, frac)
		}
	}
	return out
}

// lerp interpolates between two samples with clamping.
func lerp(a, b int16, frac float64) int16 {
	v := float64(a) + (float64(b)-float64(a))*frac
	switch {
	case v > 32767:
		return 32767
	case v < -32768:
		return -32768
	default:
		return int16(v)
	}
}
