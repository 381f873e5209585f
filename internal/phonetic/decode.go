package phonetic

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/callcopy/callcopy/internal/audio"
)

// Decode decodes an encoded asset and converts it to the target format.
// The container is chosen by file extension.
func Decode(name string, data []byte, target audio.Format) (*Clip, error) {
	var (
		samples []int16
		source  audio.Format
		err     error
	)

	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".wav":
		samples, source, err = decodeWAV(data)
	case ".mp3":
		samples, source, err = decodeMP3(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	converted, err := audio.Convert(samples, source, target)
	if err != nil {
		return nil, fmt.Errorf("convert %s from %s: %w", name, source, err)
	}

	return &Clip{
		Name:    name,
		Format:  target,
		Samples: converted,
	}, nil
}

func decodeWAV(data []byte) ([]int16, audio.Format, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, audio.Format{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, audio.Format{}, fmt.Errorf("%w: invalid wav file", ErrUnsupportedFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, audio.Format{}, fmt.Errorf("read pcm: %w", err)
	}

	samples, err := toInt16(buf)
	if err != nil {
		return nil, audio.Format{}, err
	}
	format := audio.Format{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
	}
	return samples, format, nil
}

// toInt16 scales integer PCM of any supported depth to 16 bits.
// 8-bit WAV data is unsigned.
func toInt16(buf *goaudio.IntBuffer) ([]int16, error) {
	out := make([]int16, len(buf.Data))
	switch buf.SourceBitDepth {
	case 8:
		for i, v := range buf.Data {
			out[i] = int16((v - 128) << 8)
		}
	case 16:
		for i, v := range buf.Data {
			out[i] = int16(v)
		}
	case 24:
		for i, v := range buf.Data {
			out[i] = int16(v >> 8)
		}
	case 32:
		for i, v := range buf.Data {
			out[i] = int16(v >> 16)
		}
	default:
		return nil, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, buf.SourceBitDepth)
	}
	return out, nil
}

// decodeMP3 always yields 16-bit stereo.
func decodeMP3(data []byte) ([]int16, audio.Format, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, audio.Format{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, audio.Format{}, fmt.Errorf("read pcm: %w", err)
	}

	format := audio.Format{SampleRate: dec.SampleRate(), Channels: 2}
	if err := audio.ValidatePCM(pcm, format); err != nil {
		return nil, audio.Format{}, err
	}
	return audio.BytesToSamples(pcm), format, nil
}
