package audio

import "errors"

// Common errors for audio output.
var (
	// Context errors
	ErrContextNotReady   = errors.New("audio context not ready")
	ErrContextClosed     = errors.New("audio context closed")
	ErrUnknownContext    = errors.New("unknown audio context type")
	ErrAudioUnavailable  = errors.New("audio not available in nocgo build")
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	ErrInvalidChannels   = errors.New("invalid number of channels")

	// Conversion errors
	ErrUnalignedPCM = errors.New("PCM data is not aligned to whole frames")

	// Controller errors
	ErrInvalidSpeed = errors.New("invalid playback speed")
)
