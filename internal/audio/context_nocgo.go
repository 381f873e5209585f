//go:build nocgo
// +build nocgo

package audio

import "io"

// Stub implementations for static analysis and builds without CGO

// ProductionContext stub for nocgo builds
type ProductionContext struct{}

// NewProductionContext always fails in nocgo builds.
func NewProductionContext(opts ContextOptions) (*ProductionContext, error) {
	return nil, ErrAudioUnavailable
}

func (pc *ProductionContext) NewPlayer(r io.Reader) (Player, error) {
	return nil, ErrAudioUnavailable
}

func (pc *ProductionContext) Format() Format {
	return DefaultFormat()
}

func (pc *ProductionContext) Close() error {
	return nil
}
