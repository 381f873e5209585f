package phonetic

import "errors"

var (
	// ErrMissingClip is returned when a symbol has no clip or an asset
	// named in the manifest is absent.
	ErrMissingClip = errors.New("missing phonetic clip")
	// ErrUnsupportedFormat is returned for assets that cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
