package phonetic

import (
	"time"

	"github.com/callcopy/callcopy/internal/audio"
)

// Clip is one decoded recording of a symbol. Samples are already in the
// device format and must not be modified.
type Clip struct {
	Name    string
	Symbol  rune
	Format  audio.Format
	Samples []int16
}

// PCM implements audio.Source.
func (c *Clip) PCM() []int16 {
	return c.Samples
}

// Duration returns the playing time at normal speed.
func (c *Clip) Duration() time.Duration {
	return c.Format.Duration(len(c.Samples))
}

// Size returns the PCM size in bytes.
func (c *Clip) Size() int {
	return len(c.Samples) * audio.BytesPerSample
}
