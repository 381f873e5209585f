package phonetic

import (
	"fmt"
	"io/fs"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/callcopy/callcopy/internal/audio"
)

// Table maps each symbol to one or more decoded clips. It is built once and
// never mutated, so it can be shared freely.
type Table struct {
	format  audio.Format
	entries map[rune][]*Clip
	size    int
}

// Load decodes every asset in the manifest from fsys. Any missing or
// undecodable asset fails the whole load.
func Load(fsys fs.FS, format audio.Format) (*Table, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	t := &Table{
		format:  format,
		entries: make(map[rune][]*Clip, len(Symbols)),
	}

	clips := 0
	for _, sym := range Symbols {
		names := manifest[sym]
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: no assets for %q", ErrMissingClip, sym)
		}

		for _, name := range names {
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrMissingClip, name, err)
			}
			clip, err := Decode(name, data, format)
			if err != nil {
				return nil, err
			}
			clip.Symbol = sym
			t.entries[sym] = append(t.entries[sym], clip)
			t.size += clip.Size()
			clips++
		}
	}

	log.Debug("Loaded phonetic table",
		"symbols", len(t.entries),
		"clips", clips,
		"size", humanize.Bytes(uint64(t.size)),
		"format", format.String(),
		"elapsed", time.Since(start))
	return t, nil
}

// Clips returns every clip for sym.
func (t *Table) Clips(sym rune) ([]*Clip, bool) {
	c, ok := t.entries[sym]
	return c, ok
}

// Pick returns one clip for sym chosen uniformly at random.
func (t *Table) Pick(sym rune, rng *rand.Rand) (*Clip, error) {
	c := t.entries[sym]
	switch len(c) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrMissingClip, sym)
	case 1:
		return c[0], nil
	}
	return c[rng.IntN(len(c))], nil
}

// Covers returns an error naming the first symbol of alphabet that has no
// clip.
func (t *Table) Covers(alphabet string) error {
	for _, sym := range alphabet {
		if len(t.entries[sym]) == 0 {
			return fmt.Errorf("%w: %q", ErrMissingClip, sym)
		}
	}
	return nil
}

// Symbols returns the table keys in A-Z, 0-9 order.
func (t *Table) Symbols() []rune {
	out := make([]rune, 0, len(t.entries))
	for _, sym := range Symbols {
		if _, ok := t.entries[sym]; ok {
			out = append(out, sym)
		}
	}
	return out
}

// Len returns the number of symbols.
func (t *Table) Len() int {
	return len(t.entries)
}

// Size returns the decoded PCM size of all clips in bytes.
func (t *Table) Size() int {
	return t.size
}

// Format returns the format every clip was converted to.
func (t *Table) Format() audio.Format {
	return t.format
}
