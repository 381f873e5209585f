package callsign

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/callcopy/callcopy/internal/phonetic"
)

// Field lengths.
const (
	MinPrefix = 1
	MaxPrefix = 2
	MinSuffix = 1
	MaxSuffix = 4
)

// Generator draws callsigns and resolves them against a phonetic table.
// It is not safe for concurrent use.
type Generator struct {
	table *phonetic.Table
	rng   *rand.Rand
}

// NewGenerator returns a generator over table. A nil rng uses a randomly
// seeded PCG source. The table must have a clip for every letter and digit.
func NewGenerator(table *phonetic.Table, rng *rand.Rand) (*Generator, error) {
	if err := table.Covers(phonetic.Symbols); err != nil {
		return nil, fmt.Errorf("phonetic table incomplete: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{table: table, rng: rng}, nil
}

// Generate draws a new callsign and picks one clip for each of its symbols.
func (g *Generator) Generate() (Callsign, error) {
	text := g.Text()
	c, err := g.Resolve(text)
	if err != nil {
		return Callsign{}, err
	}
	log.Debug("Generated callsign", "text", c.Text)
	return c, nil
}

// Text draws callsign text without resolving audio. Letters are distinct
// within the prefix and within the suffix but may repeat across them.
func (g *Generator) Text() string {
	var b strings.Builder
	b.WriteString(sample(g.rng, phonetic.Letters, MinPrefix+g.rng.IntN(MaxPrefix-MinPrefix+1)))
	b.WriteByte(phonetic.Digits[g.rng.IntN(len(phonetic.Digits))])
	b.WriteString(sample(g.rng, phonetic.Letters, MinSuffix+g.rng.IntN(MaxSuffix-MinSuffix+1)))
	return b.String()
}

// Resolve picks one clip uniformly from each symbol's entry, in text order.
func (g *Generator) Resolve(text string) (Callsign, error) {
	clips := make([]*phonetic.Clip, 0, len(text))
	for _, sym := range text {
		clip, err := g.table.Pick(sym, g.rng)
		if err != nil {
			return Callsign{}, fmt.Errorf("%w: %q in %q", ErrUnknownSymbol, sym, text)
		}
		clips = append(clips, clip)
	}
	return Callsign{Text: text, Audio: clips}, nil
}

// PickClip returns one random clip for sym.
func (g *Generator) PickClip(sym rune) (*phonetic.Clip, error) {
	clip, err := g.table.Pick(sym, g.rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
	}
	return clip, nil
}

// sample draws n distinct bytes from alphabet with a partial Fisher-Yates
// shuffle.
func sample(rng *rand.Rand, alphabet string, n int) string {
	pool := []byte(alphabet)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return string(pool[:n])
}
