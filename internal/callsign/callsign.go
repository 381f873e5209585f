package callsign

import (
	"errors"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/callcopy/callcopy/internal/audio"
	"github.com/callcopy/callcopy/internal/phonetic"
)

// ErrUnknownSymbol is returned when text contains a symbol with no clip.
var ErrUnknownSymbol = errors.New("unknown callsign symbol")

// Pattern matches every callsign the generator can produce: a one or two
// letter prefix, one digit and a one to four letter suffix.
var Pattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z]{1,4}$`)

// Callsign is a generated trial. Audio holds one clip per rune of Text and
// is fixed at generation time so every replay sounds the same.
type Callsign struct {
	Text  string
	Audio []*phonetic.Clip
}

// IsZero reports whether no callsign has been generated yet.
func (c Callsign) IsZero() bool {
	return c.Text == ""
}

// Sources returns the clips in playback order.
func (c Callsign) Sources() []audio.Source {
	out := make([]audio.Source, len(c.Audio))
	for i, clip := range c.Audio {
		out[i] = clip
	}
	return out
}

// Normalize uppercases user input the way Check compares it.
func Normalize(input string) string {
	return cases.Upper(language.Und).String(input)
}

// Check reports whether input, uppercased, equals the callsign text.
func Check(input string, c Callsign) bool {
	if c.IsZero() {
		return false
	}
	return Normalize(input) == c.Text
}
