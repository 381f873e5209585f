package callsign

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"unicode"

	"github.com/callcopy/callcopy/internal/audio"
	"github.com/callcopy/callcopy/internal/phonetic"
)

func newTestGenerator(t *testing.T, seed uint64) *Generator {
	t.Helper()
	table, err := phonetic.LoadEmbedded(audio.DefaultFormat())
	if err != nil {
		t.Fatalf("Failed to load phonetic table: %v", err)
	}
	g, err := NewGenerator(table, rand.New(rand.NewPCG(seed, seed+1)))
	if err != nil {
		t.Fatalf("Failed to create generator: %v", err)
	}
	return g
}

// split returns the prefix and suffix around the digit.
func split(text string) (string, string) {
	i := strings.IndexFunc(text, unicode.IsDigit)
	return text[:i], text[i+1:]
}

func distinct(s string) bool {
	seen := map[rune]bool{}
	for _, r := range s {
		if seen[r] {
			return false
		}
		seen[r] = true
	}
	return true
}

func TestGenerateGrammar(t *testing.T) {
	g := newTestGenerator(t, 42)

	prefixLens := map[int]int{}
	suffixLens := map[int]int{}
	crossRepeat := false

	for i := 0; i < 2000; i++ {
		c, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if !Pattern.MatchString(c.Text) {
			t.Fatalf("Callsign %q does not match %s", c.Text, Pattern)
		}

		prefix, suffix := split(c.Text)
		if !distinct(prefix) {
			t.Errorf("Prefix %q repeats a letter", prefix)
		}
		if !distinct(suffix) {
			t.Errorf("Suffix %q repeats a letter", suffix)
		}
		if strings.ContainsAny(prefix, suffix) {
			crossRepeat = true
		}
		prefixLens[len(prefix)]++
		suffixLens[len(suffix)]++
	}

	for n := MinPrefix; n <= MaxPrefix; n++ {
		if prefixLens[n] == 0 {
			t.Errorf("Prefix length %d never drawn", n)
		}
	}
	for n := MinSuffix; n <= MaxSuffix; n++ {
		if suffixLens[n] == 0 {
			t.Errorf("Suffix length %d never drawn", n)
		}
	}
	if !crossRepeat {
		t.Error("Expected some letters to appear in both prefix and suffix")
	}
}

func TestGenerateResolvesAudio(t *testing.T) {
	g := newTestGenerator(t, 7)

	for i := 0; i < 200; i++ {
		c, err := g.Generate()
		if err != nil {
			t.Fatal(err)
		}
		if len(c.Audio) != len(c.Text) {
			t.Fatalf("Callsign %q has %d clips", c.Text, len(c.Audio))
		}
		for j, sym := range c.Text {
			if c.Audio[j].Symbol != sym {
				t.Errorf("Clip %d of %q is for %q", j, c.Text, c.Audio[j].Symbol)
			}
		}
	}
}

func TestGenerateIsSeeded(t *testing.T) {
	a := newTestGenerator(t, 99)
	b := newTestGenerator(t, 99)

	for i := 0; i < 20; i++ {
		ca, _ := a.Generate()
		cb, _ := b.Generate()
		if ca.Text != cb.Text {
			t.Fatalf("Same seed produced %q and %q", ca.Text, cb.Text)
		}
	}
}

func TestResolveExample(t *testing.T) {
	g := newTestGenerator(t, 1)

	c, err := g.Resolve("AB7XYZ")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(c.Audio) != 6 {
		t.Fatalf("Expected 6 clips, got %d", len(c.Audio))
	}

	want := []string{"alfa.wav", "bravo.wav", "seven.wav", "xray.wav", "yankee.wav", "zulu.wav"}
	for i, name := range want {
		if c.Audio[i].Name != name {
			t.Errorf("Clip %d = %s, want %s", i, c.Audio[i].Name, name)
		}
	}

	// Replays reuse the same clips
	first := c.Sources()
	second := c.Sources()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Source %d changed between replays", i)
		}
	}
}

func TestResolveUnknownSymbol(t *testing.T) {
	g := newTestGenerator(t, 1)

	if _, err := g.Resolve("AB-7"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Expected ErrUnknownSymbol, got %v", err)
	}
	if _, err := g.PickClip('#'); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Expected ErrUnknownSymbol, got %v", err)
	}
	if clip, err := g.PickClip('I'); err != nil || clip.Symbol != 'I' {
		t.Errorf("PickClip('I') = %v, %v", clip, err)
	}
}

func TestCheck(t *testing.T) {
	c := Callsign{Text: "AB7XYZ"}

	tests := []struct {
		input string
		want  bool
	}{
		{"AB7XYZ", true},
		{"ab7xyz", true},
		{"Ab7xYz", true},
		{"AB7XY", false},
		{"AB7XYZZ", false},
		{" AB7XYZ", false},
		{"AB8XYZ", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Check(tt.input, c); got != tt.want {
			t.Errorf("Check(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if Check("", Callsign{}) {
		t.Error("Check should fail when no callsign exists")
	}
}

func TestSampleDistinct(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	full := sample(rng, phonetic.Letters, 26)
	if len(full) != 26 || !distinct(full) {
		t.Errorf("Full sample %q is not a permutation", full)
	}
	if got := sample(rng, phonetic.Letters, 0); got != "" {
		t.Errorf("Empty sample = %q", got)
	}
}
