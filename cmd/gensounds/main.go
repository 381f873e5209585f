// Command gensounds writes the placeholder phonetic clips: each symbol is
// keyed as Morse code so every clip is distinct and the trainer is usable
// before real recordings are dropped into internal/phonetic/sounds.
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"

	"github.com/callcopy/callcopy/internal/phonetic"
)

// element is one keyed or silent span, in dits.
type element struct {
	weight  int
	keyDown bool
}

var (
	dit       = element{1, true}
	dah       = element{3, true}
	elemBreak = element{1, false}
	charBreak = element{3, false}
)

var morse = map[rune][]element{
	'A': {dit, dah}, 'B': {dah, dit, dit, dit}, 'C': {dah, dit, dah, dit},
	'D': {dah, dit, dit}, 'E': {dit}, 'F': {dit, dit, dah, dit},
	'G': {dah, dah, dit}, 'H': {dit, dit, dit, dit}, 'I': {dit, dit},
	'J': {dit, dah, dah, dah}, 'K': {dah, dit, dah}, 'L': {dit, dah, dit, dit},
	'M': {dah, dah}, 'N': {dah, dit}, 'O': {dah, dah, dah},
	'P': {dit, dah, dah, dit}, 'Q': {dah, dah, dit, dah}, 'R': {dit, dah, dit},
	'S': {dit, dit, dit}, 'T': {dah}, 'U': {dit, dit, dah},
	'V': {dit, dit, dit, dah}, 'W': {dit, dah, dah}, 'X': {dah, dit, dit, dah},
	'Y': {dah, dit, dah, dah}, 'Z': {dah, dah, dit, dit},
	'0': {dah, dah, dah, dah, dah}, '1': {dit, dah, dah, dah, dah},
	'2': {dit, dit, dah, dah, dah}, '3': {dit, dit, dit, dah, dah},
	'4': {dit, dit, dit, dit, dah}, '5': {dit, dit, dit, dit, dit},
	'6': {dah, dit, dit, dit, dit}, '7': {dah, dah, dit, dit, dit},
	'8': {dah, dah, dah, dit, dit}, '9': {dah, dah, dah, dah, dit},
}

type options struct {
	out       string
	rate      int
	wpm       int
	frequency float64
	altFreq   float64
	amplitude float64
	ramp      float64
}

var opts options

var rootCmd = &cobra.Command{
	Use:          "gensounds",
	Short:        "Generate placeholder phonetic clips",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(opts)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.out, "out", "sounds", "output directory")
	f.IntVar(&opts.rate, "rate", 11025, "sample rate in Hz")
	f.IntVar(&opts.wpm, "wpm", 25, "keying speed in words per minute")
	f.Float64Var(&opts.frequency, "freq", 650, "tone frequency in Hz")
	f.Float64Var(&opts.altFreq, "alt-freq", 800, "tone frequency for alternate clips in Hz")
	f.Float64Var(&opts.amplitude, "amplitude", 0.5, "peak amplitude (0-1)")
	f.Float64Var(&opts.ramp, "ramp", 0.005, "rise and fall time in seconds")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generate(o options) error {
	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return err
	}

	for _, sym := range phonetic.Symbols {
		code, ok := morse[sym]
		if !ok {
			return fmt.Errorf("no morse code for %q", sym)
		}
		for i, name := range phonetic.AssetNames(sym) {
			freq := o.frequency
			if i > 0 {
				freq = o.altFreq
			}
			path := filepath.Join(o.out, name)
			if err := writeClip(path, key(code, o, freq), o.rate); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
			log.Info("Wrote clip", "symbol", string(sym), "file", path)
		}
	}
	return nil
}

// key renders one character followed by a character break.
func key(code []element, o options, freq float64) []int {
	ditSamples := 60.0 / float64(50*o.wpm) * float64(o.rate)
	peak := o.amplitude * math.MaxInt16
	rampSamples := o.ramp * float64(o.rate)

	var spans []element
	for i, e := range code {
		if i > 0 {
			spans = append(spans, elemBreak)
		}
		spans = append(spans, e)
	}
	spans = append(spans, charBreak)

	var out []int
	for _, s := range spans {
		n := int(math.Round(float64(s.weight) * ditSamples))
		for i := 0; i < n; i++ {
			if !s.keyDown {
				out = append(out, 0)
				continue
			}
			env := 1.0
			if edge := math.Min(float64(i), float64(n-1-i)); edge < rampSamples {
				env = 0.5 - 0.5*math.Cos(math.Pi*edge/rampSamples)
			}
			t := float64(i) / float64(o.rate)
			out = append(out, int(peak*env*math.Sin(2*math.Pi*freq*t)))
		}
	}
	return out
}

func writeClip(path string, samples []int, rate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
