package phonetic

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/callcopy/callcopy/internal/audio"
)

// encodeWAV writes integer PCM as a WAV file and returns its bytes.
func encodeWAV(t *testing.T, rate, depth, channels int, data []int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	enc := wav.NewEncoder(f, rate, depth, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: depth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("Failed to write wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Failed to close encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func tone(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = (i%20 - 10) * 1000
	}
	return data
}

// manifestFS builds an in-memory asset tree for every manifest entry.
func manifestFS(t *testing.T) fstest.MapFS {
	t.Helper()
	clip := encodeWAV(t, 11025, 16, 1, tone(200))

	fsys := fstest.MapFS{}
	for _, sym := range Symbols {
		for _, name := range AssetNames(sym) {
			fsys[name] = &fstest.MapFile{Data: clip}
		}
	}
	return fsys
}

func TestDecodeWAV(t *testing.T) {
	target := audio.Format{SampleRate: 22050, Channels: 1}

	tests := []struct {
		name     string
		rate     int
		depth    int
		channels int
		data     []int
		want     []int16
	}{
		{"16-bit", 22050, 16, 1, []int{0, 1000, -1000}, []int16{0, 1000, -1000}},
		{"8-bit unsigned", 22050, 8, 1, []int{128, 192, 64}, []int16{0, 16384, -16384}},
		{"24-bit", 22050, 24, 1, []int{0x100000, -0x100000}, []int16{4096, -4096}},
		{"stereo downmix", 22050, 16, 2, []int{100, 300, -200, -400}, []int16{200, -300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := encodeWAV(t, tt.rate, tt.depth, tt.channels, tt.data)
			clip, err := Decode("test.wav", raw, target)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if len(clip.Samples) != len(tt.want) {
				t.Fatalf("Expected %d samples, got %d", len(tt.want), len(clip.Samples))
			}
			for i := range tt.want {
				if clip.Samples[i] != tt.want[i] {
					t.Errorf("Sample %d = %d, want %d", i, clip.Samples[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecodeResamples(t *testing.T) {
	raw := encodeWAV(t, 11025, 16, 1, tone(1102))
	clip, err := Decode("Tone.WAV", raw, audio.DefaultFormat())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(clip.Samples) != 2204 {
		t.Errorf("Expected 2204 samples after upsampling, got %d", len(clip.Samples))
	}
	if clip.Format != audio.DefaultFormat() {
		t.Errorf("Expected clip in device format, got %v", clip.Format)
	}
	if d := clip.Duration().Milliseconds(); d != 99 {
		t.Errorf("Expected 99ms clip, got %dms", d)
	}
	if clip.Size() != 4408 {
		t.Errorf("Expected 4408 bytes, got %d", clip.Size())
	}
}

func TestDecodeErrors(t *testing.T) {
	format := audio.DefaultFormat()

	if _, err := Decode("clip.ogg", []byte("OggS"), format); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for .ogg, got %v", err)
	}
	if _, err := Decode("clip.wav", []byte("not a riff file at all"), format); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for garbage wav, got %v", err)
	}
	if _, err := Decode("clip.mp3", nil, format); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for empty mp3, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	table, err := Load(manifestFS(t), audio.DefaultFormat())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if table.Len() != 36 {
		t.Errorf("Expected 36 symbols, got %d", table.Len())
	}
	if err := table.Covers(Symbols); err != nil {
		t.Errorf("Table should cover every symbol: %v", err)
	}

	india, ok := table.Clips('I')
	if !ok || len(india) != 2 {
		t.Fatalf("Expected two clips for I, got %d", len(india))
	}
	if india[0].Name != "india.wav" || india[1].Name != "india-alt.wav" {
		t.Errorf("Unexpected clip order: %s, %s", india[0].Name, india[1].Name)
	}

	syms := table.Symbols()
	if string(syms) != Symbols {
		t.Errorf("Symbols() = %q, want %q", string(syms), Symbols)
	}

	// 37 clips of 400 samples each
	if table.Size() != 37*400*audio.BytesPerSample {
		t.Errorf("Unexpected table size %d", table.Size())
	}
}

func TestLoadFailsOnMissingAsset(t *testing.T) {
	fsys := manifestFS(t)
	delete(fsys, "india-alt.wav")

	if _, err := Load(fsys, audio.DefaultFormat()); !errors.Is(err, ErrMissingClip) {
		t.Fatalf("Expected ErrMissingClip, got %v", err)
	}
}

func TestLoadFailsOnBadAsset(t *testing.T) {
	fsys := manifestFS(t)
	fsys["zulu.wav"] = &fstest.MapFile{Data: []byte("broken")}

	if _, err := Load(fsys, audio.DefaultFormat()); err == nil {
		t.Fatal("Expected decode error for a corrupt asset")
	}
}

func TestLoadEmbedded(t *testing.T) {
	table, err := LoadEmbedded(audio.DefaultFormat())
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}

	if err := table.Covers(Symbols); err != nil {
		t.Fatal(err)
	}
	for _, sym := range Symbols {
		clips, _ := table.Clips(sym)
		for _, c := range clips {
			if len(c.Samples) == 0 {
				t.Errorf("Clip %s is empty", c.Name)
			}
			if c.Symbol != sym {
				t.Errorf("Clip %s has symbol %q, want %q", c.Name, c.Symbol, sym)
			}
		}
	}
}

func TestPick(t *testing.T) {
	table, err := Load(manifestFS(t), audio.DefaultFormat())
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(1, 2))

	seen := map[string]int{}
	for i := 0; i < 200; i++ {
		c, err := table.Pick('I', rng)
		if err != nil {
			t.Fatalf("Pick failed: %v", err)
		}
		seen[c.Name]++
	}
	if seen["india.wav"] == 0 || seen["india-alt.wav"] == 0 {
		t.Errorf("Expected both India clips to be picked, got %v", seen)
	}

	if _, err := table.Pick('?', rng); !errors.Is(err, ErrMissingClip) {
		t.Errorf("Expected ErrMissingClip, got %v", err)
	}
	if err := table.Covers("AB?"); !errors.Is(err, ErrMissingClip) {
		t.Errorf("Expected Covers to report '?', got %v", err)
	}
}
