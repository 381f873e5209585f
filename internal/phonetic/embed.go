package phonetic

import (
	"embed"
	"io/fs"

	"github.com/callcopy/callcopy/internal/audio"
)

//go:generate go run ../../cmd/gensounds -out sounds

//go:embed sounds/*.wav
var sounds embed.FS

// LoadEmbedded loads the clips bundled into the binary.
func LoadEmbedded(format audio.Format) (*Table, error) {
	fsys, err := fs.Sub(sounds, "sounds")
	if err != nil {
		return nil, err
	}
	return Load(fsys, format)
}
