package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decodeFunc{
	".mp3": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return mp3.Decode(f)
	},
	".flac": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return flac.Decode(f)
	},
	".wav": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return wav.Decode(f)
	},
	".ogg": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return vorbis.Decode(f)
	},
}

// decode opens path and returns its decoded stream. The returned file must
// be closed after the streamer.
func decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	fn, ok := decoders[ext]
	if !ok {
		return nil, nil, beep.Format{}, fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, err
	}

	streamer, format, err := fn(f)
	if err != nil {
		f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return f, streamer, format, nil
}
