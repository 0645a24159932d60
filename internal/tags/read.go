package tags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Read reads tag metadata from a music file.
// WAV files and files without readable tags get a tag derived from the
// file name; only I/O errors are returned.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return readFallback(path)
	}

	title := m.Title()
	if title == "" {
		title = fromFilename(path).Title
	}
	track, _ := m.Track()
	disc, _ := m.Disc()

	return &Tag{
		Path:        path,
		Title:       title,
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
		Genre:       m.Genre(),
		TrackNumber: track,
		DiscNumber:  disc,
		Year:        m.Year(),
	}, nil
}

// readFallback tries a format-specific reader when dhowden/tag fails.
func readFallback(path string) (*Tag, error) {
	var (
		t   *Tag
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3:
		// dhowden/tag has issues with some UTF-16 encoded ID3 frames
		t, err = readMP3(path)
	case ExtFLAC:
		t, err = readFLAC(path)
	case ExtOGG:
		t, err = readOgg(path)
	}
	if err != nil || t == nil {
		return fromFilename(path), nil //nolint:nilerr // untagged files are still indexed
	}
	if t.Title == "" {
		t.Title = fromFilename(path).Title
	}
	return t, nil
}
