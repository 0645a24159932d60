package tags

import (
	"github.com/bogem/id3v2/v2"
)

func readMP3(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	return &Tag{
		Path:        path,
		Title:       id3tag.Title(),
		Artist:      id3tag.Artist(),
		AlbumArtist: id3tag.GetTextFrame("TPE2").Text,
		Album:       id3tag.Album(),
		Genre:       id3tag.Genre(),
		TrackNumber: parseNumberPair(id3tag.GetTextFrame("TRCK").Text),
		DiscNumber:  parseNumberPair(id3tag.GetTextFrame("TPOS").Text),
		Year:        parseYear(id3tag.Year()),
	}, nil
}
