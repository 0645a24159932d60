package tags

import (
	"errors"

	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

var errNoVorbisComment = errors.New("no vorbis comment block")

func readFLAC(path string) (*Tag, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, err
	}

	for _, meta := range f.Meta {
		if meta.Type != goflac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, err
		}
		get := func(key string) string {
			values, err := cmt.Get(key)
			if err != nil || len(values) == 0 {
				return ""
			}
			return values[0]
		}
		year := parseYear(get(flacvorbis.FIELD_DATE))
		return &Tag{
			Path:        path,
			Title:       get(flacvorbis.FIELD_TITLE),
			Artist:      get(flacvorbis.FIELD_ARTIST),
			AlbumArtist: get("ALBUMARTIST"),
			Album:       get(flacvorbis.FIELD_ALBUM),
			Genre:       get(flacvorbis.FIELD_GENRE),
			TrackNumber: parseNumberPair(get(flacvorbis.FIELD_TRACKNUMBER)),
			DiscNumber:  parseNumberPair(get("DISCNUMBER")),
			Year:        year,
		}, nil
	}
	return nil, errNoVorbisComment
}
