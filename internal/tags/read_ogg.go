package tags

import (
	"go.senan.xyz/taglib"
)

func readOgg(path string) (*Tag, error) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	get := func(key string) string {
		if values := raw[key]; len(values) > 0 {
			return values[0]
		}
		return ""
	}
	return &Tag{
		Path:        path,
		Title:       get(taglib.Title),
		Artist:      get(taglib.Artist),
		AlbumArtist: get(taglib.AlbumArtist),
		Album:       get(taglib.Album),
		Genre:       get(taglib.Genre),
		TrackNumber: parseNumberPair(get(taglib.TrackNumber)),
		DiscNumber:  parseNumberPair(get(taglib.DiscNumber)),
		Year:        parseYear(get(taglib.Date)),
	}, nil
}
