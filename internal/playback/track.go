package playback

import "github.com/llehouerou/cuteplay/internal/library"

// Track is the playback copy of a library track.
type Track struct {
	ID          int64
	ArtistID    int64
	Path        string
	Title       string
	Artist      string
	Album       string
	TrackNumber int
}

func trackFromLibrary(t library.Track) Track {
	return Track{
		ID:          t.ID,
		ArtistID:    t.ArtistID,
		Path:        t.Path,
		Title:       t.Title,
		Artist:      t.Artist,
		Album:       t.Album,
		TrackNumber: t.TrackNumber,
	}
}
