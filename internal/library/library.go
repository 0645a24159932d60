// Package library indexes music files into SQLite and answers the queries
// the artist browser needs.
package library

import (
	"database/sql"

	"github.com/llehouerou/cuteplay/internal/artist"
)

// Track is one indexed music file.
type Track struct {
	ID          int64
	ArtistID    int64
	Path        string
	Mtime       int64
	Title       string
	Artist      string // track artist tag, may differ from the library artist
	Album       string
	DiscNumber  int
	TrackNumber int
	Year        int
	Genre       string
	AddedAt     int64
}

// Album aggregates the tracks of one artist sharing an album name.
type Album struct {
	Name       string
	Year       int
	TrackCount int
}

// Library wraps the database holding the indexed tracks.
type Library struct {
	db *sql.DB
}

// New creates a library over db. The schema must already exist, see InitSchema.
func New(db *sql.DB) *Library {
	return &Library{db: db}
}

// Artists returns every library artist ordered by name, ignoring case.
// This is the source order of the artist browser.
func (l *Library) Artists() ([]artist.Artist, error) {
	rows, err := l.db.Query(`
		SELECT id, name FROM library_artists ORDER BY name COLLATE NOCASE, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artists []artist.Artist
	for rows.Next() {
		var a artist.Artist
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}
