package library

import (
	"database/sql"
	"errors"

	"github.com/llehouerou/cuteplay/internal/artist"
	dbutil "github.com/llehouerou/cuteplay/internal/db"
)

// ErrNotFound is returned by lookups by ID when nothing matches.
var ErrNotFound = errors.New("not found")

const trackColumns = `id, artist_id, path, mtime, artist, album, title,
	disc_number, track_number, year, genre, added_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanTrack(s scanner) (Track, error) {
	var t Track
	var discNum, trackNum, year sql.NullInt64
	var genre sql.NullString

	err := s.Scan(&t.ID, &t.ArtistID, &t.Path, &t.Mtime, &t.Artist, &t.Album, &t.Title,
		&discNum, &trackNum, &year, &genre, &t.AddedAt)
	if err != nil {
		return Track{}, err
	}
	t.DiscNumber = int(dbutil.NullInt64Value(discNum))
	t.TrackNumber = int(dbutil.NullInt64Value(trackNum))
	t.Year = int(dbutil.NullInt64Value(year))
	t.Genre = dbutil.NullStringValue(genre)
	return t, nil
}

func (l *Library) queryTracks(query string, args ...any) ([]Track, error) {
	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

func (l *Library) queryTrack(query string, args ...any) (*Track, error) {
	t, err := scanTrack(l.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ArtistByID returns the artist with the given ID.
func (l *Library) ArtistByID(id int64) (*artist.Artist, error) {
	var a artist.Artist
	err := l.db.QueryRow(`SELECT id, name FROM library_artists WHERE id = ?`, id).Scan(&a.ID, &a.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Albums returns the albums of an artist, oldest first, undated last.
func (l *Library) Albums(artistID int64) ([]Album, error) {
	rows, err := l.db.Query(`
		SELECT album, MAX(year) AS year, COUNT(*)
		FROM library_tracks
		WHERE artist_id = ?
		GROUP BY album
		ORDER BY (year IS NULL OR year = 0), year, album COLLATE NOCASE
	`, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []Album
	for rows.Next() {
		var a Album
		var year sql.NullInt64
		if err := rows.Scan(&a.Name, &year, &a.TrackCount); err != nil {
			return nil, err
		}
		a.Year = int(dbutil.NullInt64Value(year))
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

// Tracks returns the tracks of one album of an artist in disc/track order.
func (l *Library) Tracks(artistID int64, album string) ([]Track, error) {
	return l.queryTracks(`
		SELECT `+trackColumns+`
		FROM library_tracks
		WHERE artist_id = ? AND album = ?
		ORDER BY disc_number, track_number, title COLLATE NOCASE
	`, artistID, album)
}

// ArtistTracks returns all tracks of an artist, album by album.
func (l *Library) ArtistTracks(artistID int64) ([]Track, error) {
	return l.queryTracks(`
		SELECT `+trackColumns+`
		FROM library_tracks
		WHERE artist_id = ?
		ORDER BY (year IS NULL OR year = 0), year, album COLLATE NOCASE,
		         disc_number, track_number, title COLLATE NOCASE
	`, artistID)
}

// TrackByID returns a track by its ID.
func (l *Library) TrackByID(id int64) (*Track, error) {
	return l.queryTrack(`SELECT `+trackColumns+` FROM library_tracks WHERE id = ?`, id)
}

// RandomTrack returns a uniformly chosen track, or ErrNotFound when the
// library is empty.
func (l *Library) RandomTrack() (*Track, error) {
	return l.queryTrack(`SELECT ` + trackColumns + ` FROM library_tracks ORDER BY RANDOM() LIMIT 1`)
}

// ArtistCount returns the number of artists.
func (l *Library) ArtistCount() (int, error) {
	var count int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM library_artists`).Scan(&count)
	return count, err
}

// TrackCount returns the total number of tracks.
func (l *Library) TrackCount() (int, error) {
	var count int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM library_tracks`).Scan(&count)
	return count, err
}
