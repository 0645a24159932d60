// Package tags reads the metadata the library needs from music files.
package tags

import (
	"path/filepath"
	"strconv"
	"strings"
)

// File extensions the library indexes. These are the formats the player
// can decode.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtWAV  = ".wav"
	ExtOGG  = ".ogg"
)

// Tag is the subset of file metadata used to build the library.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Genre       string
	TrackNumber int
	DiscNumber  int
	Year        int
}

// LibraryArtist returns the name the library files this track under:
// album artist, then track artist, then UnknownArtist.
func (t *Tag) LibraryArtist() string {
	if s := strings.TrimSpace(t.AlbumArtist); s != "" {
		return s
	}
	if s := strings.TrimSpace(t.Artist); s != "" {
		return s
	}
	return UnknownArtist
}

// UnknownArtist groups tracks without any artist tag.
const UnknownArtist = "Unknown Artist"

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtWAV, ExtOGG:
		return true
	}
	return false
}

// fromFilename is the fallback tag when nothing can be read.
func fromFilename(path string) *Tag {
	base := filepath.Base(path)
	return &Tag{
		Path:  path,
		Title: strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

// parseNumberPair parses "5" or "5/10" and returns 5.
func parseNumberPair(s string) int {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "/"); idx >= 0 {
		s = s[:idx]
	}
	n, _ := strconv.Atoi(s)
	return n
}

// parseYear extracts the year from "YYYY" or "YYYY-MM-DD".
func parseYear(s string) int {
	s = strings.TrimSpace(s)
	if len(s) > 4 {
		s = s[:4]
	}
	y, _ := strconv.Atoi(s)
	return y
}
