// Package playback drives the player from UI actions and tracks what is
// playing. It is the playback state provider of the Artists screen.
package playback

import (
	"errors"
	"time"

	"github.com/llehouerou/cuteplay/internal/library"
	"github.com/llehouerou/cuteplay/internal/player"
)

var (
	// ErrLibraryEmpty is returned when a random track is requested from an
	// empty library.
	ErrLibraryEmpty = errors.New("library is empty")
	// ErrNotReady is returned by controls that need a loaded track.
	ErrNotReady = errors.New("nothing is playing")
	// ErrTrackNotFound is returned when a requested track or artist has no
	// playable track.
	ErrTrackNotFound = errors.New("track not found")
)

// Library is the part of the music library the service reads.
type Library interface {
	RandomTrack() (*library.Track, error)
	TrackByID(id int64) (*library.Track, error)
	ArtistTracks(artistID int64) ([]library.Track, error)
}

// Verify the library implements Library at compile time.
var _ Library = (*library.Library)(nil)

// Service defines the playback service contract.
type Service interface {
	// Handle dispatches a playback action.
	Handle(a Action) error

	// State queries
	State() State
	IsPlaying() bool
	IsReady() bool
	CurrentTrack() *Track
	Position() time.Duration
	Duration() time.Duration
	Player() player.Interface

	// History queries
	History() []Track
	HistoryIndex() int

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
