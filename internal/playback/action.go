package playback

import (
	"fmt"
	"time"
)

// SeekStep is how far SeekForward and SeekBackward move.
const SeekStep = 5 * time.Second

// Action is a playback request dispatched by the UI.
type Action interface {
	action()
	String() string
}

type (
	// PlayRandom starts a random track from the library.
	PlayRandom struct{}
	// PlayPause toggles between playing and paused.
	PlayPause struct{}
	// PlayTrack starts a specific track.
	PlayTrack struct{ ID int64 }
	// PlayArtist queues every track of an artist and starts the first.
	PlayArtist struct{ ID int64 }
	// Next skips to the next queued track, or a random one.
	Next struct{}
	// Previous restarts the track or goes back in history.
	Previous struct{}
	// Stop stops playback, keeping the current track loaded.
	Stop struct{}
	// SeekForward moves SeekStep ahead.
	SeekForward struct{}
	// SeekBackward moves SeekStep back.
	SeekBackward struct{}
)

func (PlayRandom) action()   {}
func (PlayPause) action()    {}
func (PlayTrack) action()    {}
func (PlayArtist) action()   {}
func (Next) action()         {}
func (Previous) action()     {}
func (Stop) action()         {}
func (SeekForward) action()  {}
func (SeekBackward) action() {}

func (PlayRandom) String() string   { return "play random" }
func (PlayPause) String() string    { return "play/pause" }
func (a PlayTrack) String() string  { return fmt.Sprintf("play track %d", a.ID) }
func (a PlayArtist) String() string { return fmt.Sprintf("play artist %d", a.ID) }
func (Next) String() string         { return "next" }
func (Previous) String() string     { return "previous" }
func (Stop) String() string         { return "stop" }
func (SeekForward) String() string  { return "seek forward" }
func (SeekBackward) String() string { return "seek backward" }
