package player

import "time"

// Interface is what the playback service needs from a player. Mock
// implements it for tests.
type Interface interface {
	Play(path string) error
	Stop()
	Pause()
	Resume()
	Toggle()
	Seek(delta time.Duration)

	State() State
	Position() time.Duration
	Duration() time.Duration

	// OnFinished sets the callback for a track playing to its end. It is
	// called on its own goroutine.
	OnFinished(fn func())
}

var (
	_ Interface = (*Player)(nil)
	_ Interface = (*Mock)(nil)
)
