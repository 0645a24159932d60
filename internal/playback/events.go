package playback

import "time"

// Events delivered on a Subscription.
type (
	StateChange struct {
		Previous, Current State
	}

	// TrackChange is sent when a different track starts, by an action or
	// by advancing at the end of a track.
	TrackChange struct {
		Previous, Current *Track
	}

	// PositionChange is sent after a seek.
	PositionChange struct {
		Position time.Duration
	}

	// ErrorEvent reports a failure that no caller could receive, such as
	// a failed advance after a track ended.
	ErrorEvent struct {
		Operation string
		Path      string
		Err       error
	}
)
