package playback

import "github.com/llehouerou/cuteplay/internal/player"

// State is what the service reports to the UI and to MPRIS. It mirrors
// the player state but belongs to the service API.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

var playerStates = map[player.State]State{
	player.Stopped: StateStopped,
	player.Playing: StatePlaying,
	player.Paused:  StatePaused,
}

func stateFromPlayer(ps player.State) State {
	return playerStates[ps]
}

func (s State) String() string {
	for ps, st := range playerStates {
		if st == s {
			return ps.String()
		}
	}
	return "Unknown"
}

// IsActive reports whether a track is loaded.
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
