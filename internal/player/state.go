package player

// State is the playback state of a Player.
//
// Play moves any state to Playing. Pause and Resume switch between Playing
// and Paused and are ignored in other states. Stop always ends in Stopped.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

var stateNames = [...]string{Stopped: "Stopped", Playing: "Playing", Paused: "Paused"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// IsActive reports whether a track is loaded (playing or paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
