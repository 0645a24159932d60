package artistdetails

import (
	"github.com/llehouerou/cuteplay/internal/playback"
	"github.com/llehouerou/cuteplay/internal/ui/action"
)

// Playback requests a playback action for a row or the whole artist.
type Playback struct {
	Action playback.Action
}

// ActionType implements action.Action.
func (a Playback) ActionType() string { return "artistdetails.playback" }

// ActionMsg creates an action.Msg for an artistdetails action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "artistdetails", Action: a}
}
