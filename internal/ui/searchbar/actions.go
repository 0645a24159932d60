package searchbar

import (
	"github.com/llehouerou/cuteplay/internal/playback"
	"github.com/llehouerou/cuteplay/internal/ui/action"
)

// QueryChanged reports a new query value.
type QueryChanged struct {
	Query string
}

// ActionType implements action.Action.
func (a QueryChanged) ActionType() string { return "searchbar.query_changed" }

// OpenSortMenu asks for the sort dropdown.
type OpenSortMenu struct{}

// ActionType implements action.Action.
func (a OpenSortMenu) ActionType() string { return "searchbar.open_sort_menu" }

// Blurred reports that the query input lost focus.
type Blurred struct{}

// ActionType implements action.Action.
func (a Blurred) ActionType() string { return "searchbar.blurred" }

// Playback requests a playback action from a bar control.
type Playback struct {
	Action playback.Action
}

// ActionType implements action.Action.
func (a Playback) ActionType() string { return "searchbar.playback" }

// ActionMsg creates an action.Msg for a searchbar action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "searchbar", Action: a}
}
