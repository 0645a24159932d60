package sortmenu

import (
	"github.com/llehouerou/cuteplay/internal/ui/action"
)

// Chosen reports the sort direction picked by the user.
type Chosen struct {
	Ascending bool
}

// ActionType implements action.Action.
func (a Chosen) ActionType() string { return "sortmenu.chosen" }

// Dismissed reports that the menu was closed without a choice.
type Dismissed struct{}

// ActionType implements action.Action.
func (a Dismissed) ActionType() string { return "sortmenu.dismissed" }

// ActionMsg creates an action.Msg for a sortmenu action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "sortmenu", Action: a}
}
