package artistlist

import (
	"github.com/llehouerou/cuteplay/internal/ui/action"
)

// SelectionChanged reports the artist under the cursor, 0 when empty.
type SelectionChanged struct {
	ID int64
}

// ActionType implements action.Action.
func (a SelectionChanged) ActionType() string { return "artistlist.selection_changed" }

// ActionMsg creates an action.Msg for an artistlist action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "artistlist", Action: a}
}
