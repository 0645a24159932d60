package helpbindings

import "github.com/llehouerou/cuteplay/internal/ui/action"

const source = "helpbindings"

// Close is emitted when the user dismisses the popup.
type Close struct{}

func (Close) ActionType() string { return source + ".close" }

// ActionMsg wraps a for delivery to the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: source, Action: a}
}
