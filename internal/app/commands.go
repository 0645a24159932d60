package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cuteplay/internal/playback"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// DispatchPlayback returns a command delivering a to the app.
func DispatchPlayback(a playback.Action) tea.Cmd {
	return func() tea.Msg {
		return PlaybackActionMsg{Action: a}
	}
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchServiceEvents returns a command that waits for the next playback
// service event and converts it to a tea.Msg.
func (m Model) WatchServiceEvents() tea.Cmd {
	sub := m.playbackSub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg(e)
		case e := <-sub.Error:
			return ServiceErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}
