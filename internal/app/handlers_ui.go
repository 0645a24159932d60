package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cuteplay/internal/ui/action"
	"github.com/llehouerou/cuteplay/internal/ui/artistdetails"
	"github.com/llehouerou/cuteplay/internal/ui/artistlist"
	"github.com/llehouerou/cuteplay/internal/ui/helpbindings"
	"github.com/llehouerou/cuteplay/internal/ui/searchbar"
	"github.com/llehouerou/cuteplay/internal/ui/sortmenu"
)

// handleAction routes actions emitted by UI components.
func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case searchbar.QueryChanged:
		m.artists.SetQuery(a.Query)
		m.syncSearchVisibility()
	case searchbar.OpenSortMenu:
		m.sortMenu.Show(m.artists.Ascending(), m.width, m.height)
	case searchbar.Blurred:
		m.applyFocus()
	case searchbar.Playback:
		return m, DispatchPlayback(a.Action)

	case sortmenu.Chosen:
		m.artists.SetAscending(a.Ascending)
		m.search.SetAscending(a.Ascending)
		m.saveScreen()
	case sortmenu.Dismissed, helpbindings.Close:

	case artistlist.SelectionChanged:
		m.syncSearchVisibility()
		m.saveScreen()

	case artistdetails.Playback:
		return m, DispatchPlayback(a.Action)

	default:
		m.logger.Debug("unhandled action", "source", msg.Source, "type", msg.Action.ActionType())
	}
	return m, nil
}

// syncSearchVisibility hides or shows the search bar after a scroll and
// resizes the list to the space left.
func (m *Model) syncSearchVisibility() {
	before := m.search.Visible()
	m.search.SetScrollHidden(m.artists.ScrollHidesSearch())
	if m.search.Visible() != before {
		m.resize()
	}
}
