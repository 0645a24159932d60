package app

import (
	"github.com/llehouerou/cuteplay/internal/ui"
)

// bodyHeight is the height above the status line.
func (m Model) bodyHeight() int {
	return max(m.height-ui.StatusHeight, 0)
}

// searchRows returns the [top, bottom) screen rows of the search bar.
func (m Model) searchRows() (top, bottom int) {
	if m.cfg.SearchbarOnTop() {
		return 0, ui.SearchBarHeight
	}
	body := m.bodyHeight()
	return body - ui.SearchBarHeight, body
}

// resize lays the screens out for the current terminal size.
func (m *Model) resize() {
	body := m.bodyHeight()
	m.details.SetSize(m.width, body)
	m.details.SetTopRow(0)

	listHeight := body
	listTop := 0
	if m.search.Visible() {
		listHeight = max(body-ui.SearchBarHeight, 0)
		top, _ := m.searchRows()
		if m.cfg.SearchbarOnTop() {
			listTop = ui.SearchBarHeight
		}
		m.search.SetRow(top)
	}
	m.search.SetSize(m.width, ui.SearchBarHeight)
	m.artists.SetSize(m.width, listHeight)
	m.artists.SetTopRow(listTop)
}
