// Package artistlist provides the Artists screen: the derived artist list,
// its rows and the empty placeholder.
package artistlist

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cuteplay/internal/artist"
	"github.com/llehouerou/cuteplay/internal/keymap"
	"github.com/llehouerou/cuteplay/internal/navigation"
	"github.com/llehouerou/cuteplay/internal/ui"
	"github.com/llehouerou/cuteplay/internal/ui/cursor"
	"github.com/llehouerou/cuteplay/internal/ui/list"
)

// EmptyText is shown when the display list is empty.
const EmptyText = "No artists found"

// Model is the Artists screen.
type Model struct {
	ui.Base
	state     artist.ListState
	list      list.Model[artist.Artist]
	keys      *keymap.Resolver
	playingID int64
}

// New creates the screen with an empty library and the given sort direction.
func New(ascending bool) Model {
	m := Model{
		state: artist.NewListState(ascending),
		list:  list.New[artist.Artist](ui.ScrollMargin),
		keys:  keymap.NewResolver(keymap.ByContext(keymap.ContextArtists)),
	}
	m.list.SetLayout(ui.PanelOverhead, 0)
	return m
}

// SetSize sets the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetSize(width, height)
	m.list.SetItems(m.state.Items())
}

// SetFocused sets whether the screen receives keys.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.list.SetFocused(focused)
}

// SetTopRow sets the screen row of the panel's top border, for mouse hits.
func (m *Model) SetTopRow(row int) {
	m.list.SetLayout(ui.PanelOverhead, row+ui.BorderHeight/2+ui.HeaderHeight)
}

// SetArtists replaces the source collection.
func (m *Model) SetArtists(artists []artist.Artist) {
	m.update(func(s *artist.ListState) { s.SetArtists(artists) })
}

// SetQuery updates the filter query.
func (m *Model) SetQuery(query string) {
	m.update(func(s *artist.ListState) { s.SetQuery(query) })
}

// SetAscending updates the sort direction.
func (m *Model) SetAscending(ascending bool) {
	m.update(func(s *artist.ListState) { s.SetAscending(ascending) })
}

// update applies change and resyncs the list, keeping the selected artist
// selected when it is still displayed.
func (m *Model) update(change func(*artist.ListState)) {
	prev, hadSelection := m.list.Selected()
	change(&m.state)
	m.list.SetItems(m.state.Items())
	if hadSelection {
		m.SelectByID(prev.ID)
	}
}

// SelectByID moves the cursor to the artist with id, if displayed.
func (m *Model) SelectByID(id int64) bool {
	i := artist.IndexOf(m.state.Items(), id)
	if i < 0 {
		return false
	}
	m.list.Select(i)
	m.list.Cursor().ClearDirection()
	return true
}

// SetPlayingArtist sets the artist whose row is highlighted, 0 for none.
func (m *Model) SetPlayingArtist(id int64) {
	m.playingID = id
}

// Query returns the current query.
func (m Model) Query() string { return m.state.Query() }

// Ascending reports the current sort direction.
func (m Model) Ascending() bool { return m.state.Ascending() }

// Items returns the display list.
func (m Model) Items() []artist.Artist { return m.state.Items() }

// Selected returns the artist under the cursor.
func (m Model) Selected() (artist.Artist, bool) {
	return m.list.Selected()
}

// SelectedID returns the ID of the artist under the cursor, 0 when empty.
func (m Model) SelectedID() int64 {
	a, ok := m.list.Selected()
	if !ok {
		return 0
	}
	return a.ID
}

// ScrollHidesSearch reports whether the last scroll went down past the
// first page, which hides the search bar.
func (m *Model) ScrollHidesSearch() bool {
	c := m.list.Cursor()
	return c.Direction() == cursor.DirDown && !c.AtTop()
}

// Update handles navigation keys and mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.IsFocused() {
		if m.keys.Resolve(key.String()) == keymap.ActionSelect {
			return m, m.open(m.list.SelectedIndex())
		}
	}

	before := m.SelectedID()
	res := m.list.Update(msg)
	switch res.Action { //nolint:exhaustive // nothing to do on ActionNone
	case list.ActionClick:
		return m, m.open(res.Index)
	case list.ActionMoved:
		if id := m.SelectedID(); id != before {
			return m, func() tea.Msg { return ActionMsg(SelectionChanged{ID: id}) }
		}
	}
	return m, nil
}

// open navigates to the details of the artist at index i.
func (m Model) open(i int) tea.Cmd {
	items := m.state.Items()
	if i < 0 || i >= len(items) {
		return nil
	}
	id := items[i].ID
	return func() tea.Msg {
		return navigation.NavigateMsg{Screen: navigation.ArtistDetails{ID: id}}
	}
}
