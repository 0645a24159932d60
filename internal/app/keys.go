package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cuteplay/internal/keymap"
	"github.com/llehouerou/cuteplay/internal/navigation"
	"github.com/llehouerou/cuteplay/internal/playback"
)

// keyHandler attempts to handle a key, reporting whether it did.
type keyHandler func(key string) (bool, tea.Cmd)

// handleKeyMsg routes a key press: open sort menu first, then the query
// input while focused, then global and playback bindings, then the screen.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	key := msg.String()

	if m.sortMenu.Active() {
		_, cmd := m.sortMenu.Update(msg)
		return m, cmd
	}
	if m.help.Active() {
		_, cmd := m.help.Update(msg)
		return m, cmd
	}

	if m.search.IsFocused() {
		if key == "ctrl+c" {
			return m, m.Quit()
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	for _, h := range []keyHandler{m.handleGlobalKeys, m.handlePlaybackKeys, m.handleArtistsKeys} {
		if handled, cmd := h(key); handled {
			return m, cmd
		}
	}
	return m.routeToScreen(msg)
}

// handleGlobalKeys handles quit, help and library refresh.
func (m *Model) handleGlobalKeys(key string) (bool, tea.Cmd) {
	switch m.keys.Resolve(key) { //nolint:exhaustive // global context only
	case keymap.ActionQuit:
		return true, m.Quit()
	case keymap.ActionRefreshLibrary:
		return true, m.startLibraryScan()
	case keymap.ActionHelp:
		m.help.Show(m.helpContexts(), m.width, m.height)
		return true, nil
	}
	return false, nil
}

// helpContexts lists the binding contexts reachable from the current screen.
func (m Model) helpContexts() []string {
	screen := keymap.ContextArtists
	if _, ok := m.nav.Current().(navigation.ArtistDetails); ok {
		screen = keymap.ContextDetails
	}
	contexts := []string{screen, keymap.ContextPlayback, keymap.ContextGlobal}
	if screen == keymap.ContextArtists {
		contexts = append(contexts, keymap.ContextSearch)
	}
	return contexts
}

var playbackActions = map[keymap.Action]playback.Action{
	keymap.ActionPlayPause:   playback.PlayPause{},
	keymap.ActionPlayRandom:  playback.PlayRandom{},
	keymap.ActionStop:        playback.Stop{},
	keymap.ActionNextTrack:   playback.Next{},
	keymap.ActionPrevTrack:   playback.Previous{},
	keymap.ActionSeekForward: playback.SeekForward{},
	keymap.ActionSeekBack:    playback.SeekBackward{},
}

// handlePlaybackKeys dispatches playback bindings.
func (m *Model) handlePlaybackKeys(key string) (bool, tea.Cmd) {
	a, ok := playbackActions[m.keys.Resolve(key)]
	if !ok {
		return false, nil
	}
	return true, DispatchPlayback(a)
}

// handleArtistsKeys opens the query input and the sort menu from the
// Artists screen.
func (m *Model) handleArtistsKeys(key string) (bool, tea.Cmd) {
	if _, ok := m.nav.Current().(navigation.Artists); !ok {
		return false, nil
	}
	switch m.artistKeys.Resolve(key) { //nolint:exhaustive // artists context only
	case keymap.ActionFocusSearch:
		cmd := m.search.Focus()
		m.applyFocus()
		m.resize()
		return true, cmd
	case keymap.ActionSortMenu:
		m.sortMenu.Show(m.artists.Ascending(), m.width, m.height)
		return true, nil
	}
	return false, nil
}

// routeToScreen forwards a message to the current screen.
func (m Model) routeToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.nav.Current().(type) {
	case navigation.ArtistDetails:
		m.details, cmd = m.details.Update(msg)
	default:
		m.artists, cmd = m.artists.Update(msg)
	}
	return m, cmd
}

// handleMouseMsg routes mouse events to the search bar or the screen.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.sortMenu.Active() || m.help.Active() {
		return m, nil
	}
	if _, ok := m.nav.Current().(navigation.Artists); ok && m.search.Visible() {
		top, bottom := m.searchRows()
		if msg.Y >= top && msg.Y < bottom {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
	}
	return m.routeToScreen(msg)
}
