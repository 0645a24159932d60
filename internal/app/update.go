package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cuteplay/internal/errmsg"
	"github.com/llehouerou/cuteplay/internal/navigation"
	"github.com/llehouerou/cuteplay/internal/ui/action"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)

	case LibraryScanMessage:
		return m.handleLibraryScanMsg(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case navigation.NavigateMsg:
		return m.handleNavigate(msg)

	case navigation.BackMsg:
		return m.handleBack()

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	// Anything else (cursor blink) belongs to the query input.
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleNavigate(msg navigation.NavigateMsg) (tea.Model, tea.Cmd) {
	screen, ok := msg.Screen.(navigation.ArtistDetails)
	if !ok {
		return m, nil
	}
	if err := m.details.Load(m.lib, screen.ID); err != nil {
		m.setError(errmsg.OpArtistLoad, err)
		return m, nil
	}
	m.nav.Push(screen)
	m.logger.Debug("navigate", "screen", screen.Name())
	m.syncNowPlaying()
	m.applyFocus()
	m.resize()
	return m, nil
}

func (m Model) handleBack() (tea.Model, tea.Cmd) {
	if m.nav.Pop() {
		m.applyFocus()
		m.resize()
	}
	return m, nil
}

// applyFocus gives focus to the current screen, or to the query input
// while it is being edited.
func (m *Model) applyFocus() {
	_, onDetails := m.nav.Current().(navigation.ArtistDetails)
	m.details.SetFocused(onDetails)
	m.artists.SetFocused(!onDetails && !m.search.IsFocused())
}
