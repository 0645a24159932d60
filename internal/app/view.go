package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cuteplay/internal/navigation"
	"github.com/llehouerou/cuteplay/internal/ui/overlay"
	"github.com/llehouerou/cuteplay/internal/ui/render"
	"github.com/llehouerou/cuteplay/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var body string
	switch m.nav.Current().(type) {
	case navigation.ArtistDetails:
		body = m.details.View()
	default:
		body = m.renderArtists()
	}

	view := lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatus())

	switch {
	case m.sortMenu.Active():
		view = overlay.Compose(view, m.sortMenu.Render(m.width, m.height), m.width, m.height)
	case m.help.Active():
		view = overlay.Compose(view, m.help.Render(m.width, m.height), m.width, m.height)
	}
	return view
}

func (m Model) renderArtists() string {
	list := m.artists.View()
	if !m.search.Visible() {
		return list
	}
	bar := m.search.View()
	if m.cfg.SearchbarOnTop() {
		return lipgloss.JoinVertical(lipgloss.Left, bar, list)
	}
	return lipgloss.JoinVertical(lipgloss.Left, list, bar)
}

// renderStatus renders the one line status area: the last error, scan
// progress or key hints on the left, playback position on the right.
func (m Model) renderStatus() string {
	s := styles.T().S()

	right := ""
	if m.playback.IsReady() {
		right = render.Duration(m.playback.Position()) + " / " + render.Duration(m.playback.Duration())
	}
	if len(right)+1 > m.width/2 {
		right = ""
	}
	leftWidth := max(m.width-len(right)-1, 0)

	var left string
	switch {
	case m.status != "":
		left = s.Error.Render(render.Truncate(m.status, leftWidth))
	case m.scan != nil:
		left = s.Warning.Render(render.Truncate(scanLabel(m.scan), leftWidth))
	default:
		left = s.Subtle.Render(render.Truncate(m.hint(), leftWidth))
	}
	return render.Row(left, s.Muted.Render(right), m.width)
}

func (m Model) hint() string {
	if m.search.IsFocused() {
		return "esc done · ctrl+u clear · ctrl+o sort"
	}
	if _, ok := m.nav.Current().(navigation.ArtistDetails); ok {
		return "enter play · a play all · esc back"
	}
	return "/ search · o sort · r random · space play/pause · ? help · q quit"
}

func scanLabel(job *scanJob) string {
	p := job.last
	if p.Total > 0 {
		return fmt.Sprintf("Scanning library: %s %d/%d", p.Phase, p.Current, p.Total)
	}
	if p.Phase != "" {
		return "Scanning library: " + p.Phase
	}
	return "Scanning library"
}
