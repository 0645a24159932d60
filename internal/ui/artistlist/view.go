package artistlist

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/cuteplay/internal/artist"
	"github.com/llehouerou/cuteplay/internal/icons"
	"github.com/llehouerou/cuteplay/internal/ui"
	"github.com/llehouerou/cuteplay/internal/ui/render"
	"github.com/llehouerou/cuteplay/internal/ui/styles"
)

// View renders the panel with its header and rows, or the empty placeholder.
func (m Model) View() string {
	width, height := m.Size()
	if width < 4 || height < ui.PanelOverhead {
		return ""
	}
	inner := width - 2
	rows := height - ui.PanelOverhead

	lines := make([]string, 0, rows+ui.HeaderHeight)
	lines = append(lines, m.header(inner), render.Separator(inner))

	if m.state.IsEmpty() {
		lines = append(lines, m.empty(inner, rows)...)
	} else {
		start, end := m.list.VisibleRange()
		items := m.state.Items()
		for i := start; i < end; i++ {
			lines = append(lines, m.row(items[i], inner, i == m.list.SelectedIndex()))
		}
	}
	for len(lines) < rows+ui.HeaderHeight {
		lines = append(lines, render.EmptyLine(inner))
	}

	return styles.Panel(strings.Join(lines, "\n"), width, height, m.IsFocused())
}

func (m Model) header(width int) string {
	s := styles.T().S()
	count := humanize.Comma(int64(m.state.Len())) + " artists"
	if q := m.state.Query(); q != "" {
		count = humanize.Comma(int64(m.state.Len())) + " of " + humanize.Comma(int64(len(m.state.Artists())))
	}
	return render.Row(s.Title.Render("Artists"), s.Muted.Render(count), width)
}

// row renders one artist name with its placeholder icon.
func (m Model) row(a artist.Artist, width int, selected bool) string {
	s := styles.T().S()
	text := render.Fit(icons.FormatArtist(a.Name), width)
	style := s.Base
	if a.ID == m.playingID && m.playingID != 0 {
		style = s.Playing
	}
	if selected && m.IsFocused() {
		style = style.Background(styles.T().BgCursor)
	}
	return style.Render(text)
}

func (m Model) empty(width, rows int) []string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = render.EmptyLine(width)
	}
	if rows > 0 {
		lines[rows/2] = styles.T().S().Muted.Render(render.Center(EmptyText, width))
	}
	return lines
}
