package artistdetails

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/cuteplay/internal/icons"
	"github.com/llehouerou/cuteplay/internal/ui"
	"github.com/llehouerou/cuteplay/internal/ui/render"
	"github.com/llehouerou/cuteplay/internal/ui/styles"
)

// View renders the artist panel.
func (m Model) View() string {
	width, height := m.Size()
	if width < 4 || height < overhead {
		return ""
	}
	inner := width - 2
	s := styles.T().S()

	var lines []string
	if m.notFound {
		lines = make([]string, 0, height-ui.BorderHeight)
		for range height - ui.BorderHeight {
			lines = append(lines, render.EmptyLine(inner))
		}
		lines[len(lines)/2] = s.Muted.Render(render.Center(NotFoundText, inner))
		return styles.Panel(strings.Join(lines, "\n"), width, height, m.IsFocused())
	}

	title := render.Truncate(m.artist.Name, inner)
	lines = append(lines,
		styles.GradientTitle(title)+render.EmptyLine(max(inner-lipgloss.Width(title), 0)),
		s.Muted.Render(render.Pad(m.stats(), inner)),
		render.Separator(inner),
	)

	start, end := m.list.VisibleRange()
	items := m.list.Items()
	for i := start; i < end; i++ {
		lines = append(lines, m.row(items[i], inner, i == m.list.SelectedIndex()))
	}
	for len(lines) < height-ui.BorderHeight {
		lines = append(lines, render.EmptyLine(inner))
	}
	return styles.Panel(strings.Join(lines, "\n"), width, height, m.IsFocused())
}

func (m Model) stats() string {
	return count(m.albumCount, "album") + " · " + count(m.trackCount, "track")
}

func count(n int, word string) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(n, word, "")
}

func (m Model) row(e entry, width int, selected bool) string {
	s := styles.T().S()
	style := s.Base
	var text string
	if e.isTrack() {
		num := "  "
		if e.track.TrackNumber > 0 {
			num = fmt.Sprintf("%02d", e.track.TrackNumber)
		}
		text = render.Fit("  "+num+" "+icons.FormatAudio(e.track.Title), width)
		if e.track.ID == m.playingID && m.playingID != 0 {
			style = s.Playing
		}
	} else {
		style = s.Title
		year := ""
		if e.album.Year > 0 {
			year = strconv.Itoa(e.album.Year)
		}
		name := render.Truncate(icons.FormatAlbum(e.album.Name), max(width-len(year)-1, 1))
		text = render.Row(name, year, width)
	}
	if selected && m.IsFocused() {
		style = style.Background(styles.T().BgCursor)
	}
	return style.Render(text)
}
