// Package popup draws modal dialogs over the screen.
package popup

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/cuteplay/internal/ui/styles"
)

// Popup is a modal component. View returns the bare content; the owner
// frames it with a Dialog.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// frame is the width taken by the border and the horizontal padding.
const frame = 4

// Style configures the dialog appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the themed dialog style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.Border,
		TitleStyle:  t.S().Title,
		FooterStyle: t.S().Subtle,
	}
}

// Dialog is a bordered box with a centered title and footer around
// left-aligned content.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Style   Style
}

// New creates an empty dialog with the default style.
func New() *Dialog {
	return &Dialog{Style: DefaultStyle()}
}

// Box renders the dialog at most maxWidth columns wide. Content lines that
// do not fit are cut with an ellipsis.
func (d *Dialog) Box(maxWidth int) string {
	width := max(lipgloss.Width(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer))
	width = max(min(width, maxWidth-frame), 1)

	var rows []string
	if d.Title != "" {
		rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, d.Style.TitleStyle.Render(d.Title)), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		rows = append(rows, ansi.Truncate(line, width, "…"))
	}
	if d.Footer != "" {
		footer := ansi.Truncate(d.Style.FooterStyle.Render(d.Footer), width, "…")
		rows = append(rows, "", lipgloss.PlaceHorizontal(width, lipgloss.Center, footer))
	}

	return lipgloss.NewStyle().
		Border(d.Style.Border).
		BorderForeground(d.Style.BorderColor).
		Padding(0, 1).
		Width(width + 2).
		Render(strings.Join(rows, "\n"))
}

// Render returns the dialog centered on a terminal of the given size.
func (d *Dialog) Render(termWidth, termHeight int) string {
	return Center(d.Box(termWidth), termWidth, termHeight)
}

// Center pads content with blank rows above and spaces on the left so it
// sits in the middle of a termWidth x termHeight screen. Every line ends
// with a newline.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	top := max((termHeight-len(lines))/2, 0)
	left := strings.Repeat(" ", max((termWidth-lipgloss.Width(content))/2, 0))

	var b strings.Builder
	for range top {
		b.WriteString(strings.Repeat(" ", termWidth))
		b.WriteByte('\n')
	}
	for _, line := range lines {
		b.WriteString(left)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
