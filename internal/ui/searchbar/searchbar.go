// Package searchbar provides the query bar shown over the artist list.
//
// The bar hosts the query input, the sort trigger, a now playing segment
// and the play random control.
package searchbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/cuteplay/internal/icons"
	"github.com/llehouerou/cuteplay/internal/keymap"
	"github.com/llehouerou/cuteplay/internal/playback"
	"github.com/llehouerou/cuteplay/internal/ui"
	"github.com/llehouerou/cuteplay/internal/ui/render"
	"github.com/llehouerou/cuteplay/internal/ui/styles"
)

// maxTitleWidth bounds the now playing title.
const maxTitleWidth = 32

// NowPlaying is what the bar shows about the player.
type NowPlaying struct {
	Title   string
	Playing bool
	Ready   bool // a track is loaded
}

// Model is the search bar.
type Model struct {
	ui.Base
	input        textinput.Model
	keys         *keymap.Resolver
	query        string
	ascending    bool
	nowPlaying   NowPlaying
	scrollHidden bool
	row          int // screen row of the top border
}

// New creates an unfocused bar with an empty query.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search artists..."
	ti.CharLimit = 256
	ti.Prompt = icons.Search() + " "
	ti.PromptStyle = styles.T().S().Muted
	ti.PlaceholderStyle = styles.T().S().Subtle
	ti.Cursor.SetMode(cursor.CursorStatic)

	return Model{
		input:     ti,
		keys:      keymap.NewResolver(keymap.ByContext(keymap.ContextSearch)),
		ascending: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focus gives the query input focus.
func (m *Model) Focus() tea.Cmd {
	m.SetFocused(true)
	return m.input.Focus()
}

// Blur removes focus from the query input, keeping the query.
func (m *Model) Blur() {
	m.SetFocused(false)
	m.input.Blur()
}

// Query returns the current query.
func (m Model) Query() string {
	return m.query
}

// SetQuery replaces the query without emitting QueryChanged.
func (m *Model) SetQuery(q string) {
	m.query = q
	m.input.SetValue(q)
}

// SetAscending sets the direction shown on the sort trigger.
func (m *Model) SetAscending(ascending bool) {
	m.ascending = ascending
}

// SetNowPlaying updates the now playing segment.
func (m *Model) SetNowPlaying(np NowPlaying) {
	m.nowPlaying = np
}

// SetScrollHidden records whether list scrolling asks the bar to hide.
func (m *Model) SetScrollHidden(hidden bool) {
	m.scrollHidden = hidden
}

// SetRow sets the screen row of the bar's top border, for mouse hits.
func (m *Model) SetRow(row int) {
	m.row = row
}

// Visible reports whether the bar is drawn. Focus and an active query
// keep it visible regardless of scrolling.
func (m Model) Visible() bool {
	return m.IsFocused() || m.query != "" || !m.scrollHidden
}

// Update handles keys while focused and mouse clicks on the controls.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		return m.handleKey(msg)
	}
	if m.IsFocused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.keys.Resolve(msg.String()) { //nolint:exhaustive // search context only
	case keymap.ActionBlurSearch:
		m.Blur()
		return m, func() tea.Msg { return ActionMsg(Blurred{}) }
	case keymap.ActionClearQuery:
		m.input.SetValue("")
		return m, m.queryChanged()
	case keymap.ActionSortMenu:
		return m, func() tea.Msg { return ActionMsg(OpenSortMenu{}) }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, tea.Batch(cmd, m.queryChanged())
}

// queryChanged syncs the query with the input and emits QueryChanged
// when it differs.
func (m *Model) queryChanged() tea.Cmd {
	q := m.input.Value()
	if q == m.query {
		return nil
	}
	m.query = q
	return func() tea.Msg { return ActionMsg(QueryChanged{Query: q}) }
}

func (m Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.Visible() || msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return nil
	}
	if msg.Y != m.row+1 {
		return nil
	}
	l := m.layout()
	switch {
	case l.sort.contains(msg.X):
		return func() tea.Msg { return ActionMsg(OpenSortMenu{}) }
	case l.play.contains(msg.X):
		return func() tea.Msg { return ActionMsg(Playback{Action: playback.PlayPause{}}) }
	case l.fab.contains(msg.X):
		return func() tea.Msg { return ActionMsg(Playback{Action: playback.PlayRandom{}}) }
	}
	return nil
}

// span is a half-open column range on screen.
type span struct{ start, end int }

func (s span) contains(x int) bool { return x >= s.start && x < s.end }

type layout struct {
	left, right string
	leftWidth   int
	sort        span
	play        span
	fab         span
}

func (m Model) sortLabel() string {
	dir := "A-Z"
	if !m.ascending {
		dir = "Z-A"
	}
	return icons.Sort() + " " + dir
}

func (m Model) layout() layout {
	s := styles.T().S()
	inner := max(m.Width()-2, 0)

	sortText := m.sortLabel()
	fabText := icons.Random()

	var playText, titleText string
	if m.nowPlaying.Ready {
		playText = icons.PlayPause(m.nowPlaying.Playing)
		titleText = render.Truncate(m.nowPlaying.Title, maxTitleWidth)
	}

	build := func(withTitle bool) (string, []int) {
		parts := []string{s.Button.Render(sortText)}
		widths := []int{lipgloss.Width(sortText)}
		if withTitle {
			np := s.Button.Render(playText) + " " + s.Playing.Render(titleText)
			parts = append(parts, np)
			widths = append(widths, lipgloss.Width(playText)+1+lipgloss.Width(titleText))
		}
		parts = append(parts, s.Button.Render(fabText))
		widths = append(widths, lipgloss.Width(fabText))
		return strings.Join(parts, "  "), widths
	}

	withTitle := m.nowPlaying.Ready
	right, widths := build(withTitle)
	rightWidth := lipgloss.Width(right)
	promptWidth := lipgloss.Width(m.input.Prompt)
	if withTitle && inner-rightWidth-1 < promptWidth+ui.MinQueryWidth {
		withTitle = false
		right, widths = build(false)
		rightWidth = lipgloss.Width(right)
	}

	leftWidth := max(inner-rightWidth-1, 0)

	// Screen column 0 is the left border.
	col := 1 + leftWidth + 1
	l := layout{right: right, leftWidth: leftWidth}
	l.sort = span{col, col + widths[0]}
	col = l.sort.end + 2
	if withTitle {
		l.play = span{col, col + lipgloss.Width(playText)}
		col += widths[1] + 2
	}
	l.fab = span{col, col + widths[len(widths)-1]}

	input := m.input
	input.Width = max(leftWidth-promptWidth-1, 1)
	left := ansi.Truncate(input.View(), leftWidth, "")
	l.left = left + strings.Repeat(" ", max(leftWidth-lipgloss.Width(left), 0))
	return l
}

// View renders the bar, or nothing when hidden.
func (m Model) View() string {
	if !m.Visible() || m.Width() < 4 {
		return ""
	}
	l := m.layout()
	return styles.Panel(l.left+" "+l.right, m.Width(), ui.SearchBarHeight, m.IsFocused())
}
