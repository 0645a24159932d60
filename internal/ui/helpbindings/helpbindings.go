// Package helpbindings provides a scrollable popup listing the key bindings
// of the current screen.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cuteplay/internal/keymap"
	"github.com/llehouerou/cuteplay/internal/ui"
	"github.com/llehouerou/cuteplay/internal/ui/popup"
	"github.com/llehouerou/cuteplay/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	keymap.ContextGlobal:   "Global",
	keymap.ContextPlayback: "Playback",
	keymap.ContextArtists:  "Artists",
	keymap.ContextSearch:   "Search",
	keymap.ContextDetails:  "Artist details",
}

// keyLabels replaces key names that render poorly.
var keyLabels = map[string]string{
	" ": "space",
}

// chrome is the number of rows taken by the dialog border, title and footer.
const chrome = 2 + 2 + 2

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	keys         *keymap.Resolver
	bindings     []keymap.Binding
	active       bool
	scrollOffset int
}

// New creates a closed help popup.
func New() Model {
	return Model{keys: keymap.NewResolver(keymap.ByContext(keymap.ContextHelp))}
}

// Show opens the popup with the bindings of the given contexts, in order.
func (m *Model) Show(contexts []string, width, height int) {
	m.bindings = keymap.ForContexts(contexts...)
	m.scrollOffset = 0
	m.SetSize(width, height)
	m.active = true
}

// Reset closes the popup.
func (m *Model) Reset() {
	m.active = false
	m.scrollOffset = 0
}

// Active returns whether the popup is shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.active {
		return m, nil
	}

	switch m.keys.Resolve(keyMsg.String()) { //nolint:exhaustive // help context only
	case keymap.ActionCancel:
		m.Reset()
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case keymap.ActionMoveDown:
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case keymap.ActionMoveUp:
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup. It renders the visible part of the list,
// padded to the widest line so the box keeps its width while scrolling.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.lines()
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := lines[start:end]
	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}
	return strings.Join(visible, "\n")
}

// Render returns the popup boxed and centered on a terminal of the given size.
func (m *Model) Render(termWidth, termHeight int) string {
	if !m.active {
		return ""
	}
	d := popup.New()
	d.Title = "Key bindings"
	d.Content = m.View()
	d.Footer = m.footer()
	return d.Render(termWidth, termHeight)
}

func (m Model) lines() []string {
	s := styles.T().S()
	keyStyle := s.Playing
	headerStyle := s.Button

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, lipgloss.Width(keyString(b)))
	}

	var lines []string
	context := ""
	for _, b := range m.bindings {
		if b.Context != context {
			if context != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				headerStyle.Render(label),
				s.Subtle.Render(strings.Repeat("─", keyWidth+15)))
			context = b.Context
		}

		keys := keyString(b)
		padded := keys + strings.Repeat(" ", keyWidth-lipgloss.Width(keys))
		lines = append(lines, keyStyle.Render(padded)+"  "+s.Base.Render(b.Description))
	}
	return lines
}

func keyString(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if label, ok := keyLabels[k]; ok {
			k = label
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m Model) footer() string {
	if len(m.lines()) <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 3)
}

func (m Model) maxScroll() int {
	return max(len(m.lines())-m.visibleHeight(), 0)
}
