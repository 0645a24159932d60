// Package sortmenu provides the dropdown used to pick the artist sort order.
package sortmenu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cuteplay/internal/keymap"
	"github.com/llehouerou/cuteplay/internal/ui"
	"github.com/llehouerou/cuteplay/internal/ui/popup"
	"github.com/llehouerou/cuteplay/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

type option struct {
	label     string
	ascending bool
}

var options = []option{
	{"Ascending", true},
	{"Descending", false},
}

// Model is the sort dropdown.
type Model struct {
	ui.Base
	keys     *keymap.Resolver
	active   bool
	current  bool // direction in effect when the menu opened
	selected int
}

// New creates a closed sort menu.
func New() Model {
	return Model{keys: keymap.NewResolver(keymap.ByContext(keymap.ContextSortMenu))}
}

// Show opens the menu with the cursor on the direction in effect.
func (m *Model) Show(ascending bool, width, height int) {
	m.current = ascending
	m.selected = indexOf(ascending)
	m.SetSize(width, height)
	m.active = true
}

// Reset closes the menu.
func (m *Model) Reset() {
	m.active = false
	m.selected = 0
}

// Active returns whether the menu is shown.
func (m Model) Active() bool {
	return m.active
}

// Selected returns the direction under the cursor.
func (m Model) Selected() bool {
	return options[m.selected].ascending
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.keys.Resolve(keyMsg.String()) { //nolint:exhaustive // sortmenu context only
	case keymap.ActionMoveDown:
		if m.selected < len(options)-1 {
			m.selected++
		}
	case keymap.ActionMoveUp:
		if m.selected > 0 {
			m.selected--
		}
	case keymap.ActionSelect:
		ascending := m.Selected()
		m.Reset()
		return m, func() tea.Msg {
			return ActionMsg(Chosen{Ascending: ascending})
		}
	case keymap.ActionCancel:
		m.Reset()
		return m, func() tea.Msg {
			return ActionMsg(Dismissed{})
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active {
		return ""
	}
	s := styles.T().S()

	lines := make([]string, 0, len(options))
	for i, opt := range options {
		cursor := "  "
		style := s.Base
		if i == m.selected {
			cursor = "> "
			style = s.Title
		}
		mark := "  "
		if opt.ascending == m.current {
			mark = s.Marker.Render(" ✓")
		}
		lines = append(lines, style.Render(cursor+opt.label)+mark)
	}
	return strings.Join(lines, "\n")
}

// Render returns the menu boxed and centered on a terminal of the given size.
func (m *Model) Render(termWidth, termHeight int) string {
	if !m.active {
		return ""
	}
	d := popup.New()
	d.Title = "Sort artists"
	d.Content = m.View()
	d.Footer = "jk move · enter apply · esc close"
	return d.Render(termWidth, termHeight)
}

func indexOf(ascending bool) int {
	for i, opt := range options {
		if opt.ascending == ascending {
			return i
		}
	}
	return 0
}
