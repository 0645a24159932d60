// Package testutil holds helpers for testing bubbletea components: named key
// messages, a popup harness and ANSI-stripped view assertions.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var namedKeys = map[string]tea.KeyType{
	"enter":       tea.KeyEnter,
	"esc":         tea.KeyEscape,
	"tab":         tea.KeyTab,
	"backspace":   tea.KeyBackspace,
	"up":          tea.KeyUp,
	"down":        tea.KeyDown,
	"left":        tea.KeyLeft,
	"right":       tea.KeyRight,
	"home":        tea.KeyHome,
	"end":         tea.KeyEnd,
	"pgup":        tea.KeyPgUp,
	"pgdown":      tea.KeyPgDown,
	"shift+left":  tea.KeyShiftLeft,
	"shift+right": tea.KeyShiftRight,
	"ctrl+c":      tea.KeyCtrlC,
	"ctrl+d":      tea.KeyCtrlD,
	"ctrl+o":      tea.KeyCtrlO,
	"ctrl+r":      tea.KeyCtrlR,
	"ctrl+u":      tea.KeyCtrlU,
}

// Key builds the tea.KeyMsg whose String() is name.
// Names that are not special keys become rune input.
func Key(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// ExecuteCmd runs cmd and returns its message, or nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// StripANSI removes escape sequences so views can be compared as text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the display width of s without its escape sequences.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// ContainsLine reports whether any line of output contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first line containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// SplitLines splits output into lines without the trailing blank ones.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// AssertContains returns a failure message when the stripped output does
// not contain substr, or "" when it does.
func AssertContains(output, substr string) string {
	if !strings.Contains(StripANSI(output), substr) {
		return "expected output to contain " + substr
	}
	return ""
}
