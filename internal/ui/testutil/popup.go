package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cuteplay/internal/ui/popup"
)

// PopupHarness drives a popup.Popup in tests and records the commands it
// returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness wraps p, keeping the command returned by Init.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// SetSize sets the popup dimensions.
func (h *PopupHarness) SetSize(width, height int) {
	h.popup.SetSize(width, height)
}

// View returns the popup content.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// Send passes msg to the popup and returns the resulting command.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey sends the key identified by name, see Key.
func (h *PopupHarness) SendKey(name string) tea.Cmd {
	return h.Send(Key(name))
}

func (h *PopupHarness) SendEnter() tea.Cmd  { return h.SendKey("enter") }
func (h *PopupHarness) SendEscape() tea.Cmd { return h.SendKey("esc") }
func (h *PopupHarness) SendUp() tea.Cmd     { return h.SendKey("up") }
func (h *PopupHarness) SendDown() tea.Cmd   { return h.SendKey("down") }

// LastCommand returns the most recent command, or nil if none.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// AssertViewContains returns a failure message when the view does not
// contain substr.
func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}
