package cursor

import tea "github.com/charmbracelet/bubbletea"

// MouseResult describes what a mouse event did to the cursor.
type MouseResult int

const (
	MouseNone MouseResult = iota
	MouseScrolled
	MouseClicked
)

// wheelStep is how many rows one wheel notch moves.
const wheelStep = 1

// HandleMouse handles wheel and left click events. topRow is the screen row
// of the first visible item. On a click it returns the clicked index.
func (c *Cursor) HandleMouse(msg tea.MouseMsg, listLen, height, topRow int) (MouseResult, int) {
	if listLen == 0 {
		return MouseNone, -1
	}

	switch msg.Button { //nolint:exhaustive // Only handling wheel and left button
	case tea.MouseButtonWheelUp:
		c.Move(-wheelStep, listLen, height)
		return MouseScrolled, -1
	case tea.MouseButtonWheelDown:
		c.Move(wheelStep, listLen, height)
		return MouseScrolled, -1
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return MouseNone, -1
		}
		row := msg.Y - topRow
		if row < 0 || row >= height {
			return MouseNone, -1
		}
		idx := c.offset + row
		if idx >= listLen {
			return MouseNone, -1
		}
		c.Jump(idx, listLen, height)
		return MouseClicked, idx
	}
	return MouseNone, -1
}
