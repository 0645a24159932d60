package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded panel style, highlighted when focused.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	color := t.Border
	if focused {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// Panel renders content inside a bordered box of the given outer size.
func Panel(content string, width, height int, focused bool) string {
	return PanelStyle(focused).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Render(content)
}
