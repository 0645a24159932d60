// Package styles holds the color theme and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette of the application.
type Theme struct {
	Primary   lipgloss.Color // focus, playing artist, gradient start
	Secondary lipgloss.Color // controls, gradient end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style // row of the artist or track currently playing
	Cursor  lipgloss.Style
	Button  lipgloss.Style // search bar controls
	Marker  lipgloss.Style // current option in a menu
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   "#a78bfa",
	Secondary: "#f1a208",

	FgBase:   "#c0c0c0",
	FgMuted:  "#808080",
	FgSubtle: "#585858",

	BgCursor: "#303030",

	Border:      "#585858",
	BorderFocus: "#a78bfa",

	Error:   "#ff5555",
	Warning: "#f1a208",
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles of the theme, built on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		base := lipgloss.NewStyle().Foreground(t.FgBase)
		t.styles = &Styles{
			Base:    base,
			Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
			Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
			Title:   base.Bold(true),
			Playing: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
			Cursor:  lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
			Button:  lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
			Marker:  lipgloss.NewStyle().Foreground(t.Primary),
			Error:   lipgloss.NewStyle().Foreground(t.Error),
			Warning: lipgloss.NewStyle().Foreground(t.Warning),
		}
	}
	return t.styles
}
