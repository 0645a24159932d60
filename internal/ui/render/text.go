// Package render holds the width-aware string helpers shared by the views.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Sanitize drops invalid UTF-8 and control characters other than tab from
// tag metadata, and turns non-breaking spaces into plain ones.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r == '\t':
			return r
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

// Truncate cuts s to at most width terminal cells, ending with an ellipsis
// when something was cut.
func Truncate(s string, width int) string {
	return runewidth.Truncate(Sanitize(s), width, ellipsis)
}

// Pad right-pads s with spaces to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Fit truncates s and pads it to exactly width cells.
func Fit(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row puts left and right at the two ends of a width-wide line, keeping at
// least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func Separator(width int) string { return strings.Repeat("─", max(width, 0)) }

func EmptyLine(width int) string { return strings.Repeat(" ", max(width, 0)) }

// Center pads s on both sides to width. Wider strings are returned as is.
func Center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Duration formats d as m:ss, or h:mm:ss from one hour.
func Duration(d time.Duration) string {
	d = max(d, 0).Round(time.Second)
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
