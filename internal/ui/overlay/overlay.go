// Package overlay draws popups over an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose draws top over base line by line. On each line of top, the span
// from its first to its last non-space cell replaces the same columns of
// base; blank lines of top leave base untouched. Styling on both sides is
// preserved and base lines are padded to width.
func Compose(base, top string, width, _ int) string {
	lines := strings.Split(base, "\n")
	for i, over := range strings.Split(top, "\n") {
		if i >= len(lines) {
			break
		}
		start, end, ok := bounds(ansi.Strip(over))
		if !ok {
			continue
		}
		under := lines[i]
		composed := span(under, 0, start) + ansi.Cut(over, start, end)
		if end < width {
			composed += span(under, end, width)
		}
		lines[i] = composed
	}
	return strings.Join(lines, "\n")
}

// bounds returns the cell range between the first and last non-space
// characters of plain.
func bounds(plain string) (start, end int, ok bool) {
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	start = len(trimmed) - len(strings.TrimLeft(trimmed, " "))
	return start, ansi.StringWidth(trimmed), true
}

// span cuts columns [from, to) of s and forces the result to that exact
// width. A wide character cut in half turns into a space.
func span(s string, from, to int) string {
	want := to - from
	part := ansi.Cut(s, from, to)
	switch got := ansi.StringWidth(part); {
	case got < want:
		part += strings.Repeat(" ", want-got)
	case got > want:
		part = " " + ansi.TruncateLeft(part, got-want+1, "")
	}
	return part
}
