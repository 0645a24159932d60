package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral replaces colors that are not #rrggbb, such as ANSI indexes.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// GradientTitle renders a bold heading fading from the primary to the
// secondary theme color.
func GradientTitle(text string) string {
	t := T()
	return Gradient(text, t.Primary, t.Secondary)
}

// Gradient renders bold text whose grapheme clusters blend from one color to
// the other in HCL space.
func Gradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	bold := lipgloss.NewStyle().Bold(true)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return bold.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, c := range blend(len(clusters), from, to) {
		b.WriteString(bold.Foreground(lipgloss.Color(c.Hex())).Render(clusters[i]))
	}
	return b.String()
}

// blend returns n colors evenly spaced from one color to the other.
func blend(n int, from, to lipgloss.Color) []colorful.Color {
	c1, c2 := parseHex(from), parseHex(to)
	if n < 2 {
		return []colorful.Color{c1}
	}
	colors := make([]colorful.Color, n)
	for i := range n {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(n-1)).Clamped()
	}
	return colors
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}
