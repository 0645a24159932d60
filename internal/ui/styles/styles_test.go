package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestGradient_KeepsText(t *testing.T) {
	tests := []string{"", "A", "Queen", "Sigur Rós", "坂本龍一"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			out := Gradient(text, lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff"))
			if got := ansi.Strip(out); got != text {
				t.Errorf("stripped gradient = %q, want %q", got, text)
			}
		})
	}
}

func TestBlend(t *testing.T) {
	colors := blend(3, lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff"))

	if len(colors) != 3 {
		t.Fatalf("len = %d, want 3", len(colors))
	}
	if colors[0].Hex() == colors[2].Hex() {
		t.Error("gradient endpoints are identical")
	}
}

func TestParseHex_ANSIFallsBackToGray(t *testing.T) {
	c := parseHex(lipgloss.Color("240"))
	if c.R != c.G || c.G != c.B {
		t.Errorf("fallback is not gray: %v", c)
	}
}

func TestGradientTitle(t *testing.T) {
	if got := ansi.Strip(GradientTitle("ABBA")); got != "ABBA" {
		t.Errorf("GradientTitle stripped = %q", got)
	}
}

func TestPanel_Size(t *testing.T) {
	out := Panel("hello", 20, 5, true)
	lines := strings.Split(out, "\n")

	if len(lines) != 5 {
		t.Errorf("panel height = %d, want 5", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 20 {
			t.Errorf("line %d width = %d, want 20", i, w)
		}
	}
}

func TestTheme_StylesCached(t *testing.T) {
	if T().S() != T().S() {
		t.Error("S() rebuilt styles")
	}
}
