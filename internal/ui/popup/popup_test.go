package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestDialog_Render(t *testing.T) {
	d := New()
	d.Title = "Sort artists"
	d.Content = "Ascending\nDescending"
	d.Footer = "enter select"

	out := ansi.Strip(d.Render(60, 20))

	for _, want := range []string{"Sort artists", "Ascending", "Descending", "enter select", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
}

func TestDialog_RenderCentered(t *testing.T) {
	d := New()
	d.Content = "x"

	out := d.Render(40, 11)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// 3-line box in 11 rows leaves 4 blank rows above.
	if len(lines) != 7 {
		t.Fatalf("Render() lines = %d, want 7", len(lines))
	}
	for i := range 4 {
		if strings.TrimSpace(lines[i]) != "" {
			t.Errorf("line %d = %q, want blank", i, lines[i])
		}
	}
	if !strings.HasPrefix(ansi.Strip(lines[4]), " ") {
		t.Errorf("box not indented: %q", lines[4])
	}
}

func TestDialog_TruncatesToTerminal(t *testing.T) {
	d := New()
	d.Content = strings.Repeat("w", 100)

	out := d.Render(30, 10)

	for line := range strings.SplitSeq(out, "\n") {
		if w := lipgloss.Width(line); w > 30 {
			t.Errorf("line width %d exceeds terminal: %q", w, ansi.Strip(line))
		}
	}
}

func TestCenter(t *testing.T) {
	out := Center("ab", 6, 3)
	want := "      \n  ab\n"
	if out != want {
		t.Errorf("Center() = %q, want %q", out, want)
	}
}

func TestDialog_BoxWidth(t *testing.T) {
	d := New()
	d.Title = "Key bindings"
	d.Content = "q  Quit"
	d.Footer = "esc close"

	box := d.Box(80)

	// widest text + padding + border
	if got := lipgloss.Width(box); got != len("Key bindings")+4 {
		t.Errorf("Box() width = %d, want %d", got, len("Key bindings")+4)
	}
	lines := strings.Split(ansi.Strip(box), "\n")
	if len(lines) != 7 {
		t.Errorf("Box() lines = %d, want 7", len(lines))
	}
}
