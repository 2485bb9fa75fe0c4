package app

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateToWidth(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc"},
		{"abcde", 5, "abcde"},
		{"abcdefgh", 5, "abcd…"},
	}
	for _, c := range cases {
		if got := truncateToWidth(c.in, c.width); got != c.want {
			t.Errorf("truncateToWidth(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}

func TestChannelLinesFitWidth(t *testing.T) {
	m := testModel(t)

	// Channel rows are wider than the panel; each rendered line must still
	// fit, with no styling escape cut in half.
	const width = 12
	for i, line := range m.renderChannels(m.right, 0, width) {
		if got := lipgloss.Width(line); got > width {
			t.Errorf("line %d renders %d cells wide, want <= %d", i, got, width)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 5); got != "abcdef" {
		t.Errorf("padRight on wide input = %q, want unchanged", got)
	}
}
