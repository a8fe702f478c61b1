package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateAt truncates s to the given display width (in terminal cells),
// marking truncation with "...".
func TruncateAt(s string, width int) string {
	switch {
	case width <= 0:
		return ""
	case runewidth.StringWidth(s) <= width:
		return s
	case width < 3:
		return strings.Repeat(".", width)
	default:
		return runewidth.Truncate(s, width, "...")
	}
}

// PadCenter centers s in a string of the given display width, truncating it
// if it does not fit.
func PadCenter(s string, width int) string {
	s = TruncateAt(s, width)
	missing := width - runewidth.StringWidth(s)
	if missing <= 0 {
		return s
	}
	left := missing / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", missing-left)
}

// PadRight pads s with spaces to the given display width, truncating it if it
// does not fit.
func PadRight(s string, width int) string {
	s = TruncateAt(s, width)
	missing := width - runewidth.StringWidth(s)
	if missing <= 0 {
		return s
	}
	return s + strings.Repeat(" ", missing)
}
