package utils

import "github.com/mattn/go-runewidth"

// TruncateString shortens s to at most width terminal cells, marking the cut
// with an ellipsis.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces up to width cells. Longer strings are truncated.
func PadRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillRight(TruncateString(s, width), width)
}

// TailString keeps the last cells of s that fit into width, so the end of a
// long draft stays visible while typing.
func TailString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > width-1 {
			break
		}
		used += w
		start--
	}
	return "…" + string(runes[start:])
}
