package oled

import "strings"

func truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}

// formatLine returns text fitted to exactly width bytes. Centered text gets the odd blank on the right.
func formatLine(text string, width int, centered bool) string {
	text = truncate(text, width)
	pad := width - len(text)

	left := 0
	if centered {
		left = pad / 2
	}
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}

func blankLine(width int) string {
	return strings.Repeat(" ", width)
}
