package oled

import "strings"

// SetHeaderLines reserves the top rows for the given lines. Lines beyond MaxHeaderLines are dropped, and each
// line is cut to MaxLineChars. The header is not drawn until PrintHeader or Clear is called.
func (d *Display) SetHeaderLines(lines []string) {
	if !d.initialized {
		return
	}

	d.headerCount = min(len(lines), MaxHeaderLines)
	for i := 0; i < d.headerCount; i++ {
		d.headers[i] = truncate(lines[i], MaxLineChars)
	}
	d.startLine = d.headerCount
}

// SetHeader is SetHeaderLines for a newline separated string.
func (d *Display) SetHeader(header string) {
	d.SetHeaderLines(strings.SplitN(header, "\n", MaxHeaderLines+1))
}

// SetHeaderLine replaces a single header line, growing the header if index is past its current end.
func (d *Display) SetHeaderLine(index int, text string) {
	if !d.initialized || index < 0 || index >= MaxHeaderLines {
		return
	}

	d.headers[index] = truncate(text, MaxLineChars)
	if index >= d.headerCount {
		d.headerCount = index + 1
		d.startLine = d.headerCount
	}
}

// PrintHeader draws the header, centered, on the top rows.
func (d *Display) PrintHeader() {
	if !d.initialized {
		return
	}

	for i := 0; i < d.headerCount; i++ {
		d.writeRow(i, formatLine(d.headers[i], d.cols, true))
	}
}

// ClearHeader blanks the header rows and gives them back to the content area.
func (d *Display) ClearHeader() {
	if !d.initialized {
		return
	}

	for i := 0; i < d.headerCount; i++ {
		d.clearRow(i)
		d.headers[i] = ""
	}
	d.headerCount = 0
	d.startLine = 0
}

func (d *Display) HeaderLineCount() int {
	return d.headerCount
}

// HeaderLine returns the stored text of a header line, or "" when index is out of range.
func (d *Display) HeaderLine(index int) string {
	if index < 0 || index >= d.headerCount {
		return ""
	}
	return d.headers[index]
}
