package oled

import (
	log "github.com/sirupsen/logrus"
	"strconv"
	"time"
)

// Display is a grid of fixed-width text rows on top of a Backend. The top rows can be reserved for a header,
// and line numbers passed to SetLine and friends are relative to the first row below it.
//
// A Display never reports errors. Out of range input is ignored or truncated, and failing backend calls are
// logged and otherwise dropped. A Display is not safe for concurrent use.
type Display struct {
	backend Backend
	settle  time.Duration

	rows int
	cols int

	headers     [MaxHeaderLines]string
	headerCount int
	startLine   int

	initialized bool
	brightness  uint8
	inverted    bool

	// next row for Println, relative to startLine
	printLine int
}

// New creates a Display for the given backend. A nil backend gives a display that never initializes.
// opts can be nil to use DefaultOpts.
func New(b Backend, opts *Opts) *Display {
	if opts == nil {
		opts = &DefaultOpts
	}
	return &Display{
		backend:    b,
		settle:     opts.SettleDelay,
		rows:       defaultRows,
		cols:       defaultCols,
		brightness: defaultBrightness,
	}
}

// Init sets up the panel and draws the current header.
func (d *Display) Init() {
	if d.backend == nil {
		d.initialized = false
		return
	}

	log.Debugf("Initializing %v display", d.backend.Type())
	if err := d.backend.Init(); err != nil {
		log.Warnf("Unable to initialize %v display: %v", d.backend.Type(), err)
		d.initialized = false
		return
	}

	d.rows, d.cols = d.backend.Size()
	if d.cols > MaxLineChars {
		d.cols = MaxLineChars
	}
	d.initialized = true
	time.Sleep(d.settle)

	d.PrintHeader()
}

func (d *Display) Initialized() bool {
	return d.initialized
}

func (d *Display) Rows() int {
	return d.rows
}

func (d *Display) Cols() int {
	return d.cols
}

func (d *Display) Type() Type {
	if d.backend == nil {
		return TypeNone
	}
	return d.backend.Type()
}

// ContentHeight is the number of rows available below the header.
func (d *Display) ContentHeight() int {
	return d.rows - d.startLine
}

// ContentStartLine is the physical row that line 0 maps to.
func (d *Display) ContentStartLine() int {
	return d.startLine
}

func (d *Display) Brightness() uint8 {
	return d.brightness
}

func (d *Display) Inverted() bool {
	return d.inverted
}

// SetLine writes text on a content line, padding it with blanks to the full width of the panel.
func (d *Display) SetLine(line int, text string, centered bool) {
	if !d.initialized || line < 0 {
		return
	}
	d.writeRow(d.startLine+line, formatLine(text, d.cols, centered))
}

// Println writes text on the next content line and moves on, wrapping to the first content line once the
// bottom of the panel has been reached.
func (d *Display) Println(text string, centered bool) {
	if !d.initialized {
		return
	}

	// the header may have grown since the last print
	if d.printLine >= d.ContentHeight() {
		d.printLine = 0
	}
	d.SetLine(d.printLine, text, centered)
	d.printLine++
}

func (d *Display) Print(text string) {
	d.Println(text, false)
}

func (d *Display) PrintNumber(line int, n int64, centered bool) {
	if !d.initialized {
		return
	}
	d.SetLine(line, strconv.FormatInt(n, 10), centered)
}

func (d *Display) PrintFloat(line int, f float64, decimals int, centered bool) {
	if !d.initialized {
		return
	}
	if decimals < 0 {
		decimals = 0
	}
	d.SetLine(line, strconv.FormatFloat(f, 'f', decimals, 64), centered)
}

// Clear blanks the whole panel and optionally redraws the header. The header lines themselves are kept.
func (d *Display) Clear(renderHeader bool) {
	if !d.initialized {
		return
	}

	if c, ok := d.backend.(Clearer); ok {
		d.check("clear display", c.Clear())
	} else {
		for row := 0; row < d.rows; row++ {
			d.clearRow(row)
		}
	}
	d.printLine = 0

	if renderHeader {
		d.PrintHeader()
	}
}

// ClearContent blanks every row below the header.
func (d *Display) ClearContent() {
	if !d.initialized {
		return
	}

	for row := d.startLine; row < d.rows; row++ {
		d.clearRow(row)
	}
	d.printLine = 0
}

func (d *Display) SetBrightness(level uint8) {
	if !d.initialized {
		return
	}
	d.brightness = level
	d.check("set brightness", d.backend.SetBrightness(level))
}

func (d *Display) SetInverted(inverted bool) {
	if !d.initialized {
		return
	}
	d.inverted = inverted
	d.check("set inversion", d.backend.SetInverted(inverted))
}

func (d *Display) DisplayOn() {
	if !d.initialized {
		return
	}
	d.check("turn display on", d.backend.DisplayOn())
}

func (d *Display) DisplayOff() {
	if !d.initialized {
		return
	}
	d.check("turn display off", d.backend.DisplayOff())
}

// ScrollLeft starts the hardware scroll of the given page range. Use DefaultScrollStartPage,
// DefaultScrollEndPage and DefaultScrollSpeed to scroll the whole panel.
func (d *Display) ScrollLeft(startPage, endPage uint8, speed ScrollSpeed) {
	d.scroll(ScrollLeft, startPage, endPage, speed)
}

func (d *Display) ScrollRight(startPage, endPage uint8, speed ScrollSpeed) {
	d.scroll(ScrollRight, startPage, endPage, speed)
}

func (d *Display) scroll(dir ScrollDirection, startPage, endPage uint8, speed ScrollSpeed) {
	if !d.initialized {
		return
	}
	d.check("scroll "+dir.String(), d.backend.Scroll(dir, startPage, endPage, speed))
}

func (d *Display) StopScroll() {
	if !d.initialized {
		return
	}
	d.check("stop scrolling", d.backend.StopScroll())
}

// SetCursor moves the backend text cursor for raw writes.
func (d *Display) SetCursor(row, col int) {
	if !d.initialized || row < 0 || row >= d.rows {
		return
	}
	d.check("set cursor", d.backend.SetTextCursor(row, col))
}

// DrawBitmap draws a bitmap in the panel's native column format. Every byte is a column of 8 vertical pixels,
// and each run of width bytes goes one text row further down, starting at row and col.
func (d *Display) DrawBitmap(bitmap []byte, width, row, col int) {
	if !d.initialized || width <= 0 || row < 0 {
		return
	}

	for r := 0; r < len(bitmap)/width; r++ {
		if row+r >= d.rows {
			break
		}
		if err := d.backend.SetTextCursor(row+r, col); err != nil {
			d.check("set cursor", err)
			continue
		}
		d.check("draw bitmap", d.backend.DrawBitmap(bitmap[r*width:(r+1)*width]))
	}
}

// FillRect repeats fill from col to the right, for at most w characters and never past the end of the row.
func (d *Display) FillRect(row, col, w int, fill byte) {
	if !d.initialized || row < 0 || row >= d.rows || col < 0 || col >= d.cols || w <= 0 {
		return
	}

	n := min(w, d.cols-col)
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = fill
	}

	d.write(row, col, string(buf))
}

func (d *Display) writeRow(row int, text string) {
	if !d.initialized || row < 0 || row >= d.rows {
		return
	}
	d.write(row, 0, text)
}

func (d *Display) clearRow(row int) {
	d.writeRow(row, blankLine(d.cols))
}

func (d *Display) write(row, col int, text string) {
	if err := d.backend.SetTextCursor(row, col); err != nil {
		d.check("set cursor", err)
		return
	}
	d.check("write text", d.backend.WriteString(text))
}

func (d *Display) check(action string, err error) {
	if err != nil {
		log.Warnf("Unable to %s on %v display: %v", action, d.backend.Type(), err)
	}
}
