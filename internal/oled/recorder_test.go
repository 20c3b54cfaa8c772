package oled

import (
	"errors"
	"fmt"
	"strings"
)

// recorder is a Backend that keeps a character grid and a log of every call made to it.
type recorder struct {
	typ        Type
	rows, cols int
	grid       [][]byte
	row, col   int
	calls      []string
	failInit   bool
	failWrites bool
}

func newRecorder(t Type) *recorder {
	rows, cols := t.Geometry()
	r := &recorder{typ: t, rows: rows, cols: cols}
	r.reset()
	return r
}

func (r *recorder) reset() {
	r.grid = make([][]byte, r.rows)
	for i := range r.grid {
		r.grid[i] = []byte(strings.Repeat(".", r.cols))
	}
}

func (r *recorder) record(format string, v ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, v...))
}

// writes returns the WriteString calls only.
func (r *recorder) writes() []string {
	var w []string
	for _, c := range r.calls {
		if strings.HasPrefix(c, "write ") {
			w = append(w, c)
		}
	}
	return w
}

func (r *recorder) line(row int) string {
	return string(r.grid[row])
}

func (r *recorder) Init() error {
	r.record("init")
	if r.failInit {
		return errors.New("no ack")
	}
	return nil
}

func (r *recorder) Type() Type {
	return r.typ
}

func (r *recorder) Size() (int, int) {
	return r.rows, r.cols
}

func (r *recorder) SetTextCursor(row, col int) error {
	r.record("cursor %d,%d", row, col)
	r.row, r.col = row, col
	return nil
}

func (r *recorder) WriteString(s string) error {
	r.record("write %d,%d %q", r.row, r.col, s)
	if r.failWrites {
		return errors.New("bus error")
	}
	for i := 0; i < len(s) && r.col < r.cols; i++ {
		r.grid[r.row][r.col] = s[i]
		r.col++
	}
	return nil
}

func (r *recorder) DrawBitmap(columns []byte) error {
	r.record("bitmap %d,%d %x", r.row, r.col, columns)
	return nil
}

func (r *recorder) SetBrightness(level uint8) error {
	r.record("brightness %d", level)
	return nil
}

func (r *recorder) SetInverted(inverted bool) error {
	r.record("inverted %t", inverted)
	return nil
}

func (r *recorder) DisplayOn() error {
	r.record("on")
	return nil
}

func (r *recorder) DisplayOff() error {
	r.record("off")
	return nil
}

func (r *recorder) Scroll(dir ScrollDirection, startPage, endPage uint8, speed ScrollSpeed) error {
	r.record("scroll %v %d-%d %d", dir, startPage, endPage, speed)
	return nil
}

func (r *recorder) StopScroll() error {
	r.record("stop scroll")
	return nil
}

// clearingRecorder also implements Clearer.
type clearingRecorder struct {
	*recorder
}

func (c clearingRecorder) Clear() error {
	c.record("clear")
	for i := range c.grid {
		c.grid[i] = []byte(strings.Repeat(" ", c.cols))
	}
	return nil
}
