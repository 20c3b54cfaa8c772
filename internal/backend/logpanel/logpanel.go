// Package logpanel is a panel that has no screen at all. Every row that changes is written to the log.
package logpanel

import (
	"fmt"
	"github.com/callebjorkell/hub-oled/internal/oled"
	log "github.com/sirupsen/logrus"
	"strings"
)

// Panel keeps the text of every row and logs the rows as they are written.
type Panel struct {
	typ        oled.Type
	rows, cols int
	cellWidth  int
	lines      [][]byte

	row, col int
	off      bool
}

// New creates a log panel with the geometry of the given display type.
func New(t oled.Type) *Panel {
	rows, cols := t.Geometry()
	cellWidth := 8
	if t == oled.TypeSSD1306 {
		cellWidth = 5
	}

	p := &Panel{typ: t, rows: rows, cols: cols, cellWidth: cellWidth}
	p.lines = make([][]byte, rows)
	for i := range p.lines {
		p.lines[i] = []byte(strings.Repeat(" ", cols))
	}
	return p
}

func (p *Panel) Type() oled.Type {
	return p.typ
}

func (p *Panel) Size() (int, int) {
	return p.rows, p.cols
}

func (p *Panel) Init() error {
	log.Infof("Starting the %v log panel (%dx%d)", p.typ, p.cols, p.rows)
	p.off = false
	return p.Clear()
}

func (p *Panel) Clear() error {
	log.Debugln("Clear panel")
	for _, l := range p.lines {
		for i := range l {
			l[i] = ' '
		}
	}
	p.row, p.col = 0, 0
	return nil
}

func (p *Panel) SetTextCursor(row, col int) error {
	if row < 0 || row >= p.rows || col < 0 || col >= p.cols {
		return fmt.Errorf("logpanel: cursor %d,%d outside of %dx%d", row, col, p.rows, p.cols)
	}
	p.row, p.col = row, col
	return nil
}

func (p *Panel) WriteString(s string) error {
	for i := 0; i < len(s) && p.col < p.cols; i++ {
		c := s[i]
		if c < 0x20 || c > 0x7e {
			c = ' '
		}
		p.lines[p.row][p.col] = c
		p.col++
	}
	p.logRow()
	return nil
}

// DrawBitmap marks every character cell that gets a lit pixel with '#'.
func (p *Panel) DrawBitmap(columns []byte) error {
	for i := 0; i < len(columns) && p.col < p.cols; i += p.cellWidth {
		c := byte(' ')
		for _, b := range columns[i:min(i+p.cellWidth, len(columns))] {
			if b != 0 {
				c = '#'
				break
			}
		}
		p.lines[p.row][p.col] = c
		p.col++
	}
	p.logRow()
	return nil
}

func (p *Panel) SetBrightness(level uint8) error {
	log.Infof("Brightness set to %d", level)
	return nil
}

func (p *Panel) SetInverted(inverted bool) error {
	log.Infof("Inverted set to %t", inverted)
	return nil
}

func (p *Panel) DisplayOn() error {
	log.Infoln("Display on")
	p.off = false
	return nil
}

func (p *Panel) DisplayOff() error {
	log.Infoln("Display off")
	p.off = true
	return nil
}

func (p *Panel) Scroll(dir oled.ScrollDirection, startPage, endPage uint8, speed oled.ScrollSpeed) error {
	log.Infof("Scroll %v pages %d-%d at speed %#x", dir, startPage, endPage, speed)
	return nil
}

func (p *Panel) StopScroll() error {
	log.Infoln("Stop scroll")
	return nil
}

// Lines returns a copy of the text on every row.
func (p *Panel) Lines() []string {
	lines := make([]string, len(p.lines))
	for i, l := range p.lines {
		lines[i] = string(l)
	}
	return lines
}

// On reports whether the panel is powered.
func (p *Panel) On() bool {
	return !p.off
}

func (p *Panel) logRow() {
	if p.off {
		return
	}
	log.Infof("Print line %d: %q", p.row, p.lines[p.row])
}

var _ oled.Backend = (*Panel)(nil)
var _ oled.Clearer = (*Panel)(nil)
