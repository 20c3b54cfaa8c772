// Package grove drives the Seeed Grove 0.96" OLED (an SSD1308 controller) as a 16x8 character panel.
//
// The controller is kept in page addressing mode, so every text row is one 8 pixel page, and characters are
// 8x8 cells built from the 5x7 font.
package grove

import (
	"fmt"
	"github.com/callebjorkell/hub-oled/internal/font"
	"github.com/callebjorkell/hub-oled/internal/oled"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"time"
)

// Addr is the default I²C address of the panel.
const Addr = 0x3C

const (
	rows      = 8
	cols      = 16
	cellWidth = 8
	width     = cols * cellWidth

	controlCommand = 0x00
	controlData    = 0x40

	cmdMemoryMode      = 0x20
	cmdPageMode        = 0x02
	cmdScrollRight     = 0x26
	cmdScrollLeft      = 0x27
	cmdScrollStop      = 0x2E
	cmdScrollStart     = 0x2F
	cmdContrast        = 0x81
	cmdNormalDisplay   = 0xA6
	cmdInverseDisplay  = 0xA7
	cmdDisplayOff      = 0xAE
	cmdDisplayOn       = 0xAF
	cmdPageStart       = 0xB0
	cmdLowColumnStart  = 0x00
	cmdHighColumnStart = 0x10

	powerDelay = 5 * time.Millisecond
)

// Dev is a Grove OLED panel.
type Dev struct {
	c conn.Conn

	// pixel column and page of the next write
	x    int
	page int
}

// NewI2C returns a panel on the given bus. Nothing is sent until Init is called.
func NewI2C(b i2c.Bus, addr uint16) *Dev {
	return New(&i2c.Dev{Bus: b, Addr: addr})
}

// New returns a panel on an already addressed connection.
func New(c conn.Conn) *Dev {
	return &Dev{c: c}
}

func (d *Dev) String() string {
	return fmt.Sprintf("grove.Dev{%s}", d.c)
}

func (d *Dev) Type() oled.Type {
	return oled.TypeGrove
}

func (d *Dev) Size() (int, int) {
	return rows, cols
}

// Init wakes the controller, selects normal polarity and page addressing and blanks the panel.
func (d *Dev) Init() error {
	log.Debugf("Initializing %v", d)
	if err := d.sendCommands(cmdDisplayOff); err != nil {
		return err
	}
	time.Sleep(powerDelay)
	if err := d.sendCommands(cmdDisplayOn); err != nil {
		return err
	}
	time.Sleep(powerDelay)
	if err := d.sendCommands(cmdNormalDisplay, cmdMemoryMode, cmdPageMode); err != nil {
		return err
	}
	return d.Clear()
}

// Clear blanks every page with the panel switched off, then turns it back on with the cursor at the origin.
func (d *Dev) Clear() error {
	if err := d.sendCommands(cmdDisplayOff); err != nil {
		return err
	}

	blank := make([]byte, width)
	for page := 0; page < rows; page++ {
		if err := d.SetTextCursor(page, 0); err != nil {
			return err
		}
		if err := d.sendData(blank); err != nil {
			return err
		}
	}

	if err := d.sendCommands(cmdDisplayOn); err != nil {
		return err
	}
	return d.SetTextCursor(0, 0)
}

func (d *Dev) SetTextCursor(row, col int) error {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return fmt.Errorf("grove: cursor %d,%d outside of %dx%d", row, col, rows, cols)
	}

	x := col * cellWidth
	if err := d.sendCommands(
		byte(cmdPageStart+row),
		byte(cmdLowColumnStart|x&0x0F),
		byte(cmdHighColumnStart|(x>>4)&0x0F),
	); err != nil {
		return err
	}
	d.page, d.x = row, x
	return nil
}

// WriteString draws s from the cursor. Text that does not fit on the row is dropped.
func (d *Dev) WriteString(s string) error {
	n := min(len(s), (width-d.x)/cellWidth)
	if n <= 0 {
		return nil
	}

	buf := make([]byte, n*cellWidth)
	for i := 0; i < n; i++ {
		font.Render(buf[i*cellWidth:(i+1)*cellWidth], s[i])
	}
	return d.write(buf)
}

// DrawBitmap sends raw page columns from the cursor, clipped at the right edge.
func (d *Dev) DrawBitmap(columns []byte) error {
	n := min(len(columns), width-d.x)
	if n <= 0 {
		return nil
	}
	return d.write(columns[:n])
}

func (d *Dev) write(columns []byte) error {
	if err := d.sendData(columns); err != nil {
		return err
	}
	d.x += len(columns)
	return nil
}

func (d *Dev) SetBrightness(level uint8) error {
	return d.sendCommands(cmdContrast, level)
}

func (d *Dev) SetInverted(inverted bool) error {
	if inverted {
		return d.sendCommands(cmdInverseDisplay)
	}
	return d.sendCommands(cmdNormalDisplay)
}

func (d *Dev) DisplayOn() error {
	return d.sendCommands(cmdDisplayOn)
}

func (d *Dev) DisplayOff() error {
	return d.sendCommands(cmdDisplayOff)
}

// Scroll sets up and starts the horizontal scroll engine for the pages between startPage and endPage.
func (d *Dev) Scroll(dir oled.ScrollDirection, startPage, endPage uint8, speed oled.ScrollSpeed) error {
	if startPage >= rows || endPage >= rows {
		return fmt.Errorf("grove: scroll pages %d-%d outside of 0-%d", startPage, endPage, rows-1)
	}

	cmd := byte(cmdScrollLeft)
	if dir == oled.ScrollRight {
		cmd = cmdScrollRight
	}
	return d.sendCommands(cmd, 0x00, startPage, byte(speed), endPage, 0x00, 0xFF, cmdScrollStart)
}

func (d *Dev) StopScroll() error {
	return d.sendCommands(cmdScrollStop)
}

func (d *Dev) sendCommands(cmds ...byte) error {
	return d.tx(controlCommand, cmds)
}

func (d *Dev) sendData(data []byte) error {
	return d.tx(controlData, data)
}

func (d *Dev) tx(control byte, b []byte) error {
	w := make([]byte, 0, len(b)+1)
	w = append(w, control)
	w = append(w, b...)
	if err := d.c.Tx(w, nil); err != nil {
		return fmt.Errorf("grove: %w", err)
	}
	return nil
}

var _ oled.Backend = (*Dev)(nil)
var _ oled.Clearer = (*Dev)(nil)
