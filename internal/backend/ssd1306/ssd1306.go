// Package ssd1306 drives a 128x64 SSD1306 OLED as a 24x8 character panel.
//
// The controller itself is handled by periph.io's ssd1306 driver. Text is rendered into a 1 bit canvas with
// 5 pixel wide cells, and only the band that changed is pushed to the panel.
package ssd1306

import (
	"fmt"
	"github.com/callebjorkell/hub-oled/internal/font"
	"github.com/callebjorkell/hub-oled/internal/oled"
	log "github.com/sirupsen/logrus"
	"image"
	"periph.io/x/conn/v3/i2c"
	driver "periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Addr is the I²C address the periph driver talks to.
const Addr = 0x3C

const (
	rows      = 8
	cols      = 24
	cellWidth = font.Width
	pageH     = 8
)

// Panel is the part of *ssd1306.Dev used by Dev.
type Panel interface {
	Bounds() image.Rectangle
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
	SetContrast(level byte) error
	Invert(blackTop bool) error
	Halt() error
	Scroll(o driver.Orientation, rate driver.FrameRate, startLine, endLine int) error
	StopScroll() error
}

// Dev is an SSD1306 text panel.
//
// periph's driver wakes a halted panel on any command or data byte, so while the panel is off Dev only updates
// its canvas and remembers style and scroll changes. DisplayOn sends them and pushes the canvas.
type Dev struct {
	panel  Panel
	canvas *image1bit.VerticalLSB

	// page and pixel column of the next write
	page int
	x    int

	off      bool
	inverted bool
	contrast *byte
	scroll   *scrollCmd
	stopped  bool
}

type scrollCmd struct {
	o          driver.Orientation
	rate       driver.FrameRate
	start, end int
}

// frame hides the canvas type from the driver, so that full frame draws also go through its double buffer.
type frame struct {
	image.Image
}

// NewI2C initializes the controller on the bus with periph's default 128x64 options.
func NewI2C(b i2c.Bus) (*Dev, error) {
	opts := driver.DefaultOpts
	p, err := driver.NewI2C(b, &opts)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: %w", err)
	}
	return New(p), nil
}

// New wraps an already initialized panel.
func New(p Panel) *Dev {
	return &Dev{
		panel:  p,
		canvas: image1bit.NewVerticalLSB(p.Bounds()),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.canvas.Bounds().Dx(), d.canvas.Bounds().Dy())
}

func (d *Dev) Type() oled.Type {
	return oled.TypeSSD1306
}

func (d *Dev) Size() (int, int) {
	return rows, cols
}

// Init blanks the canvas, selects normal polarity and pushes the empty frame.
func (d *Dev) Init() error {
	log.Debugf("Initializing %v", d)
	d.canvas = image1bit.NewVerticalLSB(d.panel.Bounds())
	d.page, d.x = 0, 0
	d.off, d.inverted = false, false
	d.contrast, d.scroll, d.stopped = nil, nil, false

	if err := d.panel.Invert(false); err != nil {
		return fmt.Errorf("ssd1306: %w", err)
	}
	return d.flush(d.canvas.Bounds())
}

func (d *Dev) SetTextCursor(row, col int) error {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return fmt.Errorf("ssd1306: cursor %d,%d outside of %dx%d", row, col, rows, cols)
	}
	d.page, d.x = row, col*cellWidth
	return nil
}

// WriteString draws s from the cursor. Text that does not fit on the row is dropped.
func (d *Dev) WriteString(s string) error {
	n := min(len(s), (cols*cellWidth-d.x)/cellWidth)
	if n <= 0 {
		return nil
	}

	buf := make([]byte, n*cellWidth)
	for i := 0; i < n; i++ {
		font.Render(buf[i*cellWidth:(i+1)*cellWidth], s[i])
	}
	return d.blit(buf)
}

// DrawBitmap copies raw page columns from the cursor, clipped at the right edge of the panel.
func (d *Dev) DrawBitmap(columns []byte) error {
	n := min(len(columns), d.canvas.Bounds().Dx()-d.x)
	if n <= 0 {
		return nil
	}
	return d.blit(columns[:n])
}

func (d *Dev) blit(columns []byte) error {
	y0 := d.page * pageH
	for i, c := range columns {
		for bit := 0; bit < pageH; bit++ {
			d.canvas.SetBit(d.x+i, y0+bit, image1bit.Bit(c&(1<<bit) != 0))
		}
	}

	r := image.Rect(d.x, y0, d.x+len(columns), y0+pageH)
	d.x += len(columns)
	return d.flush(r)
}

func (d *Dev) flush(r image.Rectangle) error {
	if d.off {
		return nil
	}
	if err := d.panel.Draw(r, frame{d.canvas}, r.Min); err != nil {
		return fmt.Errorf("ssd1306: %w", err)
	}
	return nil
}

func (d *Dev) SetBrightness(level uint8) error {
	if d.off {
		d.contrast = &level
		return nil
	}
	if err := d.panel.SetContrast(level); err != nil {
		return fmt.Errorf("ssd1306: %w", err)
	}
	return nil
}

func (d *Dev) SetInverted(inverted bool) error {
	d.inverted = inverted
	if d.off {
		return nil
	}
	if err := d.panel.Invert(inverted); err != nil {
		return fmt.Errorf("ssd1306: %w", err)
	}
	return nil
}

// DisplayOn wakes the panel by sending the current polarity, then catches up on everything held back while
// it was off.
func (d *Dev) DisplayOn() error {
	d.off = false
	if err := d.panel.Invert(d.inverted); err != nil {
		return fmt.Errorf("ssd1306: %w", err)
	}

	if d.contrast != nil {
		if err := d.SetBrightness(*d.contrast); err != nil {
			return err
		}
		d.contrast = nil
	}
	if err := d.flush(d.canvas.Bounds()); err != nil {
		return err
	}

	if d.stopped {
		d.stopped = false
		if err := d.StopScroll(); err != nil {
			return err
		}
	}
	if d.scroll != nil {
		c := d.scroll
		d.scroll = nil
		if err := d.panel.Scroll(c.o, c.rate, c.start, c.end); err != nil {
			return fmt.Errorf("ssd1306: %w", err)
		}
	}
	return nil
}

func (d *Dev) DisplayOff() error {
	if err := d.panel.Halt(); err != nil {
		return fmt.Errorf("ssd1306: %w", err)
	}
	d.off = true
	return nil
}

// Scroll starts the hardware scroll for the band of pages between startPage and endPage, inclusive.
func (d *Dev) Scroll(dir oled.ScrollDirection, startPage, endPage uint8, speed oled.ScrollSpeed) error {
	if startPage > endPage || int(endPage) >= d.canvas.Bounds().Dy()/pageH {
		return fmt.Errorf("ssd1306: invalid scroll pages %d-%d", startPage, endPage)
	}

	o := driver.Left
	if dir == oled.ScrollRight {
		o = driver.Right
	}
	c := &scrollCmd{o: o, rate: driver.FrameRate(speed), start: int(startPage) * pageH, end: (int(endPage) + 1) * pageH}
	if d.off {
		d.scroll = c
		return nil
	}
	if err := d.panel.Scroll(c.o, c.rate, c.start, c.end); err != nil {
		return fmt.Errorf("ssd1306: %w", err)
	}
	return nil
}

func (d *Dev) StopScroll() error {
	if d.off {
		d.scroll, d.stopped = nil, true
		return nil
	}
	if err := d.panel.StopScroll(); err != nil {
		return fmt.Errorf("ssd1306: %w", err)
	}
	return nil
}

var _ oled.Backend = (*Dev)(nil)
var _ Panel = (*driver.Dev)(nil)
