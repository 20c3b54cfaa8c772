// Package term emulates a character OLED in a terminal, for running the hub without the hardware attached.
package term

import (
	"errors"
	"fmt"
	"github.com/callebjorkell/hub-oled/internal/oled"
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"sync"
)

const (
	// panel is drawn inside a one cell border
	originX = 1
	originY = 1

	dimBelow = 128
	pixel    = '█'
)

var errNotInitialized = errors.New("term: screen not initialized")

// Screen is a panel drawn on a tcell screen. It keeps its own copy of the grid so that power and polarity
// changes can be redrawn.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen

	typ        oled.Type
	rows, cols int
	cellWidth  int
	cells      [][]rune

	row, col   int
	inverted   bool
	off        bool
	brightness uint8
	scrolling  bool
}

// NewTerminal emulates a panel of the given type on the controlling terminal.
func NewTerminal(t oled.Type) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return New(s, t), nil
}

// New emulates a panel of the given type on s. The screen is initialized by Init.
func New(s tcell.Screen, t oled.Type) *Screen {
	rows, cols := t.Geometry()
	cellWidth := 8
	if t == oled.TypeSSD1306 {
		cellWidth = 5
	}

	return &Screen{
		screen:     s,
		typ:        t,
		rows:       rows,
		cols:       cols,
		cellWidth:  cellWidth,
		brightness: 255,
	}
}

func (s *Screen) Type() oled.Type {
	return s.typ
}

func (s *Screen) Size() (int, int) {
	return s.rows, s.cols
}

func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	s.screen.HideCursor()

	s.cells = make([][]rune, s.rows)
	for i := range s.cells {
		s.cells[i] = make([]rune, s.cols)
	}
	s.blank()
	s.row, s.col = 0, 0
	s.inverted, s.off, s.scrolling = false, false, false

	s.render()
	return nil
}

// Close gives the terminal back.
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Fini()
}

func (s *Screen) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blank()
	s.row, s.col = 0, 0
	s.render()
	return nil
}

func (s *Screen) SetTextCursor(row, col int) error {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return fmt.Errorf("term: cursor %d,%d outside of %dx%d", row, col, s.rows, s.cols)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.row, s.col = row, col
	return nil
}

func (s *Screen) WriteString(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cells == nil {
		return errNotInitialized
	}
	for i := 0; i < len(text) && s.col < s.cols; i++ {
		c := rune(text[i])
		if c < 0x20 || c > 0x7e {
			c = ' '
		}
		s.cells[s.row][s.col] = c
		s.col++
	}
	s.render()
	return nil
}

// DrawBitmap approximates a bitmap strip with one block per character cell that has any pixel set.
func (s *Screen) DrawBitmap(columns []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cells == nil {
		return errNotInitialized
	}
	for i := 0; i < len(columns) && s.col < s.cols; i += s.cellWidth {
		c := ' '
		for _, b := range columns[i:min(i+s.cellWidth, len(columns))] {
			if b != 0 {
				c = pixel
				break
			}
		}
		s.cells[s.row][s.col] = c
		s.col++
	}
	s.render()
	return nil
}

func (s *Screen) SetBrightness(level uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.brightness = level
	s.render()
	return nil
}

func (s *Screen) SetInverted(inverted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inverted = inverted
	s.render()
	return nil
}

func (s *Screen) DisplayOn() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.off = false
	s.render()
	return nil
}

func (s *Screen) DisplayOff() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.off = true
	s.render()
	return nil
}

// Scroll is only tracked. A terminal has no scroll engine to hand the work to.
func (s *Screen) Scroll(dir oled.ScrollDirection, startPage, endPage uint8, speed oled.ScrollSpeed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Debugf("Scrolling %v pages %d-%d at speed %#x", dir, startPage, endPage, speed)
	s.scrolling = true
	return nil
}

func (s *Screen) StopScroll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scrolling = false
	return nil
}

// Scrolling reports whether a scroll has been started and not stopped.
func (s *Screen) Scrolling() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.scrolling
}

// Line returns the text currently held on a row.
func (s *Screen) Line(row int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if row < 0 || row >= len(s.cells) {
		return ""
	}
	return string(s.cells[row])
}

func (s *Screen) blank() {
	for _, row := range s.cells {
		for i := range row {
			row[i] = ' '
		}
	}
}

func (s *Screen) style() tcell.Style {
	style := tcell.StyleDefault
	if s.inverted {
		style = style.Reverse(true)
	}
	if s.brightness < dimBelow {
		style = style.Dim(true)
	}
	return style
}

func (s *Screen) render() {
	border := tcell.StyleDefault
	w, h := s.cols+2*originX, s.rows+2*originY
	for x := 1; x < w-1; x++ {
		s.screen.SetContent(x, 0, tcell.RuneHLine, nil, border)
		s.screen.SetContent(x, h-1, tcell.RuneHLine, nil, border)
	}
	for y := 1; y < h-1; y++ {
		s.screen.SetContent(0, y, tcell.RuneVLine, nil, border)
		s.screen.SetContent(w-1, y, tcell.RuneVLine, nil, border)
	}
	s.screen.SetContent(0, 0, tcell.RuneULCorner, nil, border)
	s.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, border)
	s.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, border)
	s.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, border)

	style := s.style()
	for y, row := range s.cells {
		for x, c := range row {
			if s.off {
				s.screen.SetContent(originX+x, originY+y, ' ', nil, tcell.StyleDefault)
				continue
			}
			s.screen.SetContent(originX+x, originY+y, c, nil, style)
		}
	}
	s.screen.Show()
}

var _ oled.Backend = (*Screen)(nil)
var _ oled.Clearer = (*Screen)(nil)
