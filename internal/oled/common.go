package oled

import (
	"fmt"
	"strings"
	"time"
)

// Type selects which panel a Display drives.
type Type uint8

const (
	TypeNone Type = iota
	TypeGrove
	TypeSSD1306
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeGrove:
		return "grove"
	case TypeSSD1306:
		return "ssd1306"
	}
	return "INVALID"
}

// ParseType is the inverse of Type.String.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return TypeNone, nil
	case "grove", "seeed":
		return TypeGrove, nil
	case "ssd1306":
		return TypeSSD1306, nil
	}
	return TypeNone, fmt.Errorf("unknown display type %q", s)
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	p, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = p
	return nil
}

// Geometry returns the character grid of the panel type. TypeNone reports the construction defaults.
func (t Type) Geometry() (rows, cols int) {
	switch t {
	case TypeSSD1306:
		return 8, 24
	default:
		return defaultRows, defaultCols
	}
}

type ScrollDirection uint8

const (
	ScrollLeft ScrollDirection = iota
	ScrollRight
)

func (d ScrollDirection) String() string {
	if d == ScrollRight {
		return "right"
	}
	return "left"
}

// ScrollSpeed is the interval between scroll steps, in the SSD13xx frame encoding.
type ScrollSpeed uint8

const (
	Scroll5Frames   ScrollSpeed = 0x00
	Scroll64Frames  ScrollSpeed = 0x01
	Scroll128Frames ScrollSpeed = 0x02
	Scroll256Frames ScrollSpeed = 0x03
	Scroll3Frames   ScrollSpeed = 0x04
	Scroll4Frames   ScrollSpeed = 0x05
	Scroll25Frames  ScrollSpeed = 0x06
	Scroll2Frames   ScrollSpeed = 0x07
)

const (
	// MaxHeaderLines is the number of rows a header may occupy at the top of the panel.
	MaxHeaderLines = 3
	// MaxLineChars is the widest supported row and the storage limit for a header line.
	MaxLineChars = 24

	DefaultDecimalPlaces   = 2
	DefaultScrollStartPage = 0
	DefaultScrollEndPage   = 7
	DefaultScrollSpeed     = Scroll5Frames

	defaultRows       = 8
	defaultCols       = 16
	defaultBrightness = 255
)

// Backend is implemented by every panel a Display can drive.
type Backend interface {
	Init() error
	Type() Type
	Size() (rows, cols int)

	SetTextCursor(row, col int) error
	WriteString(s string) error
	DrawBitmap(columns []byte) error

	SetBrightness(level uint8) error
	SetInverted(inverted bool) error
	DisplayOn() error
	DisplayOff() error

	Scroll(dir ScrollDirection, startPage, endPage uint8, speed ScrollSpeed) error
	StopScroll() error
}

// Clearer is implemented by backends that can blank the whole panel in one operation. Displays fall back
// to writing blank rows for backends that do not.
type Clearer interface {
	Clear() error
}

// Opts configures a Display.
type Opts struct {
	// SettleDelay is how long Init waits after the panel has been set up before drawing the header.
	SettleDelay time.Duration
}

var DefaultOpts = Opts{
	SettleDelay: 50 * time.Millisecond,
}
