// Package hardware picks the backend for the configured display. Builds tagged pi talk to the panel over I²C,
// all other builds emulate it.
package hardware

import (
	"fmt"
	"github.com/callebjorkell/hub-oled/internal/oled"
)

const (
	EmulatorTerm = "term"
	EmulatorLog  = "log"
)

// Config selects and addresses a display.
type Config struct {
	Type     oled.Type
	Bus      string // periph I²C bus name, empty for the first bus found
	Address  uint16
	Emulator string // used when not running on the hardware, EmulatorTerm or EmulatorLog
}

func (c Config) Validate() error {
	switch c.Emulator {
	case "", EmulatorTerm, EmulatorLog:
	default:
		return fmt.Errorf("unknown emulator %q", c.Emulator)
	}
	if c.Address > 0x7F {
		return fmt.Errorf("i2c address %#x is not a 7 bit address", c.Address)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
