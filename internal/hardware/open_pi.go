//go:build pi

package hardware

import (
	"fmt"
	"github.com/callebjorkell/hub-oled/internal/backend/grove"
	"github.com/callebjorkell/hub-oled/internal/backend/ssd1306"
	"github.com/callebjorkell/hub-oled/internal/oled"
	log "github.com/sirupsen/logrus"
	"io"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Open connects to the configured panel. The returned closer releases the bus. TypeNone gives a nil backend.
func Open(c Config) (oled.Backend, io.Closer, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	if c.Type == oled.TypeNone {
		return nil, nopCloser{}, nil
	}

	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("unable to initialize periph: %w", err)
	}

	bus, err := i2creg.Open(c.Bus)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open i2c bus %q: %w", c.Bus, err)
	}
	log.Infof("Opened %v for a %v display", bus, c.Type)

	switch c.Type {
	case oled.TypeGrove:
		return grove.NewI2C(bus, c.Address), bus, nil
	case oled.TypeSSD1306:
		if c.Address != ssd1306.Addr {
			log.Warnf("The ssd1306 driver only talks to %#x, ignoring address %#x", ssd1306.Addr, c.Address)
		}
		d, err := ssd1306.NewI2C(bus)
		if err != nil {
			_ = bus.Close()
			return nil, nil, err
		}
		return d, bus, nil
	}

	_ = bus.Close()
	return nil, nil, fmt.Errorf("unsupported display type %v", c.Type)
}
