//go:build !pi

package hardware

import (
	"github.com/callebjorkell/hub-oled/internal/backend/logpanel"
	"github.com/callebjorkell/hub-oled/internal/backend/term"
	"github.com/callebjorkell/hub-oled/internal/oled"
	log "github.com/sirupsen/logrus"
	"io"
)

// Open emulates the configured panel. The returned closer gives the terminal back. TypeNone gives a nil
// backend.
func Open(c Config) (oled.Backend, io.Closer, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	if c.Type == oled.TypeNone {
		return nil, nopCloser{}, nil
	}

	log.Infof("Emulating a %v display at %#x", c.Type, c.Address)
	if c.Emulator == EmulatorLog {
		return logpanel.New(c.Type), nopCloser{}, nil
	}

	s, err := term.NewTerminal(c.Type)
	if err != nil {
		return nil, nil, err
	}
	return s, screenCloser{s}, nil
}

type screenCloser struct {
	s *term.Screen
}

func (c screenCloser) Close() error {
	c.s.Close()
	return nil
}
