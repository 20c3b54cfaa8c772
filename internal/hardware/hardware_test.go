//go:build !pi

package hardware

import (
	"github.com/callebjorkell/hub-oled/internal/backend/logpanel"
	"github.com/callebjorkell/hub-oled/internal/oled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tt := []struct {
		name  string
		cfg   Config
		valid bool
	}{
		{"defaults", Config{Type: oled.TypeGrove, Address: 0x3C}, true},
		{"term", Config{Type: oled.TypeSSD1306, Address: 0x3D, Emulator: EmulatorTerm}, true},
		{"log", Config{Type: oled.TypeGrove, Address: 0x3C, Emulator: EmulatorLog}, true},
		{"unknown emulator", Config{Type: oled.TypeGrove, Emulator: "vga"}, false},
		{"wide address", Config{Type: oled.TypeGrove, Address: 0x80}, false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestOpen_None(t *testing.T) {
	b, closer, err := Open(Config{Type: oled.TypeNone})
	require.NoError(t, err)
	assert.Nil(t, b)
	assert.NoError(t, closer.Close())
}

func TestOpen_LogEmulator(t *testing.T) {
	b, closer, err := Open(Config{Type: oled.TypeSSD1306, Address: 0x3C, Emulator: EmulatorLog})
	require.NoError(t, err)
	defer closer.Close()

	require.IsType(t, &logpanel.Panel{}, b)
	assert.Equal(t, oled.TypeSSD1306, b.Type())
}

func TestOpen_Invalid(t *testing.T) {
	_, _, err := Open(Config{Type: oled.TypeGrove, Emulator: "vga"})
	assert.Error(t, err)
}
