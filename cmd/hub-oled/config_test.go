package main

import (
	"github.com/callebjorkell/hub-oled/internal/hardware"
	"github.com/callebjorkell/hub-oled/internal/oled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	c, err := parseConfig([]byte(`
display:
  type: ssd1306
  bus: "1"
  address: 0x3D
  emulator: log
  brightness: 0
  inverted: true
  settleDelay: 10ms
header:
  - Hub
  - Status
button:
  pin: GPIO21
status:
  interval: 1m
`))
	require.NoError(t, err)

	assert.Equal(t, oled.TypeSSD1306, *c.Display.Type)
	assert.Equal(t, "1", c.Display.Bus)
	assert.Equal(t, uint16(0x3D), c.Display.Address)
	assert.Equal(t, hardware.EmulatorLog, c.Display.Emulator)
	assert.Equal(t, uint8(0), *c.Display.Brightness)
	assert.True(t, c.Display.Inverted)
	assert.Equal(t, 10*time.Millisecond, c.Display.SettleDelay)
	assert.Equal(t, []string{"Hub", "Status"}, c.Header)
	assert.Equal(t, "GPIO21", c.Button.Pin)
	assert.Equal(t, time.Minute, c.Status.Interval)

	assert.Equal(t, hardware.Config{
		Type:     oled.TypeSSD1306,
		Bus:      "1",
		Address:  0x3D,
		Emulator: hardware.EmulatorLog,
	}, c.Hardware())
}

func TestParseConfig_Defaults(t *testing.T) {
	c, err := parseConfig([]byte(`header: [Hub]`))
	require.NoError(t, err)

	assert.Equal(t, oled.TypeGrove, *c.Display.Type)
	assert.Equal(t, uint16(0x3C), c.Display.Address)
	assert.Equal(t, hardware.EmulatorTerm, c.Display.Emulator)
	assert.Equal(t, uint8(255), *c.Display.Brightness)
	assert.Equal(t, 50*time.Millisecond, c.Display.SettleDelay)
	assert.Equal(t, "GPIO20", c.Button.Pin)
	assert.Equal(t, 5*time.Second, c.Status.Interval)
}

func TestParseConfig_NoDisplay(t *testing.T) {
	c, err := parseConfig([]byte("display:\n  type: none\n"))
	require.NoError(t, err)
	assert.Equal(t, oled.TypeNone, *c.Display.Type)
}

func TestParseConfig_Invalid(t *testing.T) {
	tt := []struct {
		name    string
		content string
	}{
		{"unknown type", "display:\n  type: vga\n"},
		{"unknown emulator", "display:\n  emulator: x11\n"},
		{"address too wide", "display:\n  address: 0x100\n"},
		{"negative settle delay", "display:\n  settleDelay: -1s\n"},
		{"too many header lines", "header: [a, b, c, d]\n"},
		{"negative interval", "status:\n  interval: -5s\n"},
		{"not yaml", "display: [\n"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig([]byte(tc.content))
			assert.Error(t, err)
		})
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()

	c, err := readConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, oled.TypeGrove, *c.Display.Type)

	path := filepath.Join(dir, "hub-oled.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  type: ssd1306\n"), 0o600))
	c, err = readConfig(path)
	require.NoError(t, err)
	assert.Equal(t, oled.TypeSSD1306, *c.Display.Type)
}
