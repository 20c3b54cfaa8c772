package term

import (
	"github.com/callebjorkell/hub-oled/internal/oled"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func newTestScreen(t *testing.T, typ oled.Type) (*Screen, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s := New(sim, typ)
	require.NoError(t, s.Init())
	t.Cleanup(s.Close)
	return s, sim
}

// screenLine reads a panel row back from the simulated terminal.
func screenLine(sim tcell.Screen, row, cols int) (string, tcell.Style) {
	var style tcell.Style
	line := make([]rune, cols)
	for x := 0; x < cols; x++ {
		c, _, st, _ := sim.GetContent(originX+x, originY+row) //nolint:staticcheck // GetContent is the correct API
		line[x] = c
		style = st
	}
	return string(line), style
}

func TestScreen_Geometry(t *testing.T) {
	tt := []struct {
		name string
		typ  oled.Type
		rows int
		cols int
	}{
		{"grove", oled.TypeGrove, 8, 16},
		{"ssd1306", oled.TypeSSD1306, 8, 24},
		{"none", oled.TypeNone, 8, 16},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tcell.NewSimulationScreen("UTF-8"), tc.typ)
			rows, cols := s.Size()
			assert.Equal(t, tc.rows, rows)
			assert.Equal(t, tc.cols, cols)
			assert.Equal(t, tc.typ, s.Type())
		})
	}
}

func TestScreen_WriteString(t *testing.T) {
	s, sim := newTestScreen(t, oled.TypeGrove)

	require.NoError(t, s.SetTextCursor(2, 3))
	require.NoError(t, s.WriteString("hello\tworld and more"))

	assert.Equal(t, "   hello world a", s.Line(2))
	line, _ := screenLine(sim, 2, 16)
	assert.Equal(t, "   hello world a", line)
}

func TestScreen_NotInitialized(t *testing.T) {
	s := New(tcell.NewSimulationScreen("UTF-8"), oled.TypeGrove)

	assert.Error(t, s.WriteString("x"))
	assert.Error(t, s.DrawBitmap([]byte{1}))
}

func TestScreen_SetTextCursor_OutOfRange(t *testing.T) {
	s, _ := newTestScreen(t, oled.TypeSSD1306)

	assert.NoError(t, s.SetTextCursor(7, 23))
	assert.Error(t, s.SetTextCursor(8, 0))
	assert.Error(t, s.SetTextCursor(0, 24))
}

func TestScreen_Clear(t *testing.T) {
	s, sim := newTestScreen(t, oled.TypeGrove)
	require.NoError(t, s.WriteString("dirty"))

	require.NoError(t, s.Clear())

	line, _ := screenLine(sim, 0, 16)
	assert.Equal(t, "                ", line)
}

func TestScreen_Style(t *testing.T) {
	s, sim := newTestScreen(t, oled.TypeGrove)
	require.NoError(t, s.WriteString("x"))

	require.NoError(t, s.SetInverted(true))
	_, style := screenLine(sim, 0, 1)
	_, _, attrs := style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrReverse)

	require.NoError(t, s.SetBrightness(10))
	_, style = screenLine(sim, 0, 1)
	_, _, attrs = style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrDim)

	require.NoError(t, s.SetInverted(false))
	require.NoError(t, s.SetBrightness(200))
	_, style = screenLine(sim, 0, 1)
	_, _, attrs = style.Decompose()
	assert.Zero(t, attrs&(tcell.AttrReverse|tcell.AttrDim))
}

func TestScreen_Power(t *testing.T) {
	s, sim := newTestScreen(t, oled.TypeGrove)
	require.NoError(t, s.WriteString("visible"))

	require.NoError(t, s.DisplayOff())
	line, _ := screenLine(sim, 0, 7)
	assert.Equal(t, "       ", line)
	assert.Equal(t, "visible         ", s.Line(0))

	require.NoError(t, s.DisplayOn())
	line, _ = screenLine(sim, 0, 7)
	assert.Equal(t, "visible", line)
}

func TestScreen_DrawBitmap(t *testing.T) {
	s, _ := newTestScreen(t, oled.TypeSSD1306)
	require.NoError(t, s.SetTextCursor(0, 0))

	// three 5 pixel cells: lit, dark, partially lit
	require.NoError(t, s.DrawBitmap([]byte{
		0x01, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0xff,
	}))

	assert.Equal(t, "█ █", s.Line(0)[:len("█ █")])
}

func TestScreen_Scroll(t *testing.T) {
	s, _ := newTestScreen(t, oled.TypeGrove)

	require.NoError(t, s.Scroll(oled.ScrollLeft, 0, 7, oled.Scroll5Frames))
	assert.True(t, s.Scrolling())
	require.NoError(t, s.StopScroll())
	assert.False(t, s.Scrolling())
}

func TestScreen_WithDisplay(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s := New(sim, oled.TypeSSD1306)
	t.Cleanup(s.Close)
	d := oled.New(s, &oled.Opts{})
	d.Init()
	d.SetHeader("Status")
	d.PrintHeader()
	d.SetLine(0, "OK", true)

	line, _ := screenLine(sim, 0, 24)
	assert.Equal(t, "         Status         ", line)
	line, _ = screenLine(sim, 1, 24)
	assert.Equal(t, "           OK           ", line)
}
