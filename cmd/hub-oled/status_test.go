package main

import (
	"errors"
	"github.com/callebjorkell/hub-oled/internal/backend/logpanel"
	"github.com/callebjorkell/hub-oled/internal/oled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func newTestStatus(t *testing.T) (*statusScreen, *logpanel.Panel, time.Time) {
	conf, err := parseConfig([]byte("display:\n  settleDelay: 1ns\nheader: [Hub]\n"))
	require.NoError(t, err)

	p := logpanel.New(oled.TypeGrove)
	d := setupDisplay(p, conf)
	require.True(t, d.Initialized())

	started := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := newStatus(d, started)
	s.hostname = func() (string, error) {
		return "hub", nil
	}
	return s, p, started
}

func TestStatus_Refresh(t *testing.T) {
	s, p, started := newTestStatus(t)

	s.refresh(started.Add(65*time.Second + 300*time.Millisecond))

	assert.Equal(t, []string{
		"      Hub       ",
		"      hub       ",
		"    03:05:10    ",
		"    up 1m5s     ",
	}, p.Lines()[:4])
}

func TestStatus_UnknownHost(t *testing.T) {
	s, _, started := newTestStatus(t)
	s.hostname = func() (string, error) {
		return "", errors.New("no uts namespace")
	}

	assert.Equal(t, "unknown host", s.lines(started)[0])
}

func TestStatus_Toggle(t *testing.T) {
	s, p, started := newTestStatus(t)

	s.toggle(started)
	assert.False(t, p.On())

	s.refresh(started)
	assert.Equal(t, "                ", p.Lines()[1])

	s.toggle(started)
	assert.True(t, p.On())
	assert.Equal(t, "      hub       ", p.Lines()[1])
}

func TestStatus_Sleep(t *testing.T) {
	s, p, started := newTestStatus(t)
	s.refresh(started)
	s.toggle(started)

	s.sleep()

	assert.True(t, p.On())
	assert.Equal(t, []string{
		"      Hub       ",
		"  Sleeping...   ",
		"                ",
		"                ",
		"                ",
		"                ",
		"                ",
		"                ",
	}, p.Lines())
}

func TestShowText(t *testing.T) {
	p := logpanel.New(oled.TypeSSD1306)
	d := oled.New(p, &oled.Opts{})
	d.Init()
	d.Println("stale", false)

	showText(d, []string{"one", "two"}, true, true)

	lines := p.Lines()
	assert.Equal(t, "          one           ", lines[0])
	assert.Equal(t, "          two           ", lines[1])
}
