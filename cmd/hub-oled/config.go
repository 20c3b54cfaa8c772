package main

import (
	"errors"
	"fmt"
	"github.com/callebjorkell/hub-oled/internal/button"
	"github.com/callebjorkell/hub-oled/internal/hardware"
	"github.com/callebjorkell/hub-oled/internal/oled"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
	"time"
)

const (
	defaultAddress        = 0x3C
	defaultBrightness     = 255
	defaultSettleDelay    = 50 * time.Millisecond
	defaultStatusInterval = 5 * time.Second
)

type Config struct {
	Display struct {
		Type        *oled.Type    `yaml:"type"`
		Bus         string        `yaml:"bus"`
		Address     uint16        `yaml:"address"`
		Emulator    string        `yaml:"emulator"`
		Brightness  *uint8        `yaml:"brightness"`
		Inverted    bool          `yaml:"inverted"`
		SettleDelay time.Duration `yaml:"settleDelay"`
	} `yaml:"display"`
	Header []string `yaml:"header"`
	Button struct {
		Pin string `yaml:"pin"`
	} `yaml:"button"`
	Status struct {
		Interval time.Duration `yaml:"interval"`
	} `yaml:"status"`
}

func (c Config) Hardware() hardware.Config {
	return hardware.Config{
		Type:     *c.Display.Type,
		Bus:      c.Display.Bus,
		Address:  c.Display.Address,
		Emulator: c.Display.Emulator,
	}
}

// readConfig reads the configuration file. A missing file gives the default configuration.
func readConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("No configuration at %v, using defaults", path)
		return parseConfig(nil)
	}
	if err != nil {
		return nil, err
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.Display.Type == nil {
		t := oled.TypeGrove
		c.Display.Type = &t
	}
	if c.Display.Address == 0 {
		c.Display.Address = defaultAddress
	}
	if c.Display.Emulator == "" {
		c.Display.Emulator = hardware.EmulatorTerm
	}
	if c.Display.Brightness == nil {
		b := uint8(defaultBrightness)
		c.Display.Brightness = &b
	}
	if c.Display.SettleDelay < 0 {
		return nil, fmt.Errorf("settle delay cannot be negative")
	}
	if c.Display.SettleDelay == 0 {
		c.Display.SettleDelay = defaultSettleDelay
	}
	if err := c.Hardware().Validate(); err != nil {
		return nil, fmt.Errorf("invalid display: %w", err)
	}

	if len(c.Header) > oled.MaxHeaderLines {
		return nil, fmt.Errorf("header can have at most %d lines, got %d", oled.MaxHeaderLines, len(c.Header))
	}
	for i, line := range c.Header {
		if len(line) > oled.MaxLineChars {
			log.Warnf("Header line %d is longer than %d characters and will be cut", i, oled.MaxLineChars)
		}
	}

	if c.Button.Pin == "" {
		c.Button.Pin = button.DefaultPin
	}
	if c.Status.Interval < 0 {
		return nil, fmt.Errorf("status interval cannot be negative")
	}
	if c.Status.Interval == 0 {
		c.Status.Interval = defaultStatusInterval
	}

	return c, nil
}
