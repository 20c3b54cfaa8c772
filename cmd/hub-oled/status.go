package main

import (
	"context"
	"github.com/callebjorkell/hub-oled/internal/button"
	"github.com/callebjorkell/hub-oled/internal/oled"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const sleeping = "Sleeping..."

func runStatus(d *oled.Display, conf *Config) error {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalChan)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := button.Watch(ctx, conf.Button.Pin)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(conf.Status.Interval)
	defer ticker.Stop()

	s := newStatus(d, time.Now())
	s.refresh(time.Now())

	for {
		select {
		case now := <-ticker.C:
			s.refresh(now)
		case e, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			log.Infof("Event: %v", e)
			if e.Pressed {
				s.toggle(time.Now())
			}
		case <-signalChan:
			s.sleep()
			log.Info("Done...")
			return nil
		}
	}
}

// statusScreen keeps the content area of a display filled with host information.
type statusScreen struct {
	d        *oled.Display
	started  time.Time
	hostname func() (string, error)
	on       bool
}

func newStatus(d *oled.Display, started time.Time) *statusScreen {
	return &statusScreen{d: d, started: started, hostname: os.Hostname, on: true}
}

func (s *statusScreen) lines(now time.Time) []string {
	host, err := s.hostname()
	if err != nil {
		log.Debugf("Unable to read hostname: %v", err)
		host = "unknown host"
	}
	return []string{
		host,
		now.Format("15:04:05"),
		"up " + now.Sub(s.started).Truncate(time.Second).String(),
	}
}

func (s *statusScreen) refresh(now time.Time) {
	if !s.on {
		return
	}
	for i, l := range s.lines(now) {
		s.d.SetLine(i, l, true)
	}
}

func (s *statusScreen) toggle(now time.Time) {
	s.on = !s.on
	if !s.on {
		log.Info("Turning the display off")
		s.d.DisplayOff()
		return
	}

	log.Info("Turning the display on")
	s.d.DisplayOn()
	s.refresh(now)
}

func (s *statusScreen) sleep() {
	s.on = false
	s.d.DisplayOn()
	s.d.ClearContent()
	s.d.SetLine(0, sleeping, true)
}
