//go:build !pi

package button

import (
	"context"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

// Watch simulates the button. Every SIGHUP is a press. The pin is only logged.
func Watch(ctx context.Context, pin string) (<-chan Event, error) {
	log.Infof("Simulating button on %v, send SIGHUP to press it", pin)

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)

	c := make(chan Event, 5)
	go simulateButton(ctx, hup, c)
	return c, nil
}

func simulateButton(ctx context.Context, hup <-chan os.Signal, c chan<- Event) {
	defer signal.Reset(syscall.SIGHUP)
	defer close(c)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			select {
			case c <- Event{Pressed: true}:
			case <-ctx.Done():
				return
			}
		}
	}
}
