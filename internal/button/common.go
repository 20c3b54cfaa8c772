// Package button reports presses of the hub's push button.
package button

import "fmt"

// DefaultPin is the GPIO the button is wired to on the hub.
const DefaultPin = "GPIO20"

type Event struct {
	Pressed bool
}

func (e Event) String() string {
	action := "pressed"
	if !e.Pressed {
		action = "released"
	}
	return fmt.Sprintf("Button was %v", action)
}
