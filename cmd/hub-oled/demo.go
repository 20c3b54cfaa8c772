package main

import (
	"github.com/callebjorkell/hub-oled/internal/oled"
	log "github.com/sirupsen/logrus"
	"math"
	"time"
)

// smiley is an 8x8 face in page column format.
var smiley = []byte{0x3c, 0x42, 0xa5, 0x81, 0xa5, 0x99, 0x42, 0x3c}

type demoStep struct {
	name string
	run  func(d *oled.Display)
}

var demoSteps = []demoStep{
	{"header", func(d *oled.Display) {
		d.SetHeader("hub-oled\ndemo")
		d.Clear(true)
	}},
	{"lines", func(d *oled.Display) {
		d.Println("left", false)
		d.Println("centered", true)
		d.Print("a line that is far too long for the panel")
	}},
	{"numbers", func(d *oled.Display) {
		d.ClearContent()
		d.PrintNumber(0, -42, false)
		d.PrintFloat(1, math.Pi, oled.DefaultDecimalPlaces, false)
		d.PrintFloat(2, math.E, 4, true)
	}},
	{"fill", func(d *oled.Display) {
		d.ClearContent()
		for row := d.ContentStartLine(); row < d.Rows(); row++ {
			d.FillRect(row, row, d.Cols()-2*row, '#')
		}
	}},
	{"bitmap", func(d *oled.Display) {
		d.ClearContent()
		for col := 0; col < d.Cols(); col += 2 {
			d.DrawBitmap(smiley, len(smiley), d.ContentStartLine(), col)
		}
		d.SetCursor(d.Rows()-1, 0)
	}},
	{"inverted", func(d *oled.Display) {
		d.SetInverted(true)
	}},
	{"dimmed", func(d *oled.Display) {
		d.SetInverted(false)
		d.SetBrightness(0x10)
	}},
	{"scroll", func(d *oled.Display) {
		d.SetBrightness(0xff)
		d.ScrollLeft(oled.DefaultScrollStartPage, oled.DefaultScrollEndPage, oled.DefaultScrollSpeed)
	}},
	{"scroll back", func(d *oled.Display) {
		d.ScrollRight(uint8(d.ContentStartLine()), oled.DefaultScrollEndPage, oled.Scroll2Frames)
	}},
	{"off", func(d *oled.Display) {
		d.StopScroll()
		d.DisplayOff()
	}},
	{"on", func(d *oled.Display) {
		d.DisplayOn()
		d.Clear(true)
	}},
	{"header lines", func(d *oled.Display) {
		d.SetHeaderLine(2, "third line")
		d.PrintHeader()
		d.SetLine(0, "header grew", true)
	}},
	{"no header", func(d *oled.Display) {
		d.ClearHeader()
		d.ClearContent()
		d.SetLine(0, "all yours", true)
	}},
}

func runDemo(d *oled.Display, step time.Duration) {
	for _, s := range demoSteps {
		log.Infof("Demo: %v", s.name)
		s.run(d)
		time.Sleep(step)
	}
}
