package main

import (
	"fmt"
	"github.com/callebjorkell/hub-oled/internal/hardware"
	"github.com/callebjorkell/hub-oled/internal/oled"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
	"io"
	"os"
	"time"
)

var (
	app        = kingpin.New("hub-oled", "Text display for the hub's OLED panel")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	configFile = app.Flag("config", "Configuration file.").Short('c').Default("hub-oled.yaml").String()
	logFile    = app.Flag("log", "Write the log to this file instead of stderr.").String()

	show       = app.Command("show", "Show lines of text below the header.")
	showCenter = show.Flag("center", "Center the lines.").Bool()
	showClear  = show.Flag("clear", "Clear the content area first.").Bool()
	showWait   = show.Flag("wait", "Keep the panel open this long after drawing.").Default("0s").Duration()
	showLines  = show.Arg("lines", "Lines to show, one per content row.").Strings()

	clearAll = app.Command("clear", "Blank the whole panel, header included.")

	demo      = app.Command("demo", "Run through everything the panel can do.")
	demoDelay = demo.Flag("step", "Time to show each step.").Default("2s").Duration()

	status = app.Command("status", "Show host status until interrupted. The button turns the panel on and off.")

	version = app.Command("version", "Show current version.")
)

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Unable to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if cmd == version.FullCommand() {
		fmt.Println(versionString())
		return
	}

	conf, err := readConfig(*configFile)
	if err != nil {
		log.Fatalf("Unable to read configuration: %v", err)
	}

	switch cmd {
	case show.FullCommand():
		err = withDisplay(conf, func(d *oled.Display) error {
			showText(d, *showLines, *showCenter, *showClear)
			time.Sleep(*showWait)
			return nil
		})
	case clearAll.FullCommand():
		err = withDisplay(conf, func(d *oled.Display) error {
			d.Clear(false)
			return nil
		})
	case demo.FullCommand():
		err = withDisplay(conf, func(d *oled.Display) error {
			runDemo(d, *demoDelay)
			return nil
		})
	case status.FullCommand():
		err = withDisplay(conf, func(d *oled.Display) error {
			return runStatus(d, conf)
		})
	default:
		kingpin.FatalUsage("Unrecognized command")
	}

	if err != nil {
		log.Fatal(err)
	}
}

// withDisplay opens and sets up the configured panel, runs f on it and releases the panel again.
func withDisplay(conf *Config, f func(d *oled.Display) error) error {
	b, closer, err := hardware.Open(conf.Hardware())
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	d := setupDisplay(b, conf)
	if !d.Initialized() {
		log.Warnf("The %v display is not initialized, nothing will be shown", d.Type())
	}
	return f(d)
}

func setupDisplay(b oled.Backend, conf *Config) *oled.Display {
	d := oled.New(b, &oled.Opts{SettleDelay: conf.Display.SettleDelay})
	d.Init()
	d.SetBrightness(*conf.Display.Brightness)
	d.SetInverted(conf.Display.Inverted)
	if len(conf.Header) > 0 {
		d.SetHeaderLines(conf.Header)
		d.PrintHeader()
	}
	return d
}

func showText(d *oled.Display, lines []string, centered, clearFirst bool) {
	if clearFirst {
		d.ClearContent()
	}
	for _, l := range lines {
		d.Println(l, centered)
	}
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Debugf("Unable to close the display: %v", err)
	}
}
