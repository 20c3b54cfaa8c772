package main

import "fmt"

// set with -ldflags "-X main.buildVersion=... -X main.buildTime=..."
var buildTime, buildVersion string

func versionString() string {
	switch {
	case buildVersion == "":
		return "hub-oled dev"
	case buildTime == "":
		return "hub-oled " + buildVersion
	}
	return fmt.Sprintf("hub-oled %s (built: %s)", buildVersion, buildTime)
}
