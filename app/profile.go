package app

import (
	"sort"

	"lt24/lcd"
)

// Profile is one complete bring-up: an init table plus the test image shown
// once the panel is running.
type Profile struct {
	Name        string
	Init        []lcd.Command
	Layout      lcd.Layout
	Pattern     lcd.Pattern
	IdleMessage string
}

// DefaultProfile is used when no profile is named.
const DefaultProfile = "stripes"

var profiles = map[string]Profile{
	"solid": {
		Name:        "solid",
		Init:        lcd.InitSolid,
		Layout:      lcd.Layout{Rows: 320, Cols: 240},
		Pattern:     lcd.Solid(lcd.Red),
		IdleMessage: "Display Stopped",
	},
	"stripes": {
		Name:        "stripes",
		Init:        lcd.InitStripes,
		Layout:      lcd.Layout{Rows: 240, Cols: 320},
		Pattern:     lcd.Stripes(lcd.Red, lcd.Blue, 100),
		IdleMessage: "Display Idle",
	},
}

// LookupProfile returns the named profile.
func LookupProfile(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// ProfileNames lists the known profiles in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
