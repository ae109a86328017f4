package app

import (
	"context"
	"fmt"

	"lt24/hal"
	"lt24/lcd"
)

// Config selects what the bring-up shows and how it waits on the controller.
type Config struct {
	Profile Profile
	// Label, if set, is drawn in LabelColor over the test image.
	Label   string
	Poll    lcd.Poll
	Verbose bool
}

// Run resets the controller, initializes the panel, fills the bridge
// framebuffer and starts the display. It returns once the controller has
// acknowledged the display enable.
func Run(ctx context.Context, h hal.HAL, cfg Config) error {
	p := cfg.Profile
	if p.Name == "" {
		p, _ = LookupProfile(DefaultProfile)
	}

	log := h.Logger()
	say := func(s string) {
		if log != nil {
			log.WriteLineString(s)
		}
	}

	fb := h.Bridge()
	if size := p.Layout.Bytes(); size > fb.Size() {
		return fmt.Errorf("app: %s image needs %d bytes, bridge window has %d", p.Name, size, fb.Size())
	}

	c := lcd.New(h.Registers(), log, lcd.Config{Poll: cfg.Poll, Verbose: cfg.Verbose})
	if cfg.Verbose && cfg.Poll.Unbounded() {
		say("app: no poll limit, a stalled controller blocks forever")
	}

	if err := c.Reset(ctx); err != nil {
		return fmt.Errorf("app: reset: %w", err)
	}

	say("Initializing LCD")
	if err := c.RunInit(ctx, p.Init); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	say("LCD Initialized")

	pattern := p.Pattern
	if cfg.Label != "" {
		pattern = Label(pattern, p.Layout, cfg.Label, LabelColor)
	}

	say("Setting image address and size")
	rep := c.Fill(fb, p.Layout, pattern)
	if rep.Mismatches > 0 {
		say(fmt.Sprintf("app: %d of %d pixels failed verification", rep.Mismatches, rep.Pixels))
	}
	say("Image address and size set")

	say("Configuring default image")
	c.ConfigureImage(fb.Base(), p.Layout.Bytes())
	say("Default image configured... starting LCD")

	if err := c.Start(ctx); err != nil {
		return fmt.Errorf("app: start: %w", err)
	}
	say(p.IdleMessage)
	return nil
}
