//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"lt24/app"
	"lt24/hal"
	"lt24/internal/buildinfo"
	"lt24/lcd"
)

func main() {
	var (
		cfg      app.Config
		profile  string
		headless bool
		snapshot string
		sim      hal.HostConfig
		stuckLow uint
		devmem   bool
		dm       hal.DevMemConfig
		imgBase  uint
		colMajor bool
		version  bool
	)
	flag.StringVar(&profile, "profile", app.DefaultProfile, "Bring-up profile ("+strings.Join(app.ProfileNames(), ", ")+").")
	flag.StringVar(&cfg.Label, "label", "", "Text drawn over the test image.")
	flag.IntVar(&cfg.Poll.MaxAttempts, "poll-attempts", 0, "Give up on a request after N flag reads (0 = wait forever).")
	flag.DurationVar(&cfg.Poll.Timeout, "poll-timeout", 0, "Give up on a request after this long (0 = wait forever).")
	flag.BoolVar(&cfg.Verbose, "v", false, "Log driver state transitions.")
	flag.BoolVar(&colMajor, "column-major", false, "Fill the image column by column instead of row by row.")

	flag.BoolVar(&headless, "headless", false, "Run the simulator without a window.")
	flag.StringVar(&snapshot, "snapshot", "", "Write the displayed frame to this BMP file (headless only).")
	flag.IntVar(&sim.Latency, "latency", 16, "Simulated flag reads before the controller acknowledges a request.")
	flag.UintVar(&stuckLow, "stuck-low", 0, "Simulated bridge data lines stuck at zero (bit mask).")

	flag.BoolVar(&devmem, "devmem", false, "Drive real hardware through /dev/mem instead of the simulator.")
	flag.Uint64Var(&dm.LCDBase, "lcd-base", 0xFF20_0000, "Physical address of the LCD controller registers.")
	flag.Uint64Var(&dm.BridgeBase, "bridge-base", 0xC000_0000, "Physical address of the framebuffer window.")
	flag.IntVar(&dm.BridgeSize, "bridge-size", hal.DefaultBridgeSize, "Size of the framebuffer window in bytes.")
	flag.UintVar(&imgBase, "image-base", 0, "Framebuffer address as seen by the controller (0 = bridge-base).")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	p, ok := app.LookupProfile(profile)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown profile %q\n", profile)
		os.Exit(2)
	}
	if colMajor {
		p.Layout.Order = lcd.ColumnMajor
	}
	cfg.Profile = p
	sim.StuckLow = uint16(stuckLow)

	run := func(ctx context.Context, h hal.HAL) error {
		return app.Run(ctx, h, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case devmem:
		dm.ImageBase = uint32(imgBase)
		err = runDevMem(ctx, run, dm)
	case headless:
		err = hal.RunHeadless(ctx, run, hal.HeadlessConfig{Host: sim, Snapshot: snapshot})
	default:
		err = hal.RunWindow(run, sim)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDevMem(ctx context.Context, run func(context.Context, hal.HAL) error, cfg hal.DevMemConfig) error {
	h, err := hal.NewDevMem(cfg)
	if err != nil {
		return err
	}
	defer h.Close()
	return run(ctx, h)
}
