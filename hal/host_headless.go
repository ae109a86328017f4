//go:build !tinygo

package hal

import (
	"context"
	"fmt"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host HostConfig
	// Snapshot, if set, is the BMP file the latched frame is written to.
	Snapshot string
}

// RunHeadless runs the bring-up against the simulator without opening a
// window.
func RunHeadless(ctx context.Context, run func(context.Context, HAL) error, cfg HeadlessConfig) error {
	h := NewHost(cfg.Host)
	if err := run(ctx, h); err != nil {
		return err
	}

	c := h.Requests()
	colmod, madctl := h.PanelFormat()
	h.logger.WriteLineString(fmt.Sprintf("sim: %d resets, %d commands, %d enables, %d flag reads, colmod=0x%02x madctl=0x%02x",
		c.Reset, c.Send, c.Enable, c.Polls, colmod, madctl))

	if cfg.Snapshot == "" {
		return nil
	}
	if err := h.WriteSnapshot(cfg.Snapshot); err != nil {
		return err
	}
	h.logger.WriteLineString("sim: frame written to " + cfg.Snapshot)
	return nil
}
