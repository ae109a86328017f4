package lcd

import (
	"context"
	"fmt"
	"time"

	"lt24/hal"
)

// Config configures a Controller.
type Config struct {
	Poll Poll
	// Verbose logs every state transition.
	Verbose bool
}

// Controller drives one LCD controller through its register file.
//
// It is not safe for concurrent use; the controller itself only supports a
// single outstanding request.
type Controller struct {
	regs hal.Bus
	log  hal.Logger

	poll    Poll
	verbose bool
	now     func() time.Time

	state State
}

// New returns a controller for the register block regs.
func New(regs hal.Bus, log hal.Logger, cfg Config) *Controller {
	return &Controller{
		regs:    regs,
		log:     log,
		poll:    cfg.Poll,
		verbose: cfg.Verbose,
		now:     time.Now,
	}
}

// State returns the last state the controller was moved to.
func (c *Controller) State() State { return c.state }

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	if c.verbose {
		c.logf("lcd: %s -> %s", c.state, s)
	}
	c.state = s
}

func (c *Controller) logf(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.WriteLineString(fmt.Sprintf(format, args...))
}

// SetFlag ORs bits into the flags register.
func (c *Controller) SetFlag(bits Flag) {
	flags := c.regs.Read16(RegFlags)
	c.regs.Write16(RegFlags, flags|uint16(bits))
}

// Reset requests a controller reset and waits for it to complete.
func (c *Controller) Reset(ctx context.Context) error {
	c.setState(ResetPending)
	c.SetFlag(FlagReset)
	if err := c.waitClear(ctx, FlagReset); err != nil {
		return err
	}
	c.setState(ResetDone)
	return nil
}

// SendCommand sends cmd with all of params and waits for the controller to
// clock it out to the panel.
func (c *Controller) SendCommand(ctx context.Context, cmd uint16, params ...uint16) error {
	return c.SendCommandN(ctx, cmd, len(params), params)
}

// SendCommandN sends cmd with the first n entries of params.
func (c *Controller) SendCommandN(ctx context.Context, cmd uint16, n int, params []uint16) error {
	if n < 0 || n > len(params) {
		return fmt.Errorf("%w: command 0x%02x: count %d, have %d", ErrParamCount, cmd, n, len(params))
	}
	if n > MaxParams {
		return fmt.Errorf("%w: command 0x%02x: %d > %d", ErrTooManyParams, cmd, n, MaxParams)
	}

	c.regs.Write16(RegCommand, cmd)
	c.regs.Write16(RegParamCount, uint16(n))
	for i := 0; i < n; i++ {
		c.regs.Write16(ParamOffset(i), params[i])
	}

	// The request is written outright, not merged into the current flags.
	c.regs.Write16(RegFlags, uint16(FlagSendCommand))
	if err := c.waitClear(ctx, FlagSendCommand); err != nil {
		return fmt.Errorf("lcd: command 0x%02x: %w", cmd, err)
	}
	return nil
}

// Start enables the display and waits for the controller to acknowledge.
func (c *Controller) Start(ctx context.Context) error {
	c.setState(Starting)
	c.SetFlag(FlagEnable)
	if err := c.waitClear(ctx, FlagEnable); err != nil {
		return err
	}
	c.setState(Running)
	return nil
}

// ConfigureImage points the controller at a framebuffer of length bytes.
//
// Both registers are read back and logged; the values are not checked.
func (c *Controller) ConfigureImage(address, length uint32) {
	c.regs.Write32(RegImageAddress, address)
	c.regs.Write32(RegImageLength, length)

	c.logf("Sent address: %d", c.regs.Read32(RegImageAddress))
	c.logf("Sent length: %d", c.regs.Read32(RegImageLength))
	c.setState(BufferConfigured)
}
