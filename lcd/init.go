package lcd

import (
	"context"
	"fmt"
	"slices"
)

// Command is one entry of a panel init table.
//
// Count is the number of Params actually sent. Some tables carry unused
// trailing values; they are kept so tables match their hardware-tested source.
type Command struct {
	Code   uint16
	Count  uint16
	Params []uint16
}

// Cmd builds a Command that sends all of params.
func Cmd(code uint16, params ...uint16) Command {
	return Command{Code: code, Count: uint16(len(params)), Params: params}
}

// Sent returns the parameters that go on the wire.
func (c Command) Sent() []uint16 {
	n := int(c.Count)
	if n > len(c.Params) {
		n = len(c.Params)
	}
	return c.Params[:n]
}

func (c Command) String() string {
	return fmt.Sprintf("0x%02x %x", c.Code, c.Sent())
}

// ILI9341 command codes used by the init tables.
const (
	CmdSleepOut         = 0x11
	CmdGammaSet         = 0x26
	CmdDisplayOn        = 0x29
	CmdColumnAddress    = 0x2A
	CmdPageAddress      = 0x2B
	CmdMemoryAccess     = 0x36
	CmdPixelFormat      = 0x3A
	CmdFrameControl     = 0xB1
	CmdDisplayFunction  = 0xB6
	CmdPowerControl1    = 0xC0
	CmdPowerControl2    = 0xC1
	CmdVCOMControl1     = 0xC5
	CmdVCOMControl2     = 0xC7
	CmdPowerControlA    = 0xCB
	CmdPowerControlB    = 0xCF
	CmdPositiveGamma    = 0xE0
	CmdNegativeGamma    = 0xE1
	CmdDriverTimingA    = 0xE8
	CmdDriverTimingB    = 0xEA
	CmdPowerOnSequence  = 0xED
	CmdEnable3Gamma     = 0xF2
	CmdInterface        = 0xF6
	CmdPumpRatioControl = 0xF7
)

// InitSolid is the init table of the solid-fill bring-up.
var InitSolid = []Command{
	{Code: CmdSleepOut, Count: 0, Params: []uint16{0x09, 0x0a}},
	Cmd(CmdPowerControlB, 0x00, 0x81, 0xc0),
	Cmd(CmdPowerOnSequence, 0x64, 0x03, 0x12, 0x81),
	Cmd(CmdDriverTimingA, 0x85, 0x01, 0x0798),
	Cmd(CmdPowerControlA, 0x39, 0x2c, 0x00, 0x34, 0x02),
	Cmd(CmdPumpRatioControl, 0x20),
	Cmd(CmdDriverTimingB, 0x00, 0x00),
	Cmd(CmdFrameControl, 0x00, 0x1b),
	Cmd(CmdDisplayFunction, 0x0a, 0xa2),
	Cmd(CmdPowerControl1, 0x05),
	Cmd(CmdPowerControl2, 0x11),
	Cmd(CmdVCOMControl1, 0x45, 0x45),
	Cmd(CmdVCOMControl2, 0xa2),
	Cmd(CmdMemoryAccess, 0x48), // BGR, column address order flipped
	Cmd(CmdEnable3Gamma, 0x00),
	Cmd(CmdGammaSet, 0x01),
	Cmd(CmdPositiveGamma, 0x0f, 0x26, 0x24, 0x0b, 0x0e, 0x08, 0x4b, 0xa8, 0x3b, 0x0a, 0x14, 0x06, 0x10, 0x09, 0x00),
	Cmd(CmdNegativeGamma, 0x00, 0x1c, 0x20, 0x04, 0x10, 0x08, 0x34, 0x47, 0x44, 0x05, 0x0b, 0x09, 0x2f, 0x36, 0x0f),
	Cmd(CmdColumnAddress, 0x00, 0x00, 0x00, 0xef), // 240 columns
	Cmd(CmdPageAddress, 0x00, 0x00, 0x01, 0x3f),   // 320 rows
	Cmd(CmdPixelFormat, 0x55),                     // 16 bpp
	Cmd(CmdInterface, 0x01, 0x30, 0x00),
	{Code: CmdDisplayOn, Count: 0, Params: []uint16{0x09, 0x0a}},
}

// InitStripes is the init table of the striped bring-up. It differs from
// InitSolid in the driver timing and interface control parameters.
var InitStripes = []Command{
	{Code: CmdSleepOut, Count: 0, Params: []uint16{0x09, 0x0a}},
	Cmd(CmdPowerControlB, 0x00, 0x81, 0xc0),
	Cmd(CmdPowerOnSequence, 0x64, 0x03, 0x12, 0x81),
	Cmd(CmdDriverTimingA, 0x85, 0x01, 0x98),
	Cmd(CmdPowerControlA, 0x39, 0x2c, 0x00, 0x34, 0x02),
	Cmd(CmdPumpRatioControl, 0x20),
	Cmd(CmdDriverTimingB, 0x00, 0x00),
	Cmd(CmdFrameControl, 0x00, 0x1b),
	Cmd(CmdDisplayFunction, 0x0a, 0xa2),
	Cmd(CmdPowerControl1, 0x05),
	Cmd(CmdPowerControl2, 0x11),
	Cmd(CmdVCOMControl1, 0x45, 0x45),
	Cmd(CmdVCOMControl2, 0xa2),
	Cmd(CmdMemoryAccess, 0x48),
	Cmd(CmdEnable3Gamma, 0x00),
	Cmd(CmdGammaSet, 0x01),
	Cmd(CmdPositiveGamma, 0x0f, 0x26, 0x24, 0x0b, 0x0e, 0x08, 0x4b, 0xa8, 0x3b, 0x0a, 0x14, 0x06, 0x10, 0x09, 0x00),
	Cmd(CmdNegativeGamma, 0x00, 0x1c, 0x20, 0x04, 0x10, 0x08, 0x34, 0x47, 0x44, 0x05, 0x0b, 0x09, 0x2f, 0x36, 0x0f),
	Cmd(CmdColumnAddress, 0x00, 0x00, 0x00, 0xef),
	Cmd(CmdPageAddress, 0x00, 0x00, 0x01, 0x3f),
	Cmd(CmdPixelFormat, 0x55),
	Cmd(CmdInterface, 0x01, 0x10, 0x00),
	{Code: CmdDisplayOn, Count: 0, Params: []uint16{0x09, 0x0a}},
}

// RunInit sends every command of table in order.
func (c *Controller) RunInit(ctx context.Context, table []Command) error {
	c.setState(Initializing)
	for i, cmd := range table {
		if err := c.SendCommandN(ctx, cmd.Code, int(cmd.Count), cmd.Params); err != nil {
			return fmt.Errorf("lcd: init step %d: %w", i, err)
		}
	}
	c.setState(Initialized)
	return nil
}

// TableDiff is one position at which two init tables disagree.
type TableDiff struct {
	Index int
	A, B  *Command
}

// Diff compares two init tables entry by entry, including only what goes on
// the wire. A nil side means the table is shorter.
func Diff(a, b []Command) []TableDiff {
	var out []TableDiff
	for i := 0; i < max(len(a), len(b)); i++ {
		var ca, cb *Command
		if i < len(a) {
			ca = &a[i]
		}
		if i < len(b) {
			cb = &b[i]
		}
		if ca != nil && cb != nil && ca.Code == cb.Code && slices.Equal(ca.Sent(), cb.Sent()) {
			continue
		}
		out = append(out, TableDiff{Index: i, A: ca, B: cb})
	}
	return out
}
