package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Default bridge window: one 320x240 RGB565 image.
const (
	DefaultBridgeBase = 0x0800_0000
	DefaultBridgeSize = 320 * 240 * 2
)

// Bus is a memory-mapped region accessed in 16- and 32-bit units.
//
// Offsets are in bytes from the start of the region. Implementations do not
// cache: every call is a real load or store.
type Bus interface {
	Read16(off uint32) uint16
	Write16(off uint32, v uint16)
	Read32(off uint32) uint32
	Write32(off uint32, v uint32)
}

// Window is a Bus reached through the FPGA bridge.
//
// Base is the address at which the LCD controller sees offset 0 of the window,
// i.e. the value to program into its image address register.
type Window interface {
	Bus
	Base() uint32
	Size() uint32
}

// HAL provides the only contact point between the driver and the outside world.
type HAL interface {
	Logger() Logger
	Registers() Bus
	Bridge() Window
}
