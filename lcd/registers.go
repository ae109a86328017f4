// Package lcd drives the LT24 LCD controller register file.
//
// The controller exposes a small block of registers behind the FPGA bridge:
//
//	Offset     Width  Register
//	0x0        u32    image address
//	0x4        u32    image length (bytes)
//	0x8        u16    flags
//	0xA        u16    command
//	0xC        u16    parameter count
//	0xE + 2n   u16    parameter n
//
// Requests follow a set-then-poll handshake: software sets a flag bit and the
// controller clears it once the request has been carried out.
package lcd

import "fmt"

const (
	RegImageAddress = 0x0
	RegImageLength  = 0x4
	RegFlags        = 0x8
	RegCommand      = 0xA
	RegParamCount   = 0xC
	RegParamBase    = 0xE

	// MaxParams is the parameter capacity of the register file.
	MaxParams = 16
)

// ParamOffset returns the register offset of parameter n.
func ParamOffset(n int) uint32 {
	return RegParamBase + uint32(n)*2
}

// Flag is a bit of the flags register.
type Flag uint16

const (
	FlagEnable Flag = 1 << iota
	FlagSendCommand
	FlagReset
)

func (f Flag) String() string {
	switch f {
	case FlagEnable:
		return "enable"
	case FlagSendCommand:
		return "send-command"
	case FlagReset:
		return "reset"
	}
	return fmt.Sprintf("flags(0x%04x)", uint16(f))
}
