//go:build !linux && !tinygo

package hal

import "io"

// DevMemConfig locates the controller and the bridge window in physical
// memory.
type DevMemConfig struct {
	LCDBase    uint64
	BridgeBase uint64
	BridgeSize int
	ImageBase  uint32
	Output     io.Writer
}

// DevMem is only available on Linux.
type DevMem struct{}

func NewDevMem(DevMemConfig) (*DevMem, error) { return nil, ErrNotImplemented }

func (d *DevMem) Logger() Logger { return nil }
func (d *DevMem) Registers() Bus { return nil }
func (d *DevMem) Bridge() Window { return nil }
func (d *DevMem) Close() error   { return nil }
