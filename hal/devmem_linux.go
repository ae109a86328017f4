//go:build linux && !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unsafe"

	"periph.io/x/host/v3/pmem"
)

const devMemRegBytes = 0x40

// DevMemConfig locates the controller and the bridge window in physical
// memory.
type DevMemConfig struct {
	LCDBase    uint64
	BridgeBase uint64
	BridgeSize int

	// ImageBase is the bridge address as seen by the LCD controller. Zero
	// means the controller sees the window at BridgeBase.
	ImageBase uint32

	Output io.Writer
}

// DevMem is a HAL that reaches real hardware through /dev/mem.
type DevMem struct {
	logger *hostLogger
	regs   *devMemBus
	bridge *devMemWindow
}

// NewDevMem maps the controller registers and the bridge window. It needs
// permission to open /dev/mem.
func NewDevMem(cfg DevMemConfig) (*DevMem, error) {
	if cfg.BridgeSize <= 0 {
		cfg.BridgeSize = DefaultBridgeSize
	}
	if cfg.ImageBase == 0 {
		cfg.ImageBase = uint32(cfg.BridgeBase)
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	regs, err := mapDevMem(cfg.LCDBase, devMemRegBytes)
	if err != nil {
		return nil, fmt.Errorf("devmem: lcd registers at 0x%x: %w", cfg.LCDBase, err)
	}
	mem, err := mapDevMem(cfg.BridgeBase, cfg.BridgeSize)
	if err != nil {
		_ = regs.close()
		return nil, fmt.Errorf("devmem: bridge at 0x%x: %w", cfg.BridgeBase, err)
	}

	return &DevMem{
		logger: &hostLogger{w: cfg.Output},
		regs:   regs,
		bridge: &devMemWindow{devMemBus: mem, base: cfg.ImageBase, size: uint32(cfg.BridgeSize)},
	}, nil
}

func (d *DevMem) Logger() Logger { return d.logger }
func (d *DevMem) Registers() Bus { return d.regs }
func (d *DevMem) Bridge() Window { return d.bridge }

// Close unmaps both regions.
func (d *DevMem) Close() error {
	return errors.Join(d.regs.close(), d.bridge.close())
}

type devMemBus struct {
	view *pmem.View
	u16  []uint16
	u32  []uint32
}

// newDevMemBus views b as 16- and 32-bit registers. b must be 4-byte
// aligned.
func newDevMemBus(b []byte) *devMemBus {
	bus := &devMemBus{}
	if len(b) >= 2 {
		bus.u16 = unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), len(b)/2)
	}
	if len(b) >= 4 {
		bus.u32 = unsafe.Slice((*uint32)(unsafe.Pointer(&b[0])), len(b)/4)
	}
	return bus
}

func mapDevMem(base uint64, size int) (*devMemBus, error) {
	if base%4 != 0 {
		return nil, fmt.Errorf("base 0x%x not word aligned", base)
	}
	v, err := pmem.Map(base, size)
	if err != nil {
		return nil, err
	}
	bus := newDevMemBus(v.Bytes())
	bus.view = v
	return bus, nil
}

func (b *devMemBus) close() error {
	if b.view == nil {
		return nil
	}
	return b.view.Close()
}

func (b *devMemBus) Read16(off uint32) uint16 {
	i := off / 2
	if off%2 != 0 || i >= uint32(len(b.u16)) {
		return 0xFFFF
	}
	return b.u16[i]
}

func (b *devMemBus) Write16(off uint32, v uint16) {
	i := off / 2
	if off%2 != 0 || i >= uint32(len(b.u16)) {
		return
	}
	b.u16[i] = v
}

func (b *devMemBus) Read32(off uint32) uint32 {
	i := off / 4
	if off%4 != 0 || i >= uint32(len(b.u32)) {
		return 0xFFFFFFFF
	}
	return b.u32[i]
}

func (b *devMemBus) Write32(off uint32, v uint32) {
	i := off / 4
	if off%4 != 0 || i >= uint32(len(b.u32)) {
		return
	}
	b.u32[i] = v
}

type devMemWindow struct {
	*devMemBus
	base uint32
	size uint32
}

func (w *devMemWindow) Base() uint32 { return w.base }
func (w *devMemWindow) Size() uint32 { return w.size }
