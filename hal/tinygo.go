//go:build tinygo && baremetal

package hal

import (
	"machine"
	"runtime/volatile"
	"unsafe"
)

// DefaultLCDBase is where the LCD controller's register file sits on the
// processor bus.
const DefaultLCDBase = 0x0004_1000

type tinyGoHAL struct {
	logger *serialLogger
	regs   *mmioBus
	bridge *mmioWindow
}

// New returns a bare-metal HAL at the default addresses.
func New() HAL {
	return NewAt(DefaultLCDBase, DefaultBridgeBase, DefaultBridgeSize)
}

// NewAt returns a bare-metal HAL for a controller at lcdBase and a bridge
// window of size bytes at bridgeBase.
func NewAt(lcdBase, bridgeBase uintptr, size uint32) HAL {
	return &tinyGoHAL{
		logger: &serialLogger{},
		regs:   &mmioBus{base: lcdBase},
		bridge: &mmioWindow{mmioBus: mmioBus{base: bridgeBase}, size: size},
	}
}

func (h *tinyGoHAL) Logger() Logger { return h.logger }
func (h *tinyGoHAL) Registers() Bus { return h.regs }
func (h *tinyGoHAL) Bridge() Window { return h.bridge }

type mmioBus struct {
	base uintptr
}

func (b *mmioBus) Read16(off uint32) uint16 {
	return volatile.LoadUint16((*uint16)(unsafe.Pointer(b.base + uintptr(off))))
}

func (b *mmioBus) Write16(off uint32, v uint16) {
	volatile.StoreUint16((*uint16)(unsafe.Pointer(b.base+uintptr(off))), v)
}

func (b *mmioBus) Read32(off uint32) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(b.base + uintptr(off))))
}

func (b *mmioBus) Write32(off uint32, v uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(b.base+uintptr(off))), v)
}

type mmioWindow struct {
	mmioBus
	size uint32
}

func (w *mmioWindow) Base() uint32 { return uint32(w.base) }
func (w *mmioWindow) Size() uint32 { return w.size }

type serialLogger struct{}

func (serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

func (l serialLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
