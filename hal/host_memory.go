//go:build !tinygo || !baremetal

package hal

import (
	"encoding/binary"
	"sync"
)

// hostMemory is the bridge window of the simulated board: plain little-endian
// RAM with optional stuck data lines.
type hostMemory struct {
	mu       sync.Mutex
	base     uint32
	buf      []byte
	stuckLow uint16
}

func newHostMemory(base, size uint32, stuckLow uint16) *hostMemory {
	return &hostMemory{
		base:     base,
		buf:      make([]byte, size),
		stuckLow: stuckLow,
	}
}

func (m *hostMemory) Base() uint32 { return m.base }
func (m *hostMemory) Size() uint32 { return uint32(len(m.buf)) }

func (m *hostMemory) in(off, n uint32) bool {
	return off <= uint32(len(m.buf)) && n <= uint32(len(m.buf))-off
}

// Read16 returns all ones outside the window, like an unclaimed bus cycle.
func (m *hostMemory) Read16(off uint32) uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.in(off, 2) {
		return 0xFFFF
	}
	return binary.LittleEndian.Uint16(m.buf[off:])
}

func (m *hostMemory) Write16(off uint32, v uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.in(off, 2) {
		return
	}
	binary.LittleEndian.PutUint16(m.buf[off:], v&^m.stuckLow)
}

func (m *hostMemory) Read32(off uint32) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.in(off, 4) {
		return 0xFFFFFFFF
	}
	return binary.LittleEndian.Uint32(m.buf[off:])
}

func (m *hostMemory) Write32(off uint32, v uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.in(off, 4) {
		return
	}
	stuck := uint32(m.stuckLow) | uint32(m.stuckLow)<<16
	binary.LittleEndian.PutUint32(m.buf[off:], v&^stuck)
}

// pixels copies n RGB565 pixels starting at byte offset off.
func (m *hostMemory) pixels(off uint32, n int) []uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint16, 0, n)
	for i := 0; i < n && m.in(off, 2); i++ {
		out = append(out, binary.LittleEndian.Uint16(m.buf[off:]))
		off += 2
	}
	return out
}
