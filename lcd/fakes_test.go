package lcd

import (
	"fmt"
	"sync"
)

type write struct {
	off uint32
	val uint32
}

// fakeRegs is a register block whose flags clear latency reads after being
// set, the way the controller acknowledges requests.
type fakeRegs struct {
	mem     map[uint32]uint32
	writes  []write
	latency int
	pending int
	stuck   bool

	flagReads int
	commands  []Command
	onFlag    func(flags uint16)
}

func newFakeRegs(latency int) *fakeRegs {
	return &fakeRegs{mem: make(map[uint32]uint32), latency: latency}
}

func (r *fakeRegs) Read16(off uint32) uint16 {
	if off == RegFlags {
		r.flagReads++
		flags := uint16(r.mem[off])
		if flags != 0 && !r.stuck {
			if r.pending <= 0 {
				r.complete(flags)
				r.mem[off] = 0
				return 0
			}
			r.pending--
		}
		return flags
	}
	return uint16(r.mem[off])
}

func (r *fakeRegs) Write16(off uint32, v uint16) {
	r.writes = append(r.writes, write{off: off, val: uint32(v)})
	r.mem[off] = uint32(v)
	if off == RegFlags && v != 0 {
		r.pending = r.latency
		if r.onFlag != nil {
			r.onFlag(v)
		}
	}
}

func (r *fakeRegs) Read32(off uint32) uint32 { return r.mem[off] }

func (r *fakeRegs) Write32(off uint32, v uint32) {
	r.writes = append(r.writes, write{off: off, val: v})
	r.mem[off] = v
}

func (r *fakeRegs) complete(flags uint16) {
	if flags&uint16(FlagSendCommand) == 0 {
		return
	}
	n := int(uint16(r.mem[RegParamCount]))
	cmd := Command{Code: uint16(r.mem[RegCommand]), Count: uint16(n)}
	for i := 0; i < n; i++ {
		cmd.Params = append(cmd.Params, uint16(r.mem[ParamOffset(i)]))
	}
	r.commands = append(r.commands, cmd)
}

// fakeFB is pixel memory that can be told to corrupt selected offsets.
type fakeFB struct {
	mem     map[uint32]uint16
	writes  map[uint32]int
	order   []uint32
	corrupt map[uint32]bool
}

func newFakeFB() *fakeFB {
	return &fakeFB{
		mem:     make(map[uint32]uint16),
		writes:  make(map[uint32]int),
		corrupt: make(map[uint32]bool),
	}
}

func (f *fakeFB) Read16(off uint32) uint16 {
	if f.corrupt[off] {
		return ^f.mem[off]
	}
	return f.mem[off]
}

func (f *fakeFB) Write16(off uint32, v uint16) {
	f.mem[off] = v
	f.writes[off]++
	f.order = append(f.order, off)
}

func (f *fakeFB) Read32(off uint32) uint32 {
	return uint32(f.Read16(off)) | uint32(f.Read16(off+2))<<16
}

func (f *fakeFB) Write32(off uint32, v uint32) {
	f.Write16(off, uint16(v))
	f.Write16(off+2, uint16(v>>16))
}

type recordLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *recordLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *recordLogger) count(s string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range l.lines {
		if line == s {
			n++
		}
	}
	return n
}

func (l *recordLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprint(l.lines)
}
