//go:build !tinygo || !baremetal

package hal

import (
	"encoding/binary"
	"sync"
)

// Register file of the simulated LT24 controller.
const (
	simImageAddress = 0x0
	simImageLength  = 0x4
	simFlags        = 0x8
	simCommand      = 0xA
	simParamCount   = 0xC
	simParamBase    = 0xE
	simMaxParams    = 16
	simRegBytes     = simParamBase + 2*simMaxParams

	simFlagEnable  = 1 << 0
	simFlagSend    = 1 << 1
	simFlagReset   = 1 << 2
	simRequestMask = simFlagEnable | simFlagSend | simFlagReset
)

// Panel commands the simulator interprets.
const (
	panelColumnAddress = 0x2A
	panelPageAddress   = 0x2B
	panelMemoryAccess  = 0x36
	panelPixelFormat   = 0x3A

	panelDefaultWidth  = 240
	panelDefaultHeight = 320
)

// TraceCommand is a command as the simulated controller clocked it out.
type TraceCommand struct {
	Code   uint16
	Params []uint16
}

// RequestCounts tallies completed requests.
type RequestCounts struct {
	Reset   int
	Send    int
	Enable  int
	Polls   int
	Pending uint16
}

// simController models the register file and sequencer of the LCD
// controller. A request bit written to the flags register stays set for
// latency further reads of that register, then the request is carried out
// and the bit cleared.
type simController struct {
	mu      sync.Mutex
	regs    [simRegBytes]byte
	mem     *hostMemory
	latency int

	pending   uint16
	countdown int
	stats     RequestCounts

	cmds   []TraceCommand
	width  int
	height int
	madctl uint16
	colmod uint16

	running bool
	latched []uint16
	frameW  int
	frameH  int
}

func newSimController(mem *hostMemory, latency int) *simController {
	c := &simController{mem: mem, latency: latency}
	c.resetPanel()
	return c
}

func (c *simController) resetPanel() {
	c.cmds = nil
	c.width = panelDefaultWidth
	c.height = panelDefaultHeight
	c.madctl = 0
	c.colmod = 0
	c.running = false
}

func (c *simController) in(off, n uint32) bool {
	return off <= simRegBytes && n <= simRegBytes-off
}

func (c *simController) Read16(off uint32) uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.in(off, 2) {
		return 0xFFFF
	}
	if off == simFlags {
		c.stats.Polls++
		c.tick()
	}
	return binary.LittleEndian.Uint16(c.regs[off:])
}

func (c *simController) Write16(off uint32, v uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.in(off, 2) {
		return
	}
	binary.LittleEndian.PutUint16(c.regs[off:], v)
	if off == simFlags {
		if req := v & simRequestMask &^ c.pending; req != 0 {
			c.pending |= req
			c.countdown = c.latency
		}
	}
}

func (c *simController) Read32(off uint32) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.in(off, 4) {
		return 0xFFFFFFFF
	}
	return binary.LittleEndian.Uint32(c.regs[off:])
}

func (c *simController) Write32(off uint32, v uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.in(off, 4) {
		return
	}
	binary.LittleEndian.PutUint32(c.regs[off:], v)
}

// tick advances the in-flight request by one flags read.
func (c *simController) tick() {
	if c.pending == 0 {
		return
	}
	if c.countdown > 0 {
		c.countdown--
		return
	}

	done := c.pending
	c.pending = 0
	if done&simFlagReset != 0 {
		c.stats.Reset++
		c.resetPanel()
	}
	if done&simFlagSend != 0 {
		c.stats.Send++
		c.send()
	}
	if done&simFlagEnable != 0 {
		c.stats.Enable++
		c.enable()
	}

	flags := binary.LittleEndian.Uint16(c.regs[simFlags:])
	binary.LittleEndian.PutUint16(c.regs[simFlags:], flags&^done)
}

func (c *simController) reg16(off uint32) uint16 {
	return binary.LittleEndian.Uint16(c.regs[off:])
}

func (c *simController) send() {
	code := c.reg16(simCommand)
	n := int(c.reg16(simParamCount))
	if n > simMaxParams {
		n = simMaxParams
	}
	params := make([]uint16, n)
	for i := range params {
		params[i] = c.reg16(simParamBase + uint32(i)*2)
	}
	c.cmds = append(c.cmds, TraceCommand{Code: code, Params: params})

	switch code {
	case panelColumnAddress:
		if w, ok := span(params); ok {
			c.width = w
		}
	case panelPageAddress:
		if h, ok := span(params); ok {
			c.height = h
		}
	case panelMemoryAccess:
		if n > 0 {
			c.madctl = params[0]
		}
	case panelPixelFormat:
		if n > 0 {
			c.colmod = params[0]
		}
	}
}

// span decodes a start/end address window sent as four bytes.
func span(p []uint16) (int, bool) {
	if len(p) < 4 {
		return 0, false
	}
	start := int(p[0]&0xFF)<<8 | int(p[1]&0xFF)
	end := int(p[2]&0xFF)<<8 | int(p[3]&0xFF)
	if end < start {
		return 0, false
	}
	return end - start + 1, true
}

// enable latches the configured image out of bridge memory.
func (c *simController) enable() {
	addr := binary.LittleEndian.Uint32(c.regs[simImageAddress:])
	length := binary.LittleEndian.Uint32(c.regs[simImageLength:])

	n := c.width * c.height
	if int(length/2) < n {
		n = int(length / 2)
	}
	c.latched = nil
	if addr >= c.mem.Base() {
		c.latched = c.mem.pixels(addr-c.mem.Base(), n)
	}
	c.frameW = c.width
	c.frameH = c.height
	c.running = true
}

func (c *simController) trace() []TraceCommand {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]TraceCommand, len(c.cmds))
	copy(out, c.cmds)
	return out
}

func (c *simController) frame() ([]uint16, int, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return nil, 0, 0, false
	}
	out := make([]uint16, c.frameW*c.frameH)
	copy(out, c.latched)
	return out, c.frameW, c.frameH, true
}

func (c *simController) counts() RequestCounts {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Pending = c.pending
	return s
}

// pixelFormat reports the last COLMOD and MADCTL values the panel received.
func (c *simController) pixelFormat() (colmod, madctl uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.colmod, c.madctl
}
