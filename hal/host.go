//go:build !tinygo || !baremetal

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// HostConfig configures the simulated board.
type HostConfig struct {
	BridgeBase uint32
	BridgeSize uint32

	// Latency is the number of flag register reads for which a request bit
	// stays set before the simulated controller clears it.
	Latency int

	// StuckLow lists bridge data lines that always read back as zero.
	StuckLow uint16

	// Output receives log lines. Defaults to stdout.
	Output io.Writer
}

// Host is a HAL backed by a simulated LCD controller and bridge memory.
type Host struct {
	logger *hostLogger
	ctrl   *simController
	mem    *hostMemory
}

// New returns a simulated board with default settings. It is the HAL of
// TinyGo builds that do not run on bare metal.
func New() HAL {
	return NewHost(HostConfig{})
}

// NewHost returns a simulated board.
func NewHost(cfg HostConfig) *Host {
	if cfg.BridgeBase == 0 {
		cfg.BridgeBase = DefaultBridgeBase
	}
	if cfg.BridgeSize == 0 {
		cfg.BridgeSize = DefaultBridgeSize
	}
	if cfg.Latency < 0 {
		cfg.Latency = 0
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	mem := newHostMemory(cfg.BridgeBase, cfg.BridgeSize, cfg.StuckLow)
	return &Host{
		logger: &hostLogger{w: cfg.Output},
		ctrl:   newSimController(mem, cfg.Latency),
		mem:    mem,
	}
}

func (h *Host) Logger() Logger { return h.logger }
func (h *Host) Registers() Bus { return h.ctrl }
func (h *Host) Bridge() Window { return h.mem }

// Trace returns the commands the simulated controller has sent to the panel
// since the last reset.
func (h *Host) Trace() []TraceCommand { return h.ctrl.trace() }

// Frame returns a copy of the image latched by the last display enable.
func (h *Host) Frame() (pixels []uint16, width, height int, ok bool) {
	return h.ctrl.frame()
}

// Requests reports how many requests of each kind the controller completed.
func (h *Host) Requests() RequestCounts { return h.ctrl.counts() }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// PanelFormat returns the last pixel format (COLMOD) and memory access
// control (MADCTL) values sent to the panel.
func (h *Host) PanelFormat() (colmod, madctl uint16) { return h.ctrl.pixelFormat() }
