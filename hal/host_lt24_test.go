//go:build !tinygo

package hal

import (
	"bytes"
	"testing"
)

func TestSimControllerClearsAfterLatency(t *testing.T) {
	h := NewHost(HostConfig{Latency: 3, Output: &bytes.Buffer{}})
	regs := h.Registers()

	regs.Write16(simFlags, simFlagReset)
	for i := 0; i < 3; i++ {
		if regs.Read16(simFlags)&simFlagReset == 0 {
			t.Fatalf("read %d: reset cleared early", i)
		}
	}
	if regs.Read16(simFlags)&simFlagReset != 0 {
		t.Fatal("reset not cleared after latency")
	}
	if got := h.Requests(); got.Reset != 1 || got.Pending != 0 {
		t.Fatalf("requests = %+v", got)
	}
}

func TestSimControllerDecodesCommands(t *testing.T) {
	h := NewHost(HostConfig{Output: &bytes.Buffer{}})
	regs := h.Registers()

	send := func(code uint16, params ...uint16) {
		regs.Write16(simCommand, code)
		regs.Write16(simParamCount, uint16(len(params)))
		for i, p := range params {
			regs.Write16(simParamBase+uint32(i)*2, p)
		}
		regs.Write16(simFlags, simFlagSend)
		for regs.Read16(simFlags)&simFlagSend != 0 {
		}
	}

	send(panelColumnAddress, 0x00, 0x00, 0x01, 0x3f)
	send(panelPageAddress, 0x00, 0x00, 0x00, 0xef)
	send(panelPixelFormat, 0x55)

	tr := h.Trace()
	if len(tr) != 3 || tr[0].Code != panelColumnAddress || len(tr[0].Params) != 4 {
		t.Fatalf("trace = %+v", tr)
	}
	if colmod, _ := h.PanelFormat(); colmod != 0x55 {
		t.Fatalf("colmod = 0x%x", colmod)
	}

	mem := h.Bridge()
	for i := uint32(0); i < 320*240; i++ {
		mem.Write16(i*2, uint16(i))
	}
	regs.Write32(simImageAddress, mem.Base())
	regs.Write32(simImageLength, 320*240*2)
	regs.Write16(simFlags, simFlagEnable)
	for regs.Read16(simFlags)&simFlagEnable != 0 {
	}

	px, w, hh, ok := h.Frame()
	if !ok || w != 320 || hh != 240 {
		t.Fatalf("frame %dx%d ok=%v", w, hh, ok)
	}
	if px[0] != 0 || px[321] != 321 || px[len(px)-1] != uint16(len(px)-1) {
		t.Fatal("latched frame does not match bridge memory")
	}

	regs.Write16(simFlags, simFlagReset)
	for regs.Read16(simFlags)&simFlagReset != 0 {
	}
	if len(h.Trace()) != 0 {
		t.Fatal("reset kept the command trace")
	}
	if _, _, _, ok := h.Frame(); ok {
		t.Fatal("reset left the panel running")
	}
}

func TestHostMemoryStuckLines(t *testing.T) {
	h := NewHost(HostConfig{StuckLow: 0x0100, Output: &bytes.Buffer{}})
	mem := h.Bridge()

	mem.Write16(0, 0xFFFF)
	if got := mem.Read16(0); got != 0xFEFF {
		t.Fatalf("read = 0x%04x, want 0xfeff", got)
	}
	if got := mem.Read16(mem.Size()); got != 0xFFFF {
		t.Fatalf("read past end = 0x%04x", got)
	}
	mem.Write16(mem.Size(), 0)
}

func TestNewDefaultsToSimulator(t *testing.T) {
	h, ok := New().(*Host)
	if !ok {
		t.Fatal("New did not return the simulated board")
	}
	if b := h.Bridge(); b.Base() != DefaultBridgeBase || b.Size() != DefaultBridgeSize {
		t.Fatalf("bridge at 0x%x size %d", b.Base(), b.Size())
	}
}
