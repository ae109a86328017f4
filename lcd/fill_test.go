package lcd

import "testing"

func TestFillWritesEveryPixelOnce(t *testing.T) {
	for _, order := range []Order{RowMajor, ColumnMajor} {
		fb := newFakeFB()
		log := &recordLogger{}
		c := New(newFakeRegs(0), log, Config{})

		l := Layout{Rows: 24, Cols: 32, Order: order}
		rep := c.Fill(fb, l, Solid(Red))

		if rep.Pixels != l.Rows*l.Cols || rep.Mismatches != 0 {
			t.Fatalf("order %d: report = %+v", order, rep)
		}
		if len(fb.writes) != l.Rows*l.Cols {
			t.Fatalf("order %d: distinct offsets = %d, want %d", order, len(fb.writes), l.Rows*l.Cols)
		}
		for off, n := range fb.writes {
			if n != 1 {
				t.Fatalf("order %d: offset 0x%x written %d times", order, off, n)
			}
			if fb.mem[off] != Red {
				t.Fatalf("order %d: offset 0x%x = 0x%04x", order, off, fb.mem[off])
			}
			if off >= l.Bytes() {
				t.Fatalf("order %d: offset 0x%x outside image", order, off)
			}
		}
		if len(log.lines) != 0 {
			t.Fatalf("order %d: unexpected log %s", order, log)
		}
	}
}

func TestFillTraversalOrder(t *testing.T) {
	l := Layout{Rows: 2, Cols: 3}

	fb := newFakeFB()
	New(newFakeRegs(0), nil, Config{}).Fill(fb, l, Solid(White))
	want := []uint32{0, 2, 4, 6, 8, 10}
	for i, off := range want {
		if fb.order[i] != off {
			t.Fatalf("row-major write %d at 0x%x, want 0x%x", i, fb.order[i], off)
		}
	}

	l.Order = ColumnMajor
	fb = newFakeFB()
	New(newFakeRegs(0), nil, Config{}).Fill(fb, l, Solid(White))
	want = []uint32{0, 6, 2, 8, 4, 10}
	for i, off := range want {
		if fb.order[i] != off {
			t.Fatalf("column-major write %d at 0x%x, want 0x%x", i, fb.order[i], off)
		}
	}
}

func TestFillLogsEachMismatch(t *testing.T) {
	fb := newFakeFB()
	l := Layout{Rows: 10, Cols: 10}
	bad := []uint32{l.Offset(0, 0), l.Offset(3, 7), l.Offset(9, 9)}
	for _, off := range bad {
		fb.corrupt[off] = true
	}

	log := &recordLogger{}
	rep := New(newFakeRegs(0), log, Config{}).Fill(fb, l, Solid(Blue))

	if rep.Mismatches != len(bad) {
		t.Fatalf("mismatches = %d, want %d", rep.Mismatches, len(bad))
	}
	if rep.Pixels != 100 {
		t.Fatalf("pixels = %d, fill aborted early", rep.Pixels)
	}
	if n := log.count("Error writing to extender"); n != len(bad) {
		t.Fatalf("logged %d diagnostics, want %d", n, len(bad))
	}
}

func TestStripesSwitchAtMultiplesOf100(t *testing.T) {
	p := Stripes(Red, Blue, 100)

	prev := p(0, 0)
	if prev != Blue {
		t.Fatalf("row 0 = 0x%04x, want blue", prev)
	}
	for row := 1; row < 320; row++ {
		got := p(row, 5)
		switched := got != prev
		if switched != (row%100 == 0) {
			t.Fatalf("row %d: switched=%v", row, switched)
		}
		prev = got
	}
	if p(150, 0) != Red || p(250, 319) != Blue {
		t.Fatal("unexpected band colors")
	}
}

func TestStripesIgnoreColumn(t *testing.T) {
	p := Stripes(Red, Blue, 100)
	for col := 0; col < 320; col++ {
		if p(120, col) != Red {
			t.Fatalf("col %d differs", col)
		}
	}
}
