package hal

import "testing"

func TestRGB565(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
		{255, 255, 255, 0xFFFF},
		{0, 0, 0, 0x0000},
	}
	for _, tc := range tests {
		if got := RGB565(tc.r, tc.g, tc.b); got != tc.want {
			t.Fatalf("RGB565(%d,%d,%d) = 0x%04x, want 0x%04x", tc.r, tc.g, tc.b, got, tc.want)
		}
		r, g, b := rgb888From565(tc.want)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("rgb888From565(0x%04x) = %d,%d,%d", tc.want, r, g, b)
		}
	}
}
