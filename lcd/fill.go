package lcd

import "lt24/hal"

// Named RGB565 colors.
const (
	Black uint16 = 0x0000
	Red   uint16 = 0xF800
	Green uint16 = 0x07E0
	Blue  uint16 = 0x001F
	White uint16 = 0xFFFF
)

// Pattern returns the RGB565 color of a pixel.
type Pattern func(row, col int) uint16

// Solid fills every pixel with c.
func Solid(c uint16) Pattern {
	return func(int, int) uint16 { return c }
}

// Stripes produces horizontal bands of height period. The color starts at a
// and flips at every row that is a multiple of period, row 0 included, so
// the first band is b.
func Stripes(a, b uint16, period int) Pattern {
	if period <= 0 {
		return Solid(b)
	}
	return func(row, _ int) uint16 {
		if (row/period)%2 == 0 {
			return b
		}
		return a
	}
}

// Order is the traversal order of a fill.
type Order uint8

const (
	RowMajor Order = iota
	ColumnMajor
)

// Layout describes a framebuffer of Rows x Cols RGB565 pixels stored row by
// row.
type Layout struct {
	Rows  int
	Cols  int
	Order Order
}

// Bytes is the size of the image in bytes.
func (l Layout) Bytes() uint32 { return uint32(l.Rows * l.Cols * 2) }

// Offset is the byte offset of pixel (row, col).
func (l Layout) Offset(row, col int) uint32 {
	return uint32(row*l.Cols+col) * 2
}

// FillReport summarizes a fill.
type FillReport struct {
	Pixels     int
	Mismatches int
}

// Fill writes pattern into every pixel of fb and verifies each write by
// reading it back. A mismatch is logged and the fill carries on.
func (c *Controller) Fill(fb hal.Bus, l Layout, pattern Pattern) FillReport {
	c.setState(FillingBuffer)

	var rep FillReport
	put := func(row, col int) {
		color := pattern(row, col)
		off := l.Offset(row, col)
		fb.Write16(off, color)
		if fb.Read16(off) != color {
			rep.Mismatches++
			c.logf("Error writing to extender")
		}
		rep.Pixels++
	}

	switch l.Order {
	case ColumnMajor:
		for col := 0; col < l.Cols; col++ {
			for row := 0; row < l.Rows; row++ {
				put(row, col)
			}
		}
	default:
		for row := 0; row < l.Rows; row++ {
			for col := 0; col < l.Cols; col++ {
				put(row, col)
			}
		}
	}
	return rep
}
