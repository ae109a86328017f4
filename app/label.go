package app

import (
	"image/color"

	"lt24/hal"
	"lt24/lcd"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var labelFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// LabelColor is the text color app.Run uses.
var LabelColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Label draws text centered over base in fg.
func Label(base lcd.Pattern, l lcd.Layout, text string, fg color.RGBA) lcd.Pattern {
	if text == "" || l.Rows <= 0 || l.Cols <= 0 {
		return base
	}

	c := newCanvas(l.Cols, l.Rows)
	_, outbox := tinyfont.LineWidth(labelFont, text)
	x := (l.Cols - int(outbox)) / 2
	if x < 0 {
		x = 0
	}
	tinyfont.WriteLine(c, labelFont, int16(x), int16(l.Rows/2), text, fg)

	ink := hal.RGB565(fg.R, fg.G, fg.B)
	return func(row, col int) uint16 {
		if c.ink(col, row) {
			return ink
		}
		return base(row, col)
	}
}

// canvas records which pixels glyphs touched.
type canvas struct {
	w, h int
	set  []bool
}

var _ drivers.Displayer = (*canvas)(nil)

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, set: make([]bool, w*h)}
}

func (c *canvas) Size() (x, y int16) { return int16(c.w), int16(c.h) }

func (c *canvas) SetPixel(x, y int16, _ color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= c.w || iy < 0 || iy >= c.h {
		return
	}
	c.set[iy*c.w+ix] = true
}

func (c *canvas) Display() error { return nil }

func (c *canvas) ink(x, y int) bool {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return false
	}
	return c.set[y*c.w+x]
}
