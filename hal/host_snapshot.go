//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"image"
	"os"

	"golang.org/x/image/bmp"
)

// Image converts the latched panel frame to RGBA.
func (h *Host) Image() (*image.RGBA, bool) {
	px, w, hh, ok := h.Frame()
	if !ok || w <= 0 || hh <= 0 {
		return nil, false
	}
	img := image.NewRGBA(image.Rect(0, 0, w, hh))
	dst := img.Pix
	for i, p := range px {
		r, g, b := rgb888From565(p)
		j := i * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
	return img, true
}

// WriteSnapshot stores the latched panel frame as a BMP file.
func (h *Host) WriteSnapshot(path string) error {
	img, ok := h.Image()
	if !ok {
		return errors.New("snapshot: display not running")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := bmp.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	return f.Close()
}
