//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostFramebuffer is the emulated panel: RGB565, little endian, shown by the host front ends.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Size() (x, y int16) { return int16(f.width), int16(f.height) }

func (f *hostFramebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= f.width || iy >= f.height {
		return
	}
	f.mu.Lock()
	f.put(iy*f.stride+ix*2, rgb565(c))
	f.mu.Unlock()
}

func (f *hostFramebuffer) put(off int, pixel uint16) {
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

func (f *hostFramebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0, y0 := max(int(x), 0), max(int(y), 0)
	x1, y1 := min(int(x)+int(width), f.width), min(int(y)+int(height), f.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	pixel := rgb565(c)

	f.mu.Lock()
	defer f.mu.Unlock()
	for yy := y0; yy < y1; yy++ {
		row := yy * f.stride
		for xx := x0; xx < x1; xx++ {
			f.put(row+xx*2, pixel)
		}
	}
	return nil
}

// Display is a no-op: every pixel is already visible to the front end.
func (f *hostFramebuffer) Display() error { return nil }

// pixelAt decodes one pixel. Out of range reads return black.
func (f *hostFramebuffer) pixelAt(x, y int) (r, g, b uint8) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0, 0, 0
	}
	f.mu.Lock()
	off := y*f.stride + x*2
	p := uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
	f.mu.Unlock()
	return rgb888From565(p)
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
