//go:build !tinygo

package hal

import (
	"image/color"
	"testing"
)

func TestHostFramebufferFillClips(t *testing.T) {
	fb := newHostFramebuffer(8, 4)
	red := color.RGBA{R: 255, A: 255}

	if err := fb.FillRectangle(-2, 2, 4, 10, red); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}

	if r, _, _ := fb.pixelAt(0, 3); r != 255 {
		t.Fatalf("expected red at (0,3), got r=%d", r)
	}
	if r, _, _ := fb.pixelAt(2, 3); r != 0 {
		t.Fatalf("expected untouched pixel at (2,3), got r=%d", r)
	}
	if r, _, _ := fb.pixelAt(0, 1); r != 0 {
		t.Fatalf("expected untouched pixel at (0,1), got r=%d", r)
	}
}

func TestHostFramebufferSetPixelEncoding(t *testing.T) {
	fb := newHostFramebuffer(2, 2)
	fb.SetPixel(1, 0, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	fb.SetPixel(5, 5, color.RGBA{R: 255, A: 255})

	if fb.buf[2] != 0x1F || fb.buf[3] != 0x00 {
		t.Fatalf("unexpected RGB565 bytes %#x %#x", fb.buf[2], fb.buf[3])
	}
	if w, h := fb.Size(); w != 2 || h != 2 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
}
