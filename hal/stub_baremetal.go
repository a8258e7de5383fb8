//go:build tinygo && baremetal

package hal

import "image/color"

// stubSurface stands in for a panel that failed to come up. Drawing is dropped.
type stubSurface struct {
	w, h int16
}

func (s *stubSurface) Size() (x, y int16)                { return s.w, s.h }
func (s *stubSurface) SetPixel(x, y int16, c color.RGBA) {}
func (s *stubSurface) Display() error                     { return nil }

func (s *stubSurface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return nil
}
