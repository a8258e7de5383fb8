package widget

import "image/color"

// Transparent is the "no fill / inherit from container" sentinel.
// Any color with a zero alpha is treated the same way.
var Transparent = color.RGBA{}

var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Navy   = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	Gray   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// IsTransparent reports whether c is the transparent sentinel.
func IsTransparent(c color.RGBA) bool { return c.A == 0 }

// Invert returns the RGB complement of c, used for the focused color scheme.
func Invert(c color.RGBA) color.RGBA {
	if IsTransparent(c) {
		return c
	}
	return color.RGBA{R: ^c.R, G: ^c.G, B: ^c.B, A: c.A}
}

func focusColor(c color.RGBA, focused bool) color.RGBA {
	if focused {
		return Invert(c)
	}
	return c
}
