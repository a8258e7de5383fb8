package widget

import "image/color"

// Font selects one of the display's built-in typefaces.
type Font uint8

const (
	FontSmall Font = iota
	FontMedium
)

// Display is the set of drawing primitives widgets render with.
//
// Every call draws straight onto the panel; there is no compositing.
type Display interface {
	Size() (w, h int16)

	FillRect(x, y, w, h int16, c color.RGBA)
	DrawRect(x, y, w, h int16, c color.RGBA)
	FillRoundRect(x, y, w, h, r int16, c color.RGBA)
	DrawRoundRect(x, y, w, h, r int16, c color.RGBA)
	DrawHLine(x, y, w int16, c color.RGBA)
	DrawVLine(x, y, h int16, c color.RGBA)
	FillTriangle(x0, y0, x1, y1, x2, y2 int16, c color.RGBA)
	DrawTriangle(x0, y0, x1, y1, x2, y2 int16, c color.RGBA)

	SetFont(f Font)
	// SetTextColor sets the text color; a transparent bg draws glyphs only.
	SetTextColor(fg, bg color.RGBA)
	// DrawString draws s with its top-left corner at (x, y) and returns the width drawn.
	DrawString(x, y int16, s string) int16
	TextWidth(s string) int16
	FontHeight() int16
}
