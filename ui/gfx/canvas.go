// Package gfx draws widget primitives onto a hal.Surface.
package gfx

import (
	"image/color"

	"wifidash/hal"
	"wifidash/ui/widget"

	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

type face struct {
	font   tinyfont.Fonter
	height int16
	offset int16 // baseline below the top of the line
}

var faces = [...]face{
	widget.FontSmall:  {font: &proggy.TinySZ8pt7b, height: 10, offset: 8},
	widget.FontMedium: {font: &freemono.Regular9pt7b, height: 14, offset: 11},
}

// Canvas implements widget.Display on top of a live panel surface.
type Canvas struct {
	s    hal.Surface
	w, h int16

	face   face
	fg, bg color.RGBA

	err error
}

var _ widget.Display = (*Canvas)(nil)

func New(s hal.Surface) *Canvas {
	w, h := s.Size()
	return &Canvas{s: s, w: w, h: h, face: faces[widget.FontSmall], fg: widget.White}
}

// Surface returns the underlying panel.
func (c *Canvas) Surface() hal.Surface { return c.s }

func (c *Canvas) Size() (int16, int16) { return c.w, c.h }

// FillRect clips to the panel. Some drivers reject rectangles that leave the screen.
func (c *Canvas) FillRect(x, y, w, h int16, col color.RGBA) {
	if widget.IsTransparent(col) {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(int32(x)+int32(w), int32(c.w)), min(int32(y)+int32(h), int32(c.h))
	if int32(x0) >= x1 || int32(y0) >= y1 {
		return
	}
	if err := c.s.FillRectangle(x0, y0, int16(x1-int32(x0)), int16(y1-int32(y0)), col); err != nil && c.err == nil {
		c.err = err
	}
}

// Err returns the first panel error since the previous call and clears it.
func (c *Canvas) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Canvas) DrawHLine(x, y, w int16, col color.RGBA) { c.FillRect(x, y, w, 1, col) }
func (c *Canvas) DrawVLine(x, y, h int16, col color.RGBA) { c.FillRect(x, y, 1, h, col) }

func (c *Canvas) DrawRect(x, y, w, h int16, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	c.DrawHLine(x, y, w, col)
	c.DrawHLine(x, y+h-1, w, col)
	c.DrawVLine(x, y, h, col)
	c.DrawVLine(x+w-1, y, h, col)
}

// SetPixel draws one pixel; off-panel coordinates are ignored.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) { c.setPixel(x, y, col) }

func (c *Canvas) setPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.s.SetPixel(x, y, col)
}

func clampRadius(w, h, r int16) int16 {
	return max(0, min(r, w/2, h/2))
}

// cornerInset is how far row i of a rounded rect of radius r starts from the edge.
func cornerInset(i, r int16) int16 {
	if i >= r {
		return 0
	}
	dy := int32(r - i)
	rr := int32(r) * int32(r)
	dx := int32(0)
	for (dx+1)*(dx+1)+dy*dy <= rr {
		dx++
	}
	return r - int16(dx)
}

func (c *Canvas) FillRoundRect(x, y, w, h, r int16, col color.RGBA) {
	if w <= 0 || h <= 0 || widget.IsTransparent(col) {
		return
	}
	r = clampRadius(w, h, r)
	if r == 0 {
		c.FillRect(x, y, w, h, col)
		return
	}
	c.FillRect(x, y+r, w, h-2*r, col)
	for i := int16(0); i < r; i++ {
		in := cornerInset(i, r)
		c.DrawHLine(x+in, y+i, w-2*in, col)
		c.DrawHLine(x+in, y+h-1-i, w-2*in, col)
	}
}

func (c *Canvas) DrawRoundRect(x, y, w, h, r int16, col color.RGBA) {
	if w <= 0 || h <= 0 || widget.IsTransparent(col) {
		return
	}
	r = clampRadius(w, h, r)
	if r == 0 {
		c.DrawRect(x, y, w, h, col)
		return
	}
	c.DrawHLine(x+r, y, w-2*r, col)
	c.DrawHLine(x+r, y+h-1, w-2*r, col)
	c.DrawVLine(x, y+r, h-2*r, col)
	c.DrawVLine(x+w-1, y+r, h-2*r, col)

	// Trace each row of the corner from its inset to the next row's inset
	// so steep parts of the arc stay connected.
	for i := int16(0); i < r; i++ {
		in := cornerInset(i, r)
		next := cornerInset(i+1, r)
		span := max(in-next, 1)
		for k := int16(0); k < span; k++ {
			lx, rx := x+in+k, x+w-1-in-k
			c.setPixel(lx, y+i, col)
			c.setPixel(rx, y+i, col)
			c.setPixel(lx, y+h-1-i, col)
			c.setPixel(rx, y+h-1-i, col)
		}
	}
}

func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int16, col color.RGBA) {
	tinydraw.FilledTriangle(c.clip(), x0, y0, x1, y1, x2, y2, col)
}

func (c *Canvas) DrawTriangle(x0, y0, x1, y1, x2, y2 int16, col color.RGBA) {
	tinydraw.Triangle(c.clip(), x0, y0, x1, y1, x2, y2, col)
}

func (c *Canvas) SetFont(f widget.Font) {
	if int(f) < len(faces) {
		c.face = faces[f]
	}
}

func (c *Canvas) SetTextColor(fg, bg color.RGBA) { c.fg, c.bg = fg, bg }

func (c *Canvas) DrawString(x, y int16, s string) int16 {
	w := c.TextWidth(s)
	if !widget.IsTransparent(c.bg) {
		c.FillRect(x, y, w, c.face.height, c.bg)
	}
	tinyfont.WriteLine(c.clip(), c.face.font, x, y+c.face.offset, s, c.fg)
	return w
}

func (c *Canvas) TextWidth(s string) int16 {
	_, outbox := tinyfont.LineWidth(c.face.font, s)
	return int16(outbox)
}

func (c *Canvas) FontHeight() int16 { return c.face.height }

// clip wraps the surface so per-pixel drawing never leaves the panel.
func (c *Canvas) clip() clipped { return clipped{c} }

type clipped struct{ c *Canvas }

func (d clipped) Size() (int16, int16)                { return d.c.w, d.c.h }
func (d clipped) SetPixel(x, y int16, col color.RGBA) { d.c.setPixel(x, y, col) }
func (d clipped) Display() error                      { return d.c.s.Display() }
