// Package console is a text page widget rendered through a tinyterm terminal.
package console

import (
	"fmt"
	"image/color"

	"wifidash/ui/widget"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// PixelDisplay is a widget.Display that can also set single pixels, which the
// terminal needs for glyphs.
type PixelDisplay interface {
	widget.Display
	SetPixel(x, y int16, c color.RGBA)
}

const (
	fontHeight = 10
	fontOffset = 6
)

// Console shows the last lines that fit its content area.
type Console struct {
	widget.Base
	font  *tinyfont.Font
	lines []string
}

func New() *Console {
	c := &Console{font: &proggy.TinySZ8pt7b}
	c.Init(c)
	c.SetBackground(widget.Black)
	return c
}

func (c *Console) Lines() []string { return c.lines }

// SetLines replaces the content.
func (c *Console) SetLines(lines ...string) { c.lines = append(c.lines[:0], lines...) }

// Printf appends one line.
func (c *Console) Printf(format string, args ...any) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

func (c *Console) Clear() { c.lines = c.lines[:0] }

// visible returns the tail of the content that fits rows x cols cells,
// truncating long lines so the terminal never wraps or scrolls.
func (c *Console) visible(rows, cols int) []string {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	lines := c.lines
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		r := []rune(l)
		if len(r) > cols {
			r = r[:cols]
		}
		out[i] = string(r)
	}
	return out
}

func (c *Console) cellWidth() int16 {
	_, w := tinyfont.LineWidth(c.font, "0")
	return max(int16(w), 1)
}

func (c *Console) Render(d widget.Display) {
	c.DrawBackground(d, widget.RenderNone)
	c.DrawBorder(d)

	a := c.ContentArea()
	if a.Empty() {
		return
	}
	rows := int(a.H / fontHeight)
	// One spare column keeps the cursor from wrapping onto a new line.
	cols := int(a.W/c.cellWidth()) - 1
	lines := c.visible(rows, cols)

	pd, ok := d.(PixelDisplay)
	if !ok {
		d.SetFont(widget.FontSmall)
		d.SetTextColor(widget.White, c.Background())
		for i, l := range lines {
			d.DrawString(a.X, a.Y+int16(i)*fontHeight, l)
		}
		return
	}

	term := tinyterm.NewTerminal(&window{d: pd, area: a})
	term.Configure(&tinyterm.Config{Font: c.font, FontHeight: fontHeight, FontOffset: fontOffset})
	for i, l := range lines {
		if i > 0 {
			term.Write([]byte{'\n'})
		}
		term.Write([]byte(l))
	}
	term.Display()
}

func (c *Console) ContentWidth(widget.Display) int16  { return c.ContentArea().W }
func (c *Console) ContentHeight(widget.Display) int16 { return c.ContentArea().H }

// window maps terminal coordinates onto the content area and clips to it.
type window struct {
	d    PixelDisplay
	area widget.Box
}

func (w *window) Size() (int16, int16) { return w.area.W, w.area.H }

func (w *window) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= w.area.W || y >= w.area.H {
		return
	}
	w.d.SetPixel(w.area.X+x, w.area.Y+y, c)
}

func (w *window) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, w.area.W), min(y+height, w.area.H)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	w.d.FillRect(w.area.X+x0, w.area.Y+y0, x1-x0, y1-y0, c)
	return nil
}

func (w *window) Display() error                   { return nil }
func (w *window) SetScroll(int16)                  {}
func (w *window) SetRotation(drivers.Rotation) error { return nil }
