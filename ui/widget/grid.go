package widget

// Equal sizes a grid slot with an even share of the space left after fixed slots.
const Equal int16 = -1

// Axis is the direction a Grid lays its slots out in.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

type gridSlot struct {
	w    Widget
	size int16
}

// Grid lays out a fixed number of slots along one axis. A nil slot reserves its space.
type Grid struct {
	Base
	axis  Axis
	slots []gridSlot
}

// NewRows returns a grid of n vertically stacked slots.
func NewRows(n int) *Grid { return newGrid(Vertical, n) }

// NewCols returns a grid of n side by side slots.
func NewCols(n int) *Grid { return newGrid(Horizontal, n) }

func newGrid(axis Axis, n int) *Grid {
	if n < 0 {
		n = 0
	}
	g := &Grid{axis: axis, slots: make([]gridSlot, n)}
	for i := range g.slots {
		g.slots[i].size = Equal
	}
	g.Init(g)
	return g
}

func (g *Grid) Len() int { return len(g.slots) }

// Set places w in slot i with a pixel size or Equal. It reports false for a bad index.
func (g *Grid) Set(i int, w Widget, size int16) bool {
	if i < 0 || i >= len(g.slots) {
		return false
	}
	if size < 0 {
		size = Equal
	}
	g.slots[i] = gridSlot{w: w, size: size}
	g.CascadeBoundingBox()
	return true
}

// At returns the widget in slot i, or nil.
func (g *Grid) At(i int) Widget {
	if i < 0 || i >= len(g.slots) {
		return nil
	}
	return g.slots[i].w
}

// sizes resolves every slot to a pixel extent along the grid axis.
func (g *Grid) sizes(total int16) []int16 {
	out := make([]int16, len(g.slots))
	var fixed int16
	equal := 0
	for _, s := range g.slots {
		if s.size == Equal {
			equal++
			continue
		}
		fixed += s.size
	}
	rest := total - fixed
	if rest < 0 {
		rest = 0
	}
	seen := 0
	for i, s := range g.slots {
		if s.size != Equal {
			out[i] = s.size
			continue
		}
		seen++
		share := rest / int16(equal)
		if seen == equal {
			share = rest - share*int16(equal-1)
		}
		out[i] = share
	}
	return out
}

func (g *Grid) CascadeBoundingBox() {
	a := g.ContentArea()
	total, pos, end := a.W, a.X, a.X+a.W
	if g.axis == Vertical {
		total, pos, end = a.H, a.Y, a.Y+a.H
	}
	for i, sz := range g.sizes(total) {
		if pos+sz > end {
			sz = end - pos
		}
		if sz < 0 {
			sz = 0
		}
		if w := g.slots[i].w; w != nil {
			if g.axis == Vertical {
				w.SetBoundingBox(a.X, pos, a.W, sz)
			} else {
				w.SetBoundingBox(pos, a.Y, sz, a.H)
			}
		}
		pos += sz
	}
}

// SetFocus focuses the grid and every slot, so a row of labels inverts together.
func (g *Grid) SetFocus(focused bool) {
	g.Base.SetFocus(focused)
	for _, s := range g.slots {
		if s.w != nil {
			s.w.SetFocus(focused)
		}
	}
}

func (g *Grid) Render(d Display) {
	g.DrawBackground(d, RenderNone)
	g.DrawBorder(d)
	for _, s := range g.slots {
		if s.w != nil {
			s.w.Render(d)
		}
	}
}

func (g *Grid) ContentWidth(d Display) int16 {
	var w int16
	for _, s := range g.slots {
		cw := s.size
		if cw == Equal {
			cw = 0
			if s.w != nil {
				cw = s.w.ContentWidth(d)
			}
		}
		if g.axis == Horizontal {
			w += cw
		} else if cw > w {
			w = cw
		}
	}
	return g.AddBorderWidth(w)
}

func (g *Grid) ContentHeight(d Display) int16 {
	var h int16
	for _, s := range g.slots {
		ch := s.size
		if ch == Equal {
			ch = 0
			if s.w != nil {
				ch = s.w.ContentHeight(d)
			}
		}
		if g.axis == Vertical {
			h += ch
		} else if ch > h {
			h = ch
		}
	}
	return g.AddBorderHeight(h)
}

func (g *Grid) RedrawChildWidget(target Widget, d Display, flags RenderFlags) bool {
	if target == nil {
		return false
	}
	if target == Widget(g) {
		g.Render(d)
		return true
	}
	if !g.ContainsWidget(target) {
		return false
	}
	for _, s := range g.slots {
		if s.w == nil || !s.w.ContainsWidget(target) {
			continue
		}
		g.DrawBackgroundUnder(target, d, flags)
		if s.w.RedrawChildWidget(target, d, flags) {
			return true
		}
	}
	return false
}
