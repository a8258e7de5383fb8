// Package widget implements a retained-mode widget tree for small displays.
//
// Widgets are positioned top-down: a parent assigns each child a bounding
// box and the child cascades its own content area to its children. Rendering
// always paints background, then border, then content. Partial updates walk
// the tree through RedrawChildWidget so only the region owned by one widget
// is repainted.
package widget

import "image/color"

// RenderFlags narrow what a render or partial redraw paints.
type RenderFlags uint32

const (
	RenderNone RenderFlags = 0

	// RenderNoBackgrounds suppresses every background fill.
	RenderNoBackgrounds RenderFlags = 1 << 0

	// RenderScrollbar repaints only a scroll list's scrollbar.
	RenderScrollbar RenderFlags = 1 << 1

	// RenderContent repaints only a scroll list's visible rows.
	RenderContent RenderFlags = 1 << 2

	// RenderSelected repaints only the rows whose selection state changed.
	RenderSelected RenderFlags = 1 << 3
)

const partialFlags = RenderScrollbar | RenderContent | RenderSelected

// Partial reports whether f asks for a component-level redraw instead of a full one.
func (f RenderFlags) Partial() bool { return f&partialFlags != 0 }

func (f RenderFlags) backgrounds() bool { return f&RenderNoBackgrounds == 0 }

// Renderer paints a widget.
type Renderer interface {
	Render(d Display)
}

// Cascader is implemented by containers that place children inside their content area.
type Cascader interface {
	CascadeBoundingBox()
}

// PartialRedrawer repaints target if it is this widget or one of its descendants.
type PartialRedrawer interface {
	RedrawChildWidget(target Widget, d Display, flags RenderFlags) bool
}

// Widget is a node of the tree.
type Widget interface {
	Renderer
	PartialRedrawer

	Bounds() Box
	SetBoundingBox(x, y, w, h int16)
	ContentArea() Box
	ContainsWidget(other Widget) bool
	SetFocus(focused bool)
	Focused() bool
	ContentWidth(d Display) int16
	ContentHeight(d Display) int16
}

// Border is the outline style of a widget.
type Border struct {
	Flags BorderFlags
	Color color.RGBA
}

// Base carries the state every widget shares: box, border, background,
// padding and focus. Concrete widgets embed it and call Init with
// themselves so that box changes reach their CascadeBoundingBox.
type Base struct {
	self Widget

	box     Box
	border  Border
	bg      color.RGBA
	pad     Padding
	focused bool
}

// Init binds b to the widget that embeds it.
func (b *Base) Init(self Widget) {
	b.self = self
}

func (b *Base) Bounds() Box { return b.box }

// SetBoundingBox stores the box and cascades the new content area to children.
func (b *Base) SetBoundingBox(x, y, w, h int16) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.box = Box{X: x, Y: y, W: w, H: h}
	b.cascade()
}

func (b *Base) cascade() {
	if c, ok := b.self.(Cascader); ok {
		c.CascadeBoundingBox()
	}
}

// SetBorder changes the border style. The content area moves, so children are re-cascaded.
func (b *Base) SetBorder(flags BorderFlags, c color.RGBA) {
	b.border = Border{Flags: flags, Color: c}
	b.cascade()
}

func (b *Base) Border() Border { return b.border }

// SetBackground sets the fill color; Transparent leaves the container's pixels alone.
func (b *Base) SetBackground(c color.RGBA) {
	b.bg = c
}

func (b *Base) Background() color.RGBA { return b.bg }

// SetPadding sets the inset applied inside the border.
func (b *Base) SetPadding(left, right, top, bottom int16) {
	b.pad = Padding{Left: left, Right: right, Top: top, Bottom: bottom}
	b.cascade()
}

func (b *Base) Padding() Padding { return b.pad }

func (b *Base) SetFocus(focused bool) { b.focused = focused }
func (b *Base) Focused() bool         { return b.focused }

// ContentArea is the box minus border margin and padding.
func (b *Base) ContentArea() Box {
	l, r, t, bt := b.border.Flags.margins()
	return b.box.
		inset(l, r, t, bt).
		inset(b.pad.Left, b.pad.Right, b.pad.Top, b.pad.Bottom)
}

// ContainsWidget is a purely geometric test against the current boxes.
func (b *Base) ContainsWidget(other Widget) bool {
	if other == nil {
		return false
	}
	return b.box.Contains(other.Bounds())
}

// RedrawChildWidget handles the leaf case: only the widget itself can match.
func (b *Base) RedrawChildWidget(target Widget, d Display, flags RenderFlags) bool {
	if target == nil || b.self == nil || target != b.self {
		return false
	}
	b.self.Render(d)
	return true
}

func (b *Base) ContentWidth(d Display) int16  { return b.AddBorderWidth(0) }
func (b *Base) ContentHeight(d Display) int16 { return b.AddBorderHeight(0) }

// AddBorderWidth grows an inner width by the horizontal margins and padding.
func (b *Base) AddBorderWidth(w int16) int16 {
	l, r, _, _ := b.border.Flags.margins()
	return w + l + r + b.pad.Left + b.pad.Right
}

// AddBorderHeight grows an inner height by the vertical margins and padding.
func (b *Base) AddBorderHeight(h int16) int16 {
	_, _, t, bt := b.border.Flags.margins()
	return h + t + bt + b.pad.Top + b.pad.Bottom
}

// DrawBackground fills the box unless the background is transparent.
func (b *Base) DrawBackground(d Display, flags RenderFlags) {
	if IsTransparent(b.bg) || !flags.backgrounds() || b.box.Empty() {
		return
	}
	c := focusColor(b.bg, b.focused)
	if b.border.Flags&BorderRounded != 0 {
		d.FillRoundRect(b.box.X, b.box.Y, b.box.W, b.box.H, RoundedRadius, c)
		return
	}
	d.FillRect(b.box.X, b.box.Y, b.box.W, b.box.H, c)
}

// DrawBorder outlines the flagged edges.
func (b *Base) DrawBorder(d Display) {
	f := b.border.Flags
	if f == BorderNone || IsTransparent(b.border.Color) || b.box.Empty() {
		return
	}
	c := focusColor(b.border.Color, b.focused)
	x, y, w, h := b.box.X, b.box.Y, b.box.W, b.box.H
	if f&BorderRounded != 0 {
		d.DrawRoundRect(x, y, w, h, RoundedRadius, c)
		return
	}
	if f&BorderLeft != 0 {
		d.DrawVLine(x, y, h, c)
	}
	if f&BorderRight != 0 {
		d.DrawVLine(x+w-1, y, h, c)
	}
	if f&BorderTop != 0 {
		d.DrawHLine(x, y, w, c)
	}
	if f&BorderBottom != 0 {
		d.DrawHLine(x, y+h-1, w, c)
	}
}

// DrawBackgroundUnder paints this widget's background over target's box
// so a shrunken target leaves no stale pixels behind.
func (b *Base) DrawBackgroundUnder(target Widget, d Display, flags RenderFlags) {
	if target == nil || IsTransparent(b.bg) || !flags.backgrounds() || flags.Partial() {
		return
	}
	r := target.Bounds()
	if r.Empty() {
		return
	}
	d.FillRect(r.X, r.Y, r.W, r.H, focusColor(b.bg, b.focused))
}
