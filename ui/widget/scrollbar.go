package widget

import "image/color"

func (l *ScrollList) barColor() color.RGBA {
	c := l.border.Color
	if IsTransparent(c) {
		c = White
	}
	return focusColor(c, l.focused)
}

// IndicatorOffset is the position of the scroll indicator below the up caret.
func (l *ScrollList) IndicatorOffset() int16 {
	track := l.box.H - 3*caretHeight
	if track <= 0 {
		return 0
	}
	visible := len(l.entries)
	if l.itemHeight > 0 {
		visible = int(l.box.H / l.itemHeight)
	}
	span := max(1, len(l.entries)-visible)
	frac := float32(l.top) / float32(span)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return int16(frac * float32(track))
}

func (l *ScrollList) renderScrollbar(d Display) {
	b := l.box
	if b.Empty() {
		return
	}
	sx := b.X + b.W - ScrollbarWidth
	if !IsTransparent(l.scrollbarBG) {
		d.FillRect(sx+1, b.Y+caretHeight+1, ScrollbarWidth-2, b.H-2*caretHeight-1,
			focusColor(l.scrollbarBG, l.focused))
	}

	l.DrawBorder(d)

	c := l.barColor()
	d.DrawVLine(sx, b.Y, b.H, c)
	d.DrawVLine(b.X+b.W-1, b.Y, b.H, c)
	d.DrawHLine(sx, b.Y, ScrollbarWidth, c)
	d.DrawHLine(sx, b.Y+caretHeight, ScrollbarWidth, c)
	d.DrawHLine(sx, b.Y+b.H-1-caretHeight, ScrollbarWidth, c)
	d.DrawHLine(sx, b.Y+b.H-1, ScrollbarWidth, c)

	l.RenderScrollUp(d, false)
	l.RenderScrollDown(d, false)

	d.FillRect(sx, b.Y+caretHeight+l.IndicatorOffset(), ScrollbarWidth, caretHeight, c)
}

// RenderScrollUp draws the up caret, filled while the button is held.
func (l *ScrollList) RenderScrollUp(d Display, pressed bool) {
	b := l.box
	sx := b.X + b.W - ScrollbarWidth
	if !IsTransparent(l.scrollbarBG) {
		d.FillRect(sx+1, b.Y+1, ScrollbarWidth-2, caretHeight-1, focusColor(l.scrollbarBG, l.focused))
	}
	x0, y0 := sx+2, b.Y+caretHeight-2
	x1, y1 := b.X+b.W-3, b.Y+caretHeight-2
	x2, y2 := sx+ScrollbarWidth/2, b.Y+2
	if pressed {
		d.FillTriangle(x0, y0, x1, y1, x2, y2, l.barColor())
	} else {
		d.DrawTriangle(x0, y0, x1, y1, x2, y2, l.barColor())
	}
}

// RenderScrollDown draws the down caret, filled while the button is held.
func (l *ScrollList) RenderScrollDown(d Display, pressed bool) {
	b := l.box
	sx := b.X + b.W - ScrollbarWidth
	if !IsTransparent(l.scrollbarBG) {
		d.FillRect(sx+1, b.Y+b.H-caretHeight, ScrollbarWidth-2, caretHeight-1, focusColor(l.scrollbarBG, l.focused))
	}
	x0, y0 := sx+2, b.Y+b.H-caretHeight+2
	x1, y1 := b.X+b.W-3, b.Y+b.H-caretHeight+2
	x2, y2 := sx+ScrollbarWidth/2, b.Y+b.H-3
	if pressed {
		d.FillTriangle(x0, y0, x1, y1, x2, y2, l.barColor())
	} else {
		d.DrawTriangle(x0, y0, x1, y1, x2, y2, l.barColor())
	}
}
