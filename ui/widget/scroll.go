package widget

import "image/color"

const (
	ScrollbarWidth    int16 = 12
	ScrollbarMargin   int16 = 2
	DefaultItemHeight int16 = 16

	caretHeight int16 = 12
)

// visibleEnd returns the first index at or after top that no longer fits in height.
// Blank rows consume height like any other row.
func visibleEnd(count, top int, itemHeight, height int16) int {
	if top > count {
		top = count
	}
	idx := top
	remaining := int32(height)
	for idx < count && remaining > 0 {
		remaining -= int32(itemHeight)
		idx++
	}
	return idx
}

// ScrollList shows a window of uniform-height rows with a scrollbar on the right.
//
// Rows live in an Arena; the list only keeps their handles. Mutations mark
// the layout dirty and the next Render (or Layout) places the visible rows.
// The standard background is ignored; use SetContentBackground and
// SetScrollbarBackground instead.
type ScrollList struct {
	Base

	arena   *Arena
	entries []Handle

	itemHeight int16
	top        int
	last       int
	sel        int
	prevSel    int
	dirty      bool

	contentBG   color.RGBA
	scrollbarBG color.RGBA
}

// NewScrollList returns an empty list whose rows resolve through arena.
func NewScrollList(arena *Arena) *ScrollList {
	if arena == nil {
		arena = NewArena()
	}
	l := &ScrollList{
		arena:       arena,
		itemHeight:  DefaultItemHeight,
		sel:         -1,
		prevSel:     -1,
		scrollbarBG: Black,
		contentBG:   Transparent,
	}
	l.Init(l)
	return l
}

func (l *ScrollList) Arena() *Arena { return l.arena }

// Add appends a row handle. Nil adds a blank spacer row.
func (l *ScrollList) Add(h Handle) {
	l.entries = append(l.entries, h)
	l.dirty = true
}

// AddWidget stores w in the list's arena and appends it.
func (l *ScrollList) AddWidget(w Widget) Handle {
	h := l.arena.Alloc(w)
	l.Add(h)
	return h
}

func (l *ScrollList) AddSpacer() { l.Add(Nil) }

// Remove detaches the first entry with handle h. The widget stays in the arena.
func (l *ScrollList) Remove(h Handle) bool {
	for i, e := range l.entries {
		if e == h {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			l.shiftSelection(i)
			l.clampIndexes()
			l.dirty = true
			return true
		}
	}
	return false
}

// RemoveWidget detaches the first entry that resolves to w.
func (l *ScrollList) RemoveWidget(w Widget) bool {
	if w == nil {
		return false
	}
	for _, e := range l.entries {
		if got, ok := l.arena.Get(e); ok && got == w {
			return l.Remove(e)
		}
	}
	return false
}

// Clear detaches every entry and resets the window and selection.
func (l *ScrollList) Clear() {
	l.entries = l.entries[:0]
	l.top, l.last = 0, 0
	l.sel, l.prevSel = -1, -1
	l.dirty = true
}

// shiftSelection keeps the selection on the same row after entry i is removed.
func (l *ScrollList) shiftSelection(i int) {
	if i < l.sel {
		l.sel--
	}
	if i < l.prevSel {
		l.prevSel--
	} else if i == l.prevSel {
		l.prevSel = -1
	}
}

func (l *ScrollList) clampIndexes() {
	n := len(l.entries)
	if l.top > n-1 {
		l.top = max(0, n-1)
	}
	if l.last > n {
		l.last = n
	}
	if l.last < l.top {
		l.last = l.top
	}
	if l.sel >= n {
		l.sel = n - 1
	}
	if l.prevSel >= n {
		l.prevSel = -1
	}
}

func (l *ScrollList) Count() int { return len(l.entries) }

// Position is the index of the row at the top of the window.
func (l *ScrollList) Position() int { return l.top }

// BottomIdx is one past the last row placed by the most recent layout.
func (l *ScrollList) BottomIdx() int { return l.last }

func (l *ScrollList) Dirty() bool { return l.dirty }

// Entry resolves the row at idx. Blank and stale rows report false.
func (l *ScrollList) Entry(idx int) (Widget, bool) {
	if idx < 0 || idx >= len(l.entries) {
		return nil, false
	}
	return l.arena.Get(l.entries[idx])
}

// HandleAt returns the handle stored at idx.
func (l *ScrollList) HandleAt(idx int) Handle {
	if idx < 0 || idx >= len(l.entries) {
		return Nil
	}
	return l.entries[idx]
}

// ItemHeight is the height of every row.
func (l *ScrollList) ItemHeight() int16 { return l.itemHeight }

// SetItemHeight sets the row height. A negative value restores DefaultItemHeight.
func (l *ScrollList) SetItemHeight(h int16) {
	if h < 0 {
		h = DefaultItemHeight
	}
	l.itemHeight = h
	l.dirty = true
}

func (l *ScrollList) SetContentBackground(c color.RGBA)   { l.contentBG = c }
func (l *ScrollList) SetScrollbarBackground(c color.RGBA) { l.scrollbarBG = c }

// ScrollUp moves the window up one row.
func (l *ScrollList) ScrollUp() bool {
	if l.top <= 0 {
		return false
	}
	l.top--
	l.dirty = true
	return true
}

// ScrollDown moves the window down one row, stopping once the last page is fully shown.
func (l *ScrollList) ScrollDown() bool {
	n := len(l.entries)
	if l.top >= n-1 {
		return false
	}
	if visibleEnd(n, l.top, l.itemHeight, l.rowArea().H) >= n {
		return false
	}
	l.top++
	l.dirty = true
	return true
}

// ScrollTo puts idx at the top of the window.
func (l *ScrollList) ScrollTo(idx int) bool {
	if idx < 0 || idx >= len(l.entries) {
		return false
	}
	l.top = idx
	l.dirty = true
	return true
}

// PageUp scrolls up by one window height. It reports whether anything moved.
func (l *ScrollList) PageUp() bool {
	moved := false
	for i := 0; i < l.pageRows(); i++ {
		if !l.ScrollUp() {
			break
		}
		moved = true
	}
	return moved
}

// PageDown scrolls down by one window height.
func (l *ScrollList) PageDown() bool {
	moved := false
	for i := 0; i < l.pageRows(); i++ {
		if !l.ScrollDown() {
			break
		}
		moved = true
	}
	return moved
}

func (l *ScrollList) pageRows() int {
	if l.itemHeight <= 0 {
		return 1
	}
	return max(1, int(l.rowArea().H/l.itemHeight))
}

// Selection is the selected index, or -1 when nothing is selected.
func (l *ScrollList) Selection() int { return l.sel }

// Selected returns the handle of the selected row.
func (l *ScrollList) Selected() (Handle, bool) {
	if l.sel < 0 || l.sel >= len(l.entries) {
		return Nil, false
	}
	return l.entries[l.sel], true
}

// SetSelection selects idx. It reports whether the selection changed.
func (l *ScrollList) SetSelection(idx int) bool {
	if idx < 0 || idx >= len(l.entries) || idx == l.sel {
		return false
	}
	l.prevSel = l.sel
	l.sel = idx
	return true
}

// SelectUp moves the selection one row up, clamped to the first row.
func (l *ScrollList) SelectUp() bool {
	if len(l.entries) == 0 {
		return false
	}
	if l.sel < 0 {
		return l.SetSelection(0)
	}
	return l.SetSelection(l.sel - 1)
}

// SelectDown moves the selection one row down, clamped to the last row.
func (l *ScrollList) SelectDown() bool {
	if len(l.entries) == 0 {
		return false
	}
	if l.sel < 0 {
		return l.SetSelection(0)
	}
	return l.SetSelection(l.sel + 1)
}

// CascadeBoundingBox defers placement to the next render.
func (l *ScrollList) CascadeBoundingBox() {
	l.dirty = true
}

// rowArea is where rows go: the content area with the right edge given over to the scrollbar.
func (l *ScrollList) rowArea() Box {
	a := l.ContentArea()
	w := l.box.W
	switch {
	case l.border.Flags&BorderRounded != 0:
		w -= RoundedInnerMargin
	case l.border.Flags&BorderLeft != 0:
		w -= BorderInnerMargin
	}
	w -= l.pad.Left + l.pad.Right
	w -= ScrollbarWidth + ScrollbarMargin
	if w < 0 {
		w = 0
	}
	a.W = w
	return a
}

// Layout places the visible rows and recomputes BottomIdx. It needs no display.
func (l *ScrollList) Layout() {
	a := l.rowArea()
	n := len(l.entries)
	l.last = visibleEnd(n, l.top, l.itemHeight, a.H)
	y := a.Y
	remaining := a.H
	for i := l.top; i < l.last; i++ {
		if w, ok := l.arena.Get(l.entries[i]); ok {
			w.SetBoundingBox(a.X, y, a.W, min(l.itemHeight, remaining))
		}
		y += l.itemHeight
		remaining -= l.itemHeight
	}
	l.dirty = false
}

func (l *ScrollList) layoutIfDirty() {
	if l.dirty {
		l.Layout()
	}
}

// Render paints the content background, the scrollbar, then every visible row.
func (l *ScrollList) Render(d Display) { l.RenderWith(d, RenderNone) }

func (l *ScrollList) RenderWith(d Display, flags RenderFlags) {
	l.layoutIfDirty()
	l.fillContent(d, flags)
	l.renderScrollbar(d)
	l.renderRows(d)
}

func (l *ScrollList) fillContent(d Display, flags RenderFlags) {
	if flags.backgrounds() && !IsTransparent(l.contentBG) {
		d.FillRect(l.box.X, l.box.Y, max(0, l.box.W-ScrollbarWidth), l.box.H, l.contentBG)
	}
}

func (l *ScrollList) renderRows(d Display) {
	for i := l.top; i < l.last; i++ {
		l.renderRow(d, i)
	}
	l.prevSel = l.sel
}

func (l *ScrollList) renderRow(d Display, idx int) {
	w, ok := l.arena.Get(l.entries[idx])
	if !ok {
		return
	}
	w.SetFocus(idx == l.sel)
	w.Render(d)
}

// repaintRow fills the content background under row idx and renders it.
func (l *ScrollList) repaintRow(d Display, idx int, flags RenderFlags) bool {
	if idx < l.top || idx >= l.last {
		return false
	}
	w, ok := l.arena.Get(l.entries[idx])
	if !ok {
		return false
	}
	if flags.backgrounds() && !IsTransparent(l.contentBG) {
		r := w.Bounds()
		d.FillRect(r.X, r.Y, r.W, r.H, l.contentBG)
	}
	l.renderRow(d, idx)
	return true
}

func (l *ScrollList) renderSelection(d Display, flags RenderFlags) {
	if l.prevSel != l.sel {
		l.repaintRow(d, l.prevSel, flags)
	}
	l.repaintRow(d, l.sel, flags)
	l.prevSel = l.sel
}

// RedrawChildWidget repaints the list itself, optionally only some of its
// parts, or the visible row that geometrically contains target.
//
// A row that scrolled out of view may share its old rectangle with the row
// now shown there; the visible row is re-rendered whole in that case.
func (l *ScrollList) RedrawChildWidget(target Widget, d Display, flags RenderFlags) bool {
	if target == nil {
		return false
	}
	if target == Widget(l) {
		l.layoutIfDirty()
		if !flags.Partial() {
			l.RenderWith(d, flags)
			return true
		}
		if flags&RenderContent != 0 {
			l.fillContent(d, flags)
		}
		if flags&RenderScrollbar != 0 {
			l.renderScrollbar(d)
		}
		if flags&RenderContent != 0 {
			l.renderRows(d)
		} else if flags&RenderSelected != 0 {
			l.renderSelection(d, flags)
		}
		return true
	}
	if !l.ContainsWidget(target) {
		return false
	}
	l.layoutIfDirty()
	for i := l.top; i < l.last; i++ {
		w, ok := l.arena.Get(l.entries[i])
		if !ok || !w.ContainsWidget(target) {
			continue
		}
		return l.repaintRow(d, i, flags)
	}
	return false
}

// ContentWidth flexes to whatever the container gives.
func (l *ScrollList) ContentWidth(Display) int16 { return l.box.W }

func (l *ScrollList) ContentHeight(Display) int16 { return l.box.H }
