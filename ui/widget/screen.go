package widget

import "image/color"

// Screen owns the display and the root widget.
type Screen struct {
	d    Display
	root Widget
	bg   color.RGBA
}

func NewScreen(d Display) *Screen {
	return &Screen{d: d, bg: Black}
}

func (s *Screen) Display() Display { return s.d }

// SetWidget installs w as the root and sizes it to the whole display.
func (s *Screen) SetWidget(w Widget) {
	s.root = w
	if w != nil {
		w.SetBoundingBox(0, 0, s.Width(), s.Height())
	}
}

func (s *Screen) Widget() Widget { return s.root }

func (s *Screen) SetBackground(c color.RGBA) { s.bg = c }

func (s *Screen) Width() int16 {
	w, _ := s.d.Size()
	return w
}

func (s *Screen) Height() int16 {
	_, h := s.d.Size()
	return h
}

// Render clears the display and paints the whole tree.
func (s *Screen) Render() {
	if !IsTransparent(s.bg) {
		w, h := s.d.Size()
		s.d.FillRect(0, 0, w, h, s.bg)
	}
	if s.root != nil {
		s.root.Render(s.d)
	}
}

// RenderWidget repaints only target. Unless flags ask for a component-level
// redraw, target's rectangle is first cleared to the screen background.
func (s *Screen) RenderWidget(target Widget, flags RenderFlags) bool {
	if target == nil || s.root == nil {
		return false
	}
	if !IsTransparent(s.bg) && flags.backgrounds() && !flags.Partial() {
		r := target.Bounds()
		if !r.Empty() {
			s.d.FillRect(r.X, r.Y, r.W, r.H, s.bg)
		}
	}
	return s.root.RedrawChildWidget(target, s.d, flags)
}
