package widget

import (
	"fmt"
	"image/color"
)

type call struct {
	op         string
	x, y, w, h int16
	c          color.RGBA
	text       string
}

// spyDisplay records every primitive issued against it.
type spyDisplay struct {
	w, h  int16
	calls []call
	font  Font
	fg    color.RGBA
}

func newSpy(w, h int16) *spyDisplay { return &spyDisplay{w: w, h: h} }

func (s *spyDisplay) rec(c call) { s.calls = append(s.calls, c) }

func (s *spyDisplay) reset() { s.calls = nil }

func (s *spyDisplay) Size() (int16, int16) { return s.w, s.h }

func (s *spyDisplay) FillRect(x, y, w, h int16, c color.RGBA) {
	s.rec(call{op: "fillRect", x: x, y: y, w: w, h: h, c: c})
}

func (s *spyDisplay) DrawRect(x, y, w, h int16, c color.RGBA) {
	s.rec(call{op: "drawRect", x: x, y: y, w: w, h: h, c: c})
}

func (s *spyDisplay) FillRoundRect(x, y, w, h, r int16, c color.RGBA) {
	s.rec(call{op: "fillRoundRect", x: x, y: y, w: w, h: h, c: c})
}

func (s *spyDisplay) DrawRoundRect(x, y, w, h, r int16, c color.RGBA) {
	s.rec(call{op: "drawRoundRect", x: x, y: y, w: w, h: h, c: c})
}

func (s *spyDisplay) DrawHLine(x, y, w int16, c color.RGBA) {
	s.rec(call{op: "hline", x: x, y: y, w: w, c: c})
}

func (s *spyDisplay) DrawVLine(x, y, h int16, c color.RGBA) {
	s.rec(call{op: "vline", x: x, y: y, h: h, c: c})
}

func (s *spyDisplay) FillTriangle(x0, y0, x1, y1, x2, y2 int16, c color.RGBA) {
	s.rec(call{op: "fillTriangle", x: x0, y: y0, c: c})
}

func (s *spyDisplay) DrawTriangle(x0, y0, x1, y1, x2, y2 int16, c color.RGBA) {
	s.rec(call{op: "drawTriangle", x: x0, y: y0, c: c})
}

func (s *spyDisplay) SetFont(f Font) { s.font = f }

func (s *spyDisplay) SetTextColor(fg, bg color.RGBA) { s.fg = fg }

func (s *spyDisplay) DrawString(x, y int16, str string) int16 {
	s.rec(call{op: "text", x: x, y: y, c: s.fg, text: str})
	return s.TextWidth(str)
}

func (s *spyDisplay) TextWidth(str string) int16 { return int16(len(str)) * 6 }

func (s *spyDisplay) FontHeight() int16 {
	if s.font == FontMedium {
		return 16
	}
	return 8
}

func (s *spyDisplay) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

// first returns the index of the first call to op, or -1.
func (s *spyDisplay) first(op string) int {
	for i, c := range s.calls {
		if c.op == op {
			return i
		}
	}
	return -1
}

func (s *spyDisplay) ops() []string {
	out := make([]string, 0, len(s.calls))
	for _, c := range s.calls {
		out = append(out, c.op)
	}
	return out
}

func (s *spyDisplay) texts() []string {
	var out []string
	for _, c := range s.calls {
		if c.op == "text" {
			out = append(out, c.text)
		}
	}
	return out
}

func (c call) String() string {
	return fmt.Sprintf("%s(%d,%d,%d,%d)", c.op, c.x, c.y, c.w, c.h)
}
