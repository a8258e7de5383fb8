package widget

import (
	"image/color"
	"strconv"
)

// MaxFloatDigits caps the fractional digits a Label shows for a float.
const MaxFloatDigits = 7

// Label draws one line of text at the top-left of its content area.
type Label struct {
	Base
	text  string
	font  Font
	color color.RGBA
}

func NewLabel(text string) *Label {
	l := &Label{text: text, font: FontSmall, color: White}
	l.Init(l)
	return l
}

// NewIntLabel returns a label showing v in decimal.
func NewIntLabel(v int) *Label {
	return NewLabel(strconv.Itoa(v))
}

func (l *Label) Text() string     { return l.text }
func (l *Label) SetText(s string) { l.text = s }
func (l *Label) SetInt(v int)     { l.text = strconv.Itoa(v) }

// SetFloat formats v with at most MaxFloatDigits fractional digits.
func (l *Label) SetFloat(v float64, digits int) {
	if digits < 0 {
		digits = 0
	} else if digits > MaxFloatDigits {
		digits = MaxFloatDigits
	}
	l.text = strconv.FormatFloat(v, 'f', digits, 64)
}

func (l *Label) SetFont(f Font)        { l.font = f }
func (l *Label) SetColor(c color.RGBA) { l.color = c }

func (l *Label) Render(d Display) {
	l.DrawBackground(d, RenderNone)
	l.DrawBorder(d)

	a := l.ContentArea()
	if a.Empty() || l.text == "" {
		return
	}
	d.SetFont(l.font)
	d.SetTextColor(focusColor(l.color, l.focused), focusColor(l.bg, l.focused))
	d.DrawString(a.X, a.Y, l.text)
}

func (l *Label) ContentWidth(d Display) int16 {
	d.SetFont(l.font)
	return l.AddBorderWidth(d.TextWidth(l.text))
}

func (l *Label) ContentHeight(d Display) int16 {
	d.SetFont(l.font)
	return l.AddBorderHeight(d.FontHeight())
}
