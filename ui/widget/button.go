package widget

import "image/color"

// Button is a rounded outline with a text caption. When focused it is drawn filled
// with inverted text. Border and background settings are ignored.
type Button struct {
	Base
	label string
	font  Font
	color color.RGBA
}

func NewButton(label string) *Button {
	b := &Button{label: label, font: FontMedium, color: White}
	b.Init(b)
	return b
}

func (b *Button) SetLabel(s string)     { b.label = s }
func (b *Button) Label() string         { return b.label }
func (b *Button) SetFont(f Font)        { b.font = f }
func (b *Button) SetColor(c color.RGBA) { b.color = c }

// SetBorder is a no-op; the button always draws its own outline.
func (b *Button) SetBorder(BorderFlags, color.RGBA) {}

func (b *Button) Render(d Display) {
	a := b.ContentArea()
	if a.Empty() {
		return
	}
	d.SetFont(b.font)
	if b.focused {
		d.FillRoundRect(a.X, a.Y, a.W, a.H, RoundedRadius, b.color)
		d.SetTextColor(Invert(b.color), Transparent)
	} else {
		d.DrawRoundRect(a.X, a.Y, a.W, a.H, RoundedRadius, b.color)
		d.SetTextColor(b.color, Transparent)
	}
	d.DrawString(a.X+RoundedInnerMargin, a.Y+RoundedInnerMargin, b.label)
}

func (b *Button) ContentWidth(d Display) int16 {
	d.SetFont(b.font)
	return d.TextWidth(b.label) + 2*RoundedInnerMargin
}

func (b *Button) ContentHeight(d Display) int16 {
	d.SetFont(b.font)
	return d.FontHeight() + 2*RoundedInnerMargin
}
