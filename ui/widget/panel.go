package widget

// Panel holds a single child and gives it the whole content area.
type Panel struct {
	Base
	child Widget
}

func NewPanel(child Widget) *Panel {
	p := &Panel{}
	p.Init(p)
	p.SetChild(child)
	return p
}

// SetChild replaces the child and places it inside the current content area.
func (p *Panel) SetChild(w Widget) {
	p.child = w
	p.CascadeBoundingBox()
}

func (p *Panel) Child() Widget { return p.child }

func (p *Panel) CascadeBoundingBox() {
	if p.child == nil {
		return
	}
	a := p.ContentArea()
	p.child.SetBoundingBox(a.X, a.Y, a.W, a.H)
}

func (p *Panel) Render(d Display) {
	p.DrawBackground(d, RenderNone)
	p.DrawBorder(d)
	if p.child != nil {
		p.child.Render(d)
	}
}

func (p *Panel) ContentWidth(d Display) int16 {
	var w int16
	if p.child != nil {
		w = p.child.ContentWidth(d)
	}
	return p.AddBorderWidth(w)
}

func (p *Panel) ContentHeight(d Display) int16 {
	var h int16
	if p.child != nil {
		h = p.child.ContentHeight(d)
	}
	return p.AddBorderHeight(h)
}

func (p *Panel) RedrawChildWidget(target Widget, d Display, flags RenderFlags) bool {
	switch {
	case target == nil:
		return false
	case target == Widget(p):
		p.Render(d)
		return true
	case p.child != nil && p.ContainsWidget(target):
		p.DrawBackgroundUnder(target, d, flags)
		return p.child.RedrawChildWidget(target, d, flags)
	}
	return false
}
