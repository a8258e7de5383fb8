package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelCascadesContentArea(t *testing.T) {
	child := NewLabel("c")
	p := NewPanel(child)
	p.SetPadding(2, 2, 1, 1)
	p.SetBoundingBox(0, 50, 320, 100)
	assert.Equal(t, Box{2, 51, 316, 98}, child.Bounds())

	p.SetBorder(BorderRect, White)
	assert.Equal(t, Box{5, 54, 310, 92}, child.Bounds())

	p.SetBoundingBox(0, 0, 10, 10)
	assert.Equal(t, Box{5, 4, 0, 2}, child.Bounds())
}

func TestPanelRenderDelegatesToChild(t *testing.T) {
	d := newSpy(320, 240)
	p := NewPanel(NewLabel("inside"))
	p.SetBackground(Black)
	p.SetBoundingBox(0, 0, 100, 20)

	p.Render(d)
	assert.Equal(t, []string{"fillRect", "text"}, d.ops())
}

func TestPanelPartialRedrawPaintsUnderTarget(t *testing.T) {
	d := newSpy(320, 240)
	child := NewLabel("inside")
	p := NewPanel(child)
	p.SetBackground(Navy)
	p.SetPadding(4, 4, 4, 4)
	p.SetBoundingBox(0, 0, 100, 40)

	require.True(t, p.RedrawChildWidget(child, d, RenderNone))
	require.GreaterOrEqual(t, len(d.calls), 2)
	assert.Equal(t, call{op: "fillRect", x: 4, y: 4, w: 92, h: 32, c: Navy}, d.calls[0])
	assert.Equal(t, []string{"inside"}, d.texts())
}

func TestPanelPartialRedrawRejectsForeignWidget(t *testing.T) {
	d := newSpy(320, 240)
	p := NewPanel(NewLabel("inside"))
	p.SetBoundingBox(0, 0, 100, 40)
	stranger := NewLabel("elsewhere")
	stranger.SetBoundingBox(200, 200, 10, 10)

	assert.False(t, p.RedrawChildWidget(stranger, d, RenderNone))
	assert.False(t, p.RedrawChildWidget(nil, d, RenderNone))
	assert.Empty(t, d.calls)

	empty := NewPanel(nil)
	empty.SetBoundingBox(0, 0, 300, 300)
	assert.False(t, empty.RedrawChildWidget(stranger, d, RenderNone))
}

func TestPanelRedrawSelf(t *testing.T) {
	d := newSpy(320, 240)
	p := NewPanel(NewLabel("inside"))
	p.SetBoundingBox(0, 0, 100, 40)
	assert.True(t, p.RedrawChildWidget(p, d, RenderNone))
	assert.Equal(t, []string{"inside"}, d.texts())
}

func TestGridEqualAndFixedSlots(t *testing.T) {
	a, b, c := NewButton("a"), NewButton("b"), NewLabel("c")
	g := NewCols(4)
	g.Set(0, a, 70)
	g.Set(1, b, 70)
	g.Set(2, c, Equal)
	g.Set(3, nil, Equal)
	g.SetBoundingBox(0, 0, 320, 30)

	assert.Equal(t, Box{0, 0, 70, 30}, a.Bounds())
	assert.Equal(t, Box{70, 0, 70, 30}, b.Bounds())
	assert.Equal(t, Box{140, 0, 90, 30}, c.Bounds())

	rows := NewRows(3)
	top, mid, bottom := NewLabel("t"), NewLabel("m"), NewLabel("b")
	rows.Set(0, top, 30)
	rows.Set(1, mid, Equal)
	rows.Set(2, bottom, 16)
	rows.SetBoundingBox(0, 0, 320, 240)
	assert.Equal(t, Box{0, 30, 320, 194}, mid.Bounds())
	assert.Equal(t, Box{0, 224, 320, 16}, bottom.Bounds())

	assert.False(t, rows.Set(5, top, 10))
}

func TestGridClipsOverflow(t *testing.T) {
	a, b := NewLabel("a"), NewLabel("b")
	g := NewCols(2)
	g.Set(0, a, 80)
	g.Set(1, b, 80)
	g.SetBoundingBox(0, 0, 100, 10)
	assert.Equal(t, Box{80, 0, 20, 10}, b.Bounds())
}

func TestGridFocusPropagates(t *testing.T) {
	a, b := NewLabel("a"), NewLabel("b")
	g := NewCols(2)
	g.Set(0, a, Equal)
	g.Set(1, b, Equal)
	g.SetFocus(true)
	assert.True(t, a.Focused())
	assert.True(t, b.Focused())
}

func TestGridPartialRedrawRoutesToSlot(t *testing.T) {
	d := newSpy(320, 240)
	a, b := NewLabel("a"), NewLabel("b")
	g := NewCols(2)
	g.Set(0, a, Equal)
	g.Set(1, b, Equal)
	g.SetBoundingBox(0, 0, 100, 10)

	require.True(t, g.RedrawChildWidget(b, d, RenderNone))
	assert.Equal(t, []string{"b"}, d.texts())
}
