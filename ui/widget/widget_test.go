package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOrderBackgroundBorderContent(t *testing.T) {
	d := newSpy(320, 240)
	l := NewLabel("hello")
	l.SetBackground(Navy)
	l.SetBorder(BorderBottom, White)
	l.SetBoundingBox(0, 0, 80, 16)

	l.Render(d)

	require.Equal(t, []string{"fillRect", "hline", "text"}, d.ops())
	assert.Equal(t, Navy, d.calls[0].c)
	assert.Equal(t, int16(15), d.calls[1].y)
}

func TestTransparentBackgroundDrawsNoFill(t *testing.T) {
	d := newSpy(320, 240)
	l := NewLabel("hello")
	l.SetBackground(Transparent)
	l.SetBoundingBox(0, 0, 80, 16)

	l.Render(d)

	assert.Zero(t, d.count("fillRect"))
	assert.Zero(t, d.count("fillRoundRect"))
	assert.Equal(t, []string{"hello"}, d.texts())
}

func TestFocusInvertsColors(t *testing.T) {
	d := newSpy(320, 240)
	l := NewLabel("x")
	l.SetBackground(Navy)
	l.SetBoundingBox(0, 0, 20, 10)
	l.SetFocus(true)

	l.Render(d)

	require.NotEmpty(t, d.calls)
	assert.Equal(t, Invert(Navy), d.calls[0].c)
	assert.Equal(t, Invert(White), d.calls[len(d.calls)-1].c)
}

func TestRoundedBackgroundUsesRoundRect(t *testing.T) {
	d := newSpy(320, 240)
	l := NewLabel("")
	l.SetBackground(Navy)
	l.SetBorder(BorderRounded, White)
	l.SetBoundingBox(0, 0, 40, 20)

	l.Render(d)

	assert.Equal(t, []string{"fillRoundRect", "drawRoundRect"}, d.ops())
}

func TestLeafRedrawChildWidgetIdentityOnly(t *testing.T) {
	d := newSpy(320, 240)
	a := NewLabel("a")
	b := NewLabel("b")
	a.SetBoundingBox(0, 0, 50, 10)
	b.SetBoundingBox(0, 0, 10, 10)

	assert.False(t, a.RedrawChildWidget(nil, d, RenderNone))
	assert.False(t, a.RedrawChildWidget(b, d, RenderNone))
	assert.Empty(t, d.calls)
	assert.True(t, a.RedrawChildWidget(a, d, RenderNone))
	assert.Equal(t, []string{"a"}, d.texts())
}

func TestContainsWidgetIsGeometric(t *testing.T) {
	outer := NewPanel(nil)
	outer.SetBoundingBox(0, 0, 100, 100)
	inner := NewLabel("x")
	inner.SetBoundingBox(10, 10, 20, 20)
	stray := NewLabel("y")
	stray.SetBoundingBox(90, 90, 20, 20)

	assert.True(t, outer.ContainsWidget(inner))
	assert.False(t, outer.ContainsWidget(stray))
	assert.False(t, outer.ContainsWidget(nil))
}

func TestButtonRender(t *testing.T) {
	d := newSpy(320, 240)
	b := NewButton("Refresh")
	b.SetBoundingBox(10, 4, 70, 24)

	b.Render(d)
	require.Equal(t, []string{"drawRoundRect", "text"}, d.ops())
	assert.Equal(t, int16(10+RoundedInnerMargin), d.calls[1].x)
	assert.Equal(t, White, d.calls[1].c)

	d.reset()
	b.SetFocus(true)
	b.Render(d)
	require.Equal(t, []string{"fillRoundRect", "text"}, d.ops())
	assert.Equal(t, Invert(White), d.calls[1].c)

	assert.Equal(t, int16(7*6+2*RoundedInnerMargin), b.ContentWidth(d))
	assert.Equal(t, int16(16+2*RoundedInnerMargin), b.ContentHeight(d))
}

func TestLabelNumbers(t *testing.T) {
	l := NewIntLabel(-42)
	assert.Equal(t, "-42", l.Text())
	l.SetFloat(3.14159, 2)
	assert.Equal(t, "3.14", l.Text())
	l.SetFloat(1, 12)
	assert.Equal(t, "1.0000000", l.Text())
}

func TestRenderFlagBits(t *testing.T) {
	assert.Equal(t, RenderFlags(1), RenderNoBackgrounds)
	all := []RenderFlags{RenderNoBackgrounds, RenderScrollbar, RenderContent, RenderSelected}
	var seen RenderFlags
	for _, f := range all {
		assert.Zero(t, seen&f, "flag %b overlaps", f)
		seen |= f
	}

	assert.False(t, RenderNone.Partial())
	assert.False(t, RenderNoBackgrounds.Partial())
	assert.True(t, (RenderContent | RenderNoBackgrounds).Partial())
	assert.False(t, (RenderSelected | RenderNoBackgrounds).backgrounds())
}
