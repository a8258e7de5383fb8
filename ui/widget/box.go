package widget

// Box is a screen rectangle, origin top-left.
type Box struct {
	X, Y, W, H int16
}

// Contains reports whether o lies entirely within b.
func (b Box) Contains(o Box) bool {
	return o.X >= b.X && o.Y >= b.Y &&
		int32(o.X)+int32(o.W) <= int32(b.X)+int32(b.W) &&
		int32(o.Y)+int32(o.H) <= int32(b.Y)+int32(b.H)
}

// Empty reports whether b covers no pixels.
func (b Box) Empty() bool { return b.W <= 0 || b.H <= 0 }

// inset shrinks b by the given edges. Width and height never go negative.
func (b Box) inset(left, right, top, bottom int16) Box {
	b.X += left
	b.Y += top
	b.W -= left + right
	b.H -= top + bottom
	if b.W < 0 {
		b.W = 0
	}
	if b.H < 0 {
		b.H = 0
	}
	return b
}

// BorderFlags selects which border edges are drawn.
type BorderFlags uint8

const (
	BorderNone   BorderFlags = 0
	BorderLeft   BorderFlags = 0x1
	BorderRight  BorderFlags = 0x2
	BorderTop    BorderFlags = 0x4
	BorderBottom BorderFlags = 0x8
	BorderRect               = BorderLeft | BorderRight | BorderTop | BorderBottom
	// BorderRounded draws a rounded outline; the edge flags are ignored when it is set.
	BorderRounded BorderFlags = 0x10
)

const (
	RoundedRadius      int16 = 4
	RoundedInnerMargin int16 = 5
	BorderInnerMargin  int16 = 3
)

// margins returns the inner margin each edge contributes to the content area.
func (f BorderFlags) margins() (left, right, top, bottom int16) {
	if f&BorderRounded != 0 {
		m := RoundedInnerMargin
		return m, m, m, m
	}
	if f&BorderLeft != 0 {
		left = BorderInnerMargin
	}
	if f&BorderRight != 0 {
		right = BorderInnerMargin
	}
	if f&BorderTop != 0 {
		top = BorderInnerMargin
	}
	if f&BorderBottom != 0 {
		bottom = BorderInnerMargin
	}
	return left, right, top, bottom
}

// Padding is the extra inset a widget applies inside its border.
type Padding struct {
	Left, Right, Top, Bottom int16
}
