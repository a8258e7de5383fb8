// Package input turns raw button levels into debounced press and release events.
package input

// DefaultStableReads is how many identical samples a level needs before it is accepted.
const DefaultStableReads = 3

// Debouncer filters contact bounce on one button.
type Debouncer struct {
	stable  uint8
	pressed bool
	cand    bool
	count   uint8
}

func NewDebouncer(stableReads uint8) Debouncer {
	if stableReads == 0 {
		stableReads = 1
	}
	return Debouncer{stable: stableReads}
}

// Pressed reports the accepted state.
func (d *Debouncer) Pressed() bool { return d.pressed }

// Update feeds one sample and reports whether the accepted state changed.
func (d *Debouncer) Update(pressed bool) bool {
	if d.stable == 0 {
		d.stable = DefaultStableReads
	}
	if pressed == d.pressed {
		d.count = 0
		return false
	}
	if pressed != d.cand || d.count == 0 {
		d.cand = pressed
		d.count = 1
	} else {
		d.count++
	}
	if d.count < d.stable {
		return false
	}
	d.pressed = pressed
	d.count = 0
	return true
}
