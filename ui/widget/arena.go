package widget

// Handle names a widget stored in an Arena. The zero Handle is a blank row.
type Handle struct {
	index uint32
	gen   uint32
}

// Nil is the blank spacer handle.
var Nil Handle

func (h Handle) IsNil() bool { return h.gen == 0 }

type arenaSlot struct {
	w   Widget
	gen uint32
}

// Arena owns row widgets and hands out generation-checked handles.
//
// Freeing a slot bumps its generation, so a handle kept past Free or Reset
// resolves to nothing instead of to whatever row reused the slot.
type Arena struct {
	slots []arenaSlot
	free  []uint32
	live  int
}

func NewArena() *Arena { return &Arena{} }

// Alloc stores w and returns its handle. A nil widget yields Nil.
func (a *Arena) Alloc(w Widget) Handle {
	if w == nil {
		return Nil
	}
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, arenaSlot{gen: 0})
	}
	s := &a.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.w = w
	a.live++
	return Handle{index: idx, gen: s.gen}
}

// Get resolves h. Stale or Nil handles report false.
func (a *Arena) Get(h Handle) (Widget, bool) {
	if a == nil || h.IsNil() || int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := a.slots[h.index]
	if s.gen != h.gen || s.w == nil {
		return nil, false
	}
	return s.w, true
}

// Free releases h. It reports false if h was already stale.
func (a *Arena) Free(h Handle) bool {
	if _, ok := a.Get(h); !ok {
		return false
	}
	s := &a.slots[h.index]
	s.w = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, h.index)
	a.live--
	return true
}

// Reset frees every slot at once.
func (a *Arena) Reset() {
	a.free = a.free[:0]
	for i := range a.slots {
		s := &a.slots[i]
		if s.w != nil {
			s.w = nil
			s.gen++
			if s.gen == 0 {
				s.gen = 1
			}
		}
		a.free = append(a.free, uint32(len(a.slots)-1-i))
	}
	a.live = 0
}

// Len is the number of live widgets.
func (a *Arena) Len() int { return a.live }

// Find returns the handle of w, if the arena holds it.
func (a *Arena) Find(w Widget) (Handle, bool) {
	if w == nil {
		return Nil, false
	}
	for i, s := range a.slots {
		if s.w == w {
			return Handle{index: uint32(i), gen: s.gen}, true
		}
	}
	return Nil, false
}
