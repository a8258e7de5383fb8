//go:build !tinygo

package hal

import "time"

const tickDur = time.Millisecond

// hostTime converts wall clock progress into 1ms ticks. Front ends call
// advance once per frame; ticks that the consumer does not drain are dropped.
type hostTime struct {
	ch  chan uint64
	seq uint64

	now  func() time.Time
	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) advance() {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.emit(1)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc %= tickDur
	t.emit(ticks)
}

// skip advances by a fixed amount regardless of the wall clock.
func (t *hostTime) skip(d time.Duration) {
	if n := uint64(d / tickDur); n > 0 {
		t.emit(n)
	}
}

// emit publishes only the newest sequence number; consumers care about "now", not each tick.
func (t *hostTime) emit(n uint64) {
	t.seq += n
	for {
		select {
		case t.ch <- t.seq:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}
