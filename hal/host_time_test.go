//go:build !tinygo

package hal

import (
	"testing"
	"time"
)

func drainLatest(ch <-chan uint64) (uint64, bool) {
	var last uint64
	got := false
	for {
		select {
		case v := <-ch:
			last, got = v, true
		default:
			return last, got
		}
	}
}

func TestHostTimeAccumulates(t *testing.T) {
	now := time.Unix(100, 0)
	ht := newHostTime()
	ht.now = func() time.Time { return now }

	ht.advance()
	if v, ok := drainLatest(ht.Ticks()); !ok || v != 1 {
		t.Fatalf("expected first tick 1, got %d (ok=%v)", v, ok)
	}

	now = now.Add(500 * time.Microsecond)
	ht.advance()
	if _, ok := drainLatest(ht.Ticks()); ok {
		t.Fatal("expected no tick for half a millisecond")
	}

	now = now.Add(16 * time.Millisecond)
	ht.advance()
	if v, _ := drainLatest(ht.Ticks()); v != 17 {
		t.Fatalf("expected tick 17, got %d", v)
	}
}

func TestHostTimeSkip(t *testing.T) {
	ht := newHostTime()
	ht.skip(250 * time.Millisecond)
	if v, _ := drainLatest(ht.Ticks()); v != 250 {
		t.Fatalf("expected tick 250, got %d", v)
	}
}
