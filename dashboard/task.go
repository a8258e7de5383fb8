package dashboard

import (
	"context"

	"wifidash/input"
	"wifidash/kernel"
)

type task struct {
	ctx     context.Context
	db      *Dashboard
	in      kernel.Capability
	started bool
	next    uint64
}

// Task returns the kernel task that drives the dashboard: it scans and paints
// on its first step, then handles button events from in and rescans every
// ScanInterval ticks.
func (db *Dashboard) Task(ctx context.Context, in kernel.Capability) kernel.Task {
	return &task{ctx: ctx, db: db, in: in}
}

func (t *task) rescan(now uint64) {
	_ = t.db.Rescan(t.ctx)
	t.db.Render()
	if iv := t.db.opts.ScanInterval; iv > 0 {
		t.next = now + iv
	}
}

func (t *task) Step(ctx *kernel.Context) {
	now := ctx.NowTick()
	if !t.started {
		t.started = true
		t.db.Render()
		t.rescan(now)
	}

	for {
		msg, ok := ctx.TryRecv(t.in)
		if !ok {
			break
		}
		ev, ok := input.Decode(msg)
		if !ok {
			t.db.log.Warn().Uint16("kind", msg.Kind).Msg("dashboard: unexpected message")
			continue
		}
		t.db.HandleButton(t.ctx, ev)
	}
	if n := ctx.Lost(t.in); n > 0 {
		t.db.log.Warn().Int("lost", n).Msg("dashboard: button events lost")
	}

	if t.db.opts.ScanInterval > 0 {
		if now >= t.next {
			t.rescan(now)
		}
		ctx.SleepUntil(t.next)
	}
	ctx.BlockOn(t.in)
}
