package dashboard

import (
	"context"

	"wifidash/hal"
	"wifidash/input"
	"wifidash/ui/widget"
)

// HandleButton reacts to one debounced button transition. Presses draw
// feedback; actions run on release.
func (db *Dashboard) HandleButton(ctx context.Context, ev input.Event) {
	db.log.Debug().Stringer("button", ev.Button).Stringer("state", ev.State).Msg("dashboard: button")
	pressed := ev.State == input.Pressed

	switch ev.Button {
	case hal.ButtonUp:
		db.scrollStep(pressed, true)
	case hal.ButtonDown:
		db.scrollStep(pressed, false)
	case hal.ButtonLeft:
		if !pressed {
			db.page(true)
		}
	case hal.ButtonRight:
		if !pressed {
			db.page(false)
		}
	case hal.ButtonPress:
		if !pressed {
			db.ToggleDetails()
			db.Render()
		}
	case hal.ButtonC:
		db.barButton(db.detailsBtn, pressed, func() { db.ToggleDetails() })
	case hal.ButtonB:
		// A failed scan keeps the old rows and reports on the status line.
		db.barButton(db.refreshBtn, pressed, func() { _ = db.Rescan(ctx) })
	case hal.ButtonA:
		db.barButton(db.heatmapBtn, pressed, db.RotateCarousel)
	}
}

// listActive reports whether the table is on screen and takes navigation.
func (db *Dashboard) listActive() bool {
	return db.view == ViewList && !db.showDetails
}

// scrollStep moves the window and the selection one row together. The caret
// is drawn pressed on press; on release only what changed is repainted.
func (db *Dashboard) scrollStep(pressed, up bool) {
	if !db.listActive() {
		return
	}
	d := db.screen.Display()
	if pressed {
		if up {
			db.list.RenderScrollUp(d, true)
		} else {
			db.list.RenderScrollDown(d, true)
		}
		return
	}

	var scrollOK, selectOK bool
	if up {
		scrollOK = db.list.ScrollUp()
		selectOK = db.list.SelectUp()
	} else {
		scrollOK = db.list.ScrollDown()
		selectOK = db.list.SelectDown()
	}

	var flags widget.RenderFlags
	if scrollOK {
		flags |= widget.RenderScrollbar | widget.RenderContent
	}
	if selectOK {
		flags |= widget.RenderSelected
	}
	if !scrollOK {
		if up {
			db.list.RenderScrollUp(d, false)
		} else {
			db.list.RenderScrollDown(d, false)
		}
	}
	if flags != widget.RenderNone {
		db.screen.RenderWidget(db.list, flags)
	}
}

// page scrolls a screenful and moves the selection to the new top row.
func (db *Dashboard) page(up bool) {
	if !db.listActive() {
		return
	}
	var ok bool
	if up {
		ok = db.list.PageUp()
	} else {
		ok = db.list.PageDown()
	}
	if !ok {
		return
	}
	db.list.SetSelection(db.list.Position())
	db.screen.RenderWidget(db.list, widget.RenderScrollbar|widget.RenderContent)
}

// barButton highlights b while held and runs action on release followed by
// a full repaint.
func (db *Dashboard) barButton(b *widget.Button, pressed bool, action func()) {
	if pressed {
		b.SetFocus(true)
		db.screen.RenderWidget(b, widget.RenderNone)
		return
	}
	b.SetFocus(false)
	db.screen.RenderWidget(b, widget.RenderNone)
	action()
	db.Render()
}
