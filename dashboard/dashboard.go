// Package dashboard is the wifi scanner screen: a button bar, a table of
// access points with a scrollbar, per-band congestion heatmaps, a details
// page and a status line.
package dashboard

import (
	"image/color"

	"wifidash/ui/console"
	"wifidash/ui/heatmap"
	"wifidash/ui/widget"
	"wifidash/wifi"

	"github.com/rs/zerolog"
)

// Column widths of the station table.
const (
	ssidWidth  int16 = 140
	chanWidth  int16 = 30
	rssiWidth  int16 = 30
	bssidWidth int16 = 80
)

// Row heights of the screen layout.
const (
	topRowHeight    int16 = 30
	headerRowHeight int16 = 16
	statusRowHeight int16 = 16
)

// MaxStatusLen caps the status line, in characters.
const MaxStatusLen = 80

var (
	blue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	lightGrey = color.RGBA{R: 208, G: 208, B: 208, A: 255}
)

// View is what the content row currently shows.
type View uint8

const (
	ViewList View = iota
	ViewHeat24
	ViewHeat50

	viewCount
)

func (v View) String() string {
	switch v {
	case ViewHeat24:
		return "heatmap-2.4"
	case ViewHeat50:
		return "heatmap-5"
	default:
		return "list"
	}
}

// Options tune a Dashboard.
type Options struct {
	ItemHeight int16
	// ScanInterval is the auto-rescan period in ticks (ms). Zero disables it.
	ScanInterval uint64
	Log          zerolog.Logger
}

// Dashboard owns the widget tree and the scan results shown in it.
type Dashboard struct {
	log     zerolog.Logger
	scanner wifi.Scanner
	opts    Options

	screen *widget.Screen
	layout *widget.Grid

	topRow     *widget.Grid
	detailsBtn *widget.Button
	refreshBtn *widget.Button
	heatmapBtn *widget.Button

	header    *widget.Grid
	list      *widget.ScrollList
	listPanel *widget.Panel
	heat24    *heatmap.Heatmap
	heat50    *heatmap.Heatmap
	details   *console.Console
	status    *widget.Label

	stations    []wifi.Station
	view        View
	showDetails bool
}

// New builds the widget tree on d. Nothing is drawn and no scan runs until
// Rescan and Render are called.
func New(d widget.Display, scanner wifi.Scanner, opts Options) *Dashboard {
	db := &Dashboard{log: opts.Log, scanner: scanner, opts: opts}

	db.topRow = widget.NewCols(4)
	db.topRow.SetBorder(widget.BorderBottom, blue)
	db.topRow.SetBackground(lightGrey)
	db.topRow.SetPadding(0, 0, 4, 2)
	db.detailsBtn = newBarButton("Details")
	db.refreshBtn = newBarButton("Refresh")
	db.heatmapBtn = newBarButton("Heatmap")
	db.topRow.Set(0, db.detailsBtn, 70)
	db.topRow.Set(1, db.refreshBtn, 70)
	db.topRow.Set(2, db.heatmapBtn, 75)
	db.topRow.Set(3, nil, widget.Equal)

	db.header = widget.NewCols(4)
	db.header.SetBackground(blue)
	db.header.SetBorder(widget.BorderBottom, widget.White)
	for i, h := range []struct {
		text  string
		width int16
		left  int16
	}{{"SSID", ssidWidth, 2}, {"Chan", chanWidth, 0}, {"RSSI", rssiWidth, 0}, {"BSSID", bssidWidth, 0}} {
		l := widget.NewLabel(h.text)
		l.SetBackground(blue)
		l.SetPadding(h.left, 0, 2, 0)
		db.header.Set(i, l, h.width)
	}

	db.list = widget.NewScrollList(widget.NewArena())
	if opts.ItemHeight > 0 {
		db.list.SetItemHeight(opts.ItemHeight)
	}
	db.listPanel = widget.NewPanel(db.list)
	db.listPanel.SetPadding(2, 2, 1, 1)

	db.heat24 = newBandHeatmap(wifi.Band24)
	db.heat50 = newBandHeatmap(wifi.Band50)

	db.details = console.New()
	db.details.SetPadding(4, 4, 2, 2)

	db.status = widget.NewLabel("")
	db.status.SetBackground(blue)
	db.status.SetPadding(2, 0, 3, 0)

	db.layout = widget.NewRows(4)
	db.layout.Set(0, db.topRow, topRowHeight)
	db.layout.Set(3, db.status, statusRowHeight)
	db.applyView()

	db.screen = widget.NewScreen(d)
	db.screen.SetWidget(db.layout)
	return db
}

func newBarButton(label string) *widget.Button {
	b := widget.NewButton(label)
	b.SetFont(widget.FontSmall)
	b.SetColor(blue)
	b.SetPadding(4, 4, 0, 0)
	return b
}

func newBandHeatmap(b wifi.Band) *heatmap.Heatmap {
	h := heatmap.New()
	h.SetPadding(4, 4, 4, 0)
	for _, ch := range wifi.Plan(b) {
		h.DefineChannel(ch)
	}
	return h
}

// Screen returns the screen the dashboard draws on.
func (db *Dashboard) Screen() *widget.Screen { return db.screen }

// List returns the station table.
func (db *Dashboard) List() *widget.ScrollList { return db.list }

// Heatmap returns the heatmap of a band, or nil.
func (db *Dashboard) Heatmap(b wifi.Band) *heatmap.Heatmap {
	switch b {
	case wifi.Band24:
		return db.heat24
	case wifi.Band50:
		return db.heat50
	default:
		return nil
	}
}

func (db *Dashboard) View() View         { return db.view }
func (db *Dashboard) DetailsShown() bool { return db.showDetails }
func (db *Dashboard) Status() string     { return db.status.Text() }

// Stations returns the last scan, strongest first, in table order.
func (db *Dashboard) Stations() []wifi.Station { return db.stations }

// Render repaints the whole screen.
func (db *Dashboard) Render() { db.screen.Render() }

// SetStatus replaces the status line, truncated to MaxStatusLen characters.
// With immediate set, only the status line is repainted.
func (db *Dashboard) SetStatus(s string, immediate bool) {
	if r := []rune(s); len(r) > MaxStatusLen {
		s = string(r[:MaxStatusLen])
	}
	db.status.SetText(s)
	if immediate {
		db.screen.RenderWidget(db.status, widget.RenderNone)
	}
}

// applyView installs the widgets for the current view in the header and content rows.
func (db *Dashboard) applyView() {
	if db.showDetails {
		db.layout.Set(1, nil, 0)
		db.layout.Set(2, db.details, widget.Equal)
		return
	}
	switch db.view {
	case ViewHeat24:
		db.layout.Set(1, nil, 0)
		db.layout.Set(2, db.heat24, widget.Equal)
	case ViewHeat50:
		db.layout.Set(1, nil, 0)
		db.layout.Set(2, db.heat50, widget.Equal)
	default:
		db.layout.Set(1, db.header, headerRowHeight)
		db.layout.Set(2, db.listPanel, widget.Equal)
	}
}

func (db *Dashboard) viewStatus() string {
	switch db.view {
	case ViewHeat24:
		return "2.4 GHz spectrum congestion"
	case ViewHeat50:
		return "5 GHz spectrum congestion"
	default:
		return scanSummary(len(db.stations))
	}
}

// RotateCarousel advances list -> 2.4 GHz heatmap -> 5 GHz heatmap -> list.
// It closes the details page.
func (db *Dashboard) RotateCarousel() {
	db.showDetails = false
	db.view = (db.view + 1) % viewCount
	db.applyView()
	db.SetStatus(db.viewStatus(), false)
	db.log.Debug().Stringer("view", db.view).Msg("dashboard: carousel")
}

// ToggleDetails shows or hides the details page for the selected station.
func (db *Dashboard) ToggleDetails() {
	db.showDetails = !db.showDetails
	if db.showDetails {
		db.fillDetails()
	}
	db.applyView()
	if db.showDetails {
		db.SetStatus("Details", false)
	} else {
		db.SetStatus(db.viewStatus(), false)
	}
}

// SelectedStation returns the station under the selection.
func (db *Dashboard) SelectedStation() (wifi.Station, bool) {
	i := db.list.Selection()
	if i < 0 || i >= len(db.stations) {
		return wifi.Station{}, false
	}
	return db.stations[i], true
}

func (db *Dashboard) fillDetails() {
	db.details.Clear()
	st, ok := db.SelectedStation()
	if !ok {
		db.details.Printf("No station selected.")
		return
	}
	width := "20 MHz"
	if st.Secondary != wifi.SecondaryNone {
		width = "40 MHz, secondary " + st.Secondary.String()
	}
	db.details.Printf("SSID:    %s", st.DisplaySSID())
	db.details.Printf("BSSID:   %s", st.BSSID)
	db.details.Printf("Channel: %d (%s)", st.Channel, st.Band())
	db.details.Printf("RSSI:    %d dBm", st.RSSI)
	db.details.Printf("Auth:    %s", st.Auth)
	db.details.Printf("PHY:     802.11%s", st.PHY)
	db.details.Printf("Width:   %s", width)
}
