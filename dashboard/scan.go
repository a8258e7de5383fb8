package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"wifidash/ui/widget"
	"wifidash/wifi"
)

func scanSummary(n int) string {
	switch n {
	case 0:
		return "Scan complete. No networks found."
	case 1:
		return "Scan complete. 1 network."
	default:
		return fmt.Sprintf("Scan complete. %d networks.", n)
	}
}

// Rescan replaces the table and heatmaps with a fresh scan. The previous rows
// are released in one step by resetting the row arena. On error the old
// results stay in place. The caller renders afterwards.
func (db *Dashboard) Rescan(ctx context.Context) error {
	db.SetStatus("Scanning...", true)

	st, err := db.scanner.Scan(ctx)
	if err != nil {
		db.log.Error().Err(err).Msg("dashboard: scan")
		db.SetStatus("Scan failed: "+err.Error(), false)
		return fmt.Errorf("rescan: %w", err)
	}
	wifi.SortByStrength(st)

	db.list.Clear()
	db.list.Arena().Reset()
	db.heat24.Clear()
	db.heat50.Clear()

	db.stations = st
	for i, s := range st {
		db.list.AddWidget(db.makeRow(i, s))
		wifi.Interference(s, db.addSignal)
	}
	db.list.SetSelection(0)

	if db.showDetails {
		db.fillDetails()
		db.SetStatus("Details", false)
	} else {
		db.SetStatus(db.viewStatus(), false)
	}
	db.log.Info().Int("stations", len(st)).Msg("dashboard: scan complete")
	return nil
}

func (db *Dashboard) addSignal(ch, level int) {
	if h := db.Heatmap(wifi.BandOf(ch)); h != nil {
		h.AddSignal(ch, level)
	}
}

// makeRow builds one zebra-striped table row.
func (db *Dashboard) makeRow(i int, s wifi.Station) *widget.Grid {
	d := db.screen.Display()

	ssid := widget.NewLabel(fitText(d, widget.FontMedium, s.DisplaySSID(), ssidWidth-2))
	ssid.SetFont(widget.FontMedium)

	ch := widget.NewIntLabel(s.Channel)
	ch.SetPadding(0, 0, 4, 0)

	rssi := widget.NewLabel(strconv.Itoa(s.RSSI))
	rssi.SetPadding(0, 0, 4, 0)

	bssid := widget.NewLabel(s.BSSID.String())
	bssid.SetPadding(0, 0, 4, 0)

	row := widget.NewCols(4)
	row.Set(0, ssid, ssidWidth)
	row.Set(1, ch, chanWidth)
	row.Set(2, rssi, rssiWidth)
	row.Set(3, bssid, bssidWidth)
	if i%2 == 1 {
		row.SetBackground(widget.Navy)
	} else {
		row.SetBackground(widget.Black)
	}
	return row
}

// fitText trims s until it fits in w pixels, marking the cut with "~".
func fitText(d widget.Display, f widget.Font, s string, w int16) string {
	d.SetFont(f)
	if d.TextWidth(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		if t := string(r) + "~"; d.TextWidth(t) <= w {
			return t
		}
	}
	return ""
}
