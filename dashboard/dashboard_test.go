package dashboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"

	"wifidash/hal"
	"wifidash/input"
	"wifidash/kernel"
	"wifidash/ui/widget"
	"wifidash/wifi"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panel is a 320x240 widget.Display that counts primitives and keeps strings.
type panel struct {
	ops     map[string]int
	strings []string
}

func newPanel() *panel { return &panel{ops: map[string]int{}} }

func (p *panel) reset() {
	p.ops = map[string]int{}
	p.strings = nil
}

func (p *panel) Size() (int16, int16)                                    { return 320, 240 }
func (p *panel) FillRect(x, y, w, h int16, c color.RGBA)                 { p.ops["fillRect"]++ }
func (p *panel) DrawRect(x, y, w, h int16, c color.RGBA)                 { p.ops["drawRect"]++ }
func (p *panel) FillRoundRect(x, y, w, h, r int16, c color.RGBA)         { p.ops["fillRoundRect"]++ }
func (p *panel) DrawRoundRect(x, y, w, h, r int16, c color.RGBA)         { p.ops["drawRoundRect"]++ }
func (p *panel) DrawHLine(x, y, w int16, c color.RGBA)                   { p.ops["hline"]++ }
func (p *panel) DrawVLine(x, y, h int16, c color.RGBA)                   { p.ops["vline"]++ }
func (p *panel) FillTriangle(x0, y0, x1, y1, x2, y2 int16, c color.RGBA) { p.ops["fillTriangle"]++ }
func (p *panel) DrawTriangle(x0, y0, x1, y1, x2, y2 int16, c color.RGBA) { p.ops["drawTriangle"]++ }
func (p *panel) SetFont(widget.Font)                                     {}
func (p *panel) SetTextColor(fg, bg color.RGBA)                          {}
func (p *panel) TextWidth(s string) int16                                { return int16(len(s) * 6) }
func (p *panel) FontHeight() int16                                       { return 10 }
func (p *panel) DrawString(x, y int16, s string) int16 {
	p.strings = append(p.strings, s)
	return p.TextWidth(s)
}

func (p *panel) drew(s string) bool {
	for _, got := range p.strings {
		if strings.Contains(got, s) {
			return true
		}
	}
	return false
}

func station(i, ch, rssi int) wifi.Station {
	return wifi.Station{
		SSID:    fmt.Sprintf("net-%d", i),
		BSSID:   wifi.BSSID{0x02, 0, 0, 0, 0, byte(i)},
		Channel: ch,
		RSSI:    rssi,
		PHY:     wifi.PHY11n,
	}
}

// fixed returns a scanner yielding copies of st, or err when set.
func fixed(st []wifi.Station, err *error) wifi.Scanner {
	return wifi.ScannerFunc(func(context.Context) ([]wifi.Station, error) {
		if err != nil && *err != nil {
			return nil, *err
		}
		return append([]wifi.Station(nil), st...), nil
	})
}

func newTestDashboard(t *testing.T, st []wifi.Station, err *error) (*Dashboard, *panel) {
	t.Helper()
	p := newPanel()
	db := New(p, fixed(st, err), Options{ItemHeight: 16, Log: zerolog.Nop()})
	return db, p
}

func TestRescanSortsAndFillsTable(t *testing.T) {
	st := []wifi.Station{station(1, 1, -80), station(2, 6, -40), station(3, 36, -60)}
	db, _ := newTestDashboard(t, st, nil)

	require.NoError(t, db.Rescan(context.Background()))

	require.Equal(t, 3, db.List().Count())
	assert.Equal(t, 0, db.List().Selection())
	assert.Equal(t, []int{-40, -60, -80}, []int{db.Stations()[0].RSSI, db.Stations()[1].RSSI, db.Stations()[2].RSSI})
	assert.Equal(t, "Scan complete. 3 networks.", db.Status())

	assert.NotEmpty(t, db.Heatmap(wifi.Band24).Levels(6))
	assert.Equal(t, []int{-60}, db.Heatmap(wifi.Band50).Levels(36))
	assert.Nil(t, db.Heatmap(wifi.BandUnknown))

	sel, ok := db.SelectedStation()
	require.True(t, ok)
	assert.Equal(t, "net-2", sel.SSID)
}

func TestRescanZebraRows(t *testing.T) {
	db, _ := newTestDashboard(t, []wifi.Station{station(1, 1, -50), station(2, 1, -60)}, nil)
	require.NoError(t, db.Rescan(context.Background()))

	even, ok := db.List().Entry(0)
	require.True(t, ok)
	odd, ok := db.List().Entry(1)
	require.True(t, ok)
	assert.Equal(t, widget.Black, even.(*widget.Grid).Background())
	assert.Equal(t, widget.Navy, odd.(*widget.Grid).Background())
}

func TestRescanInvalidatesOldRows(t *testing.T) {
	db, _ := newTestDashboard(t, []wifi.Station{station(1, 1, -50), station(2, 6, -60)}, nil)
	require.NoError(t, db.Rescan(context.Background()))
	old := db.List().HandleAt(0)
	_, ok := db.List().Arena().Get(old)
	require.True(t, ok)

	require.NoError(t, db.Rescan(context.Background()))
	_, ok = db.List().Arena().Get(old)
	assert.False(t, ok)
	assert.Equal(t, 2, db.List().Arena().Len())
}

func TestRescanFailureKeepsRows(t *testing.T) {
	var scanErr error
	db, _ := newTestDashboard(t, []wifi.Station{station(1, 1, -50)}, &scanErr)
	require.NoError(t, db.Rescan(context.Background()))

	scanErr = errors.New("radio off")
	err := db.Rescan(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, scanErr)
	assert.Equal(t, 1, db.List().Count())
	assert.True(t, strings.HasPrefix(db.Status(), "Scan failed"))
}

func TestEmptyScan(t *testing.T) {
	db, p := newTestDashboard(t, nil, nil)
	require.NoError(t, db.Rescan(context.Background()))
	db.Render()

	assert.Zero(t, db.List().Count())
	assert.Equal(t, "Scan complete. No networks found.", db.Status())
	_, ok := db.SelectedStation()
	assert.False(t, ok)
	assert.True(t, p.drew("SSID"))
}

func TestCarouselCycles(t *testing.T) {
	db, _ := newTestDashboard(t, []wifi.Station{station(1, 1, -50)}, nil)
	require.NoError(t, db.Rescan(context.Background()))

	db.RotateCarousel()
	assert.Equal(t, ViewHeat24, db.View())
	assert.Equal(t, "2.4 GHz spectrum congestion", db.Status())
	assert.Nil(t, db.layout.At(1))
	assert.Same(t, db.Heatmap(wifi.Band24), db.layout.At(2))

	db.RotateCarousel()
	assert.Equal(t, ViewHeat50, db.View())
	assert.Equal(t, "5 GHz spectrum congestion", db.Status())

	db.RotateCarousel()
	assert.Equal(t, ViewList, db.View())
	assert.Same(t, db.header, db.layout.At(1))
	assert.Same(t, db.listPanel, db.layout.At(2))
	assert.Equal(t, "Scan complete. 1 network.", db.Status())
}

func TestDetailsToggle(t *testing.T) {
	db, p := newTestDashboard(t, []wifi.Station{station(7, 11, -45)}, nil)
	require.NoError(t, db.Rescan(context.Background()))

	db.ToggleDetails()
	require.True(t, db.DetailsShown())
	assert.Contains(t, db.details.Lines(), "SSID:    net-7")
	assert.Contains(t, db.details.Lines(), "RSSI:    -45 dBm")

	p.reset()
	db.Render()
	assert.True(t, p.drew("net-7"))

	db.ToggleDetails()
	assert.False(t, db.DetailsShown())
	assert.Same(t, db.listPanel, db.layout.At(2))
}

func TestDownButtonActsOnRelease(t *testing.T) {
	st := make([]wifi.Station, 5)
	for i := range st {
		st[i] = station(i, 1, -40-i)
	}
	db, p := newTestDashboard(t, st, nil)
	ctx := context.Background()
	require.NoError(t, db.Rescan(ctx))
	db.Render()

	p.reset()
	db.HandleButton(ctx, input.Event{Button: hal.ButtonDown, State: input.Pressed})
	assert.Equal(t, 0, db.List().Selection())
	assert.Equal(t, 1, p.ops["fillTriangle"])

	db.HandleButton(ctx, input.Event{Button: hal.ButtonDown, State: input.Released})
	assert.Equal(t, 1, db.List().Selection())
	// Everything fits, so the window stays put and the caret is restored.
	assert.Equal(t, 0, db.List().Position())
	assert.Positive(t, p.ops["drawTriangle"])
}

func TestNavigationIgnoredOffList(t *testing.T) {
	db, _ := newTestDashboard(t, []wifi.Station{station(1, 1, -50), station(2, 1, -60)}, nil)
	ctx := context.Background()
	require.NoError(t, db.Rescan(ctx))
	db.RotateCarousel()

	db.HandleButton(ctx, input.Event{Button: hal.ButtonDown, State: input.Pressed})
	db.HandleButton(ctx, input.Event{Button: hal.ButtonDown, State: input.Released})
	assert.Equal(t, 0, db.List().Selection())
}

func TestBarButtonFeedback(t *testing.T) {
	db, _ := newTestDashboard(t, []wifi.Station{station(1, 1, -50)}, nil)
	ctx := context.Background()
	require.NoError(t, db.Rescan(ctx))

	db.HandleButton(ctx, input.Event{Button: hal.ButtonA, State: input.Pressed})
	assert.True(t, db.heatmapBtn.Focused())
	assert.Equal(t, ViewList, db.View())

	db.HandleButton(ctx, input.Event{Button: hal.ButtonA, State: input.Released})
	assert.False(t, db.heatmapBtn.Focused())
	assert.Equal(t, ViewHeat24, db.View())

	db.HandleButton(ctx, input.Event{Button: hal.ButtonC, State: input.Pressed})
	db.HandleButton(ctx, input.Event{Button: hal.ButtonC, State: input.Released})
	assert.True(t, db.DetailsShown())
}

func TestSetStatusTruncates(t *testing.T) {
	db, p := newTestDashboard(t, nil, nil)
	db.SetStatus(strings.Repeat("x", 100), true)
	assert.Len(t, db.Status(), MaxStatusLen)
	assert.True(t, p.drew("xxxx"))
}

func TestFitText(t *testing.T) {
	p := newPanel()
	assert.Equal(t, "short", fitText(p, widget.FontSmall, "short", 60))
	assert.Equal(t, "abcd~", fitText(p, widget.FontSmall, "abcdefghij", 30))
	assert.Equal(t, "", fitText(p, widget.FontSmall, "abcdefghij", 4))
}

func TestTaskHandlesButtonMessages(t *testing.T) {
	db, _ := newTestDashboard(t, []wifi.Station{station(1, 1, -50), station(2, 1, -60)}, nil)
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	_, ok := k.AddTask(db.Task(context.Background(), ep.Restrict(kernel.RightRecv)))
	require.True(t, ok)
	k.RunReady(4)
	require.Equal(t, 2, db.List().Count())

	sent := false
	k.AddTask(kernel.TaskFunc(func(ctx *kernel.Context) {
		if !sent {
			sent = true
			ctx.Send(ep, input.MsgButton, []byte{byte(hal.ButtonDown), byte(input.Pressed)})
			ctx.Send(ep, input.MsgButton, []byte{byte(hal.ButtonDown), byte(input.Released)})
		}
		ctx.BlockOnTick()
	}))
	k.RunReady(8)
	assert.Equal(t, 1, db.List().Selection())
}

func TestTaskWarnsAboutLostEvents(t *testing.T) {
	var buf bytes.Buffer
	sc := wifi.ScannerFunc(func(context.Context) ([]wifi.Station, error) { return nil, nil })
	db := New(newPanel(), sc, Options{Log: zerolog.New(&buf)})
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	sent := false
	_, ok := k.AddTask(kernel.TaskFunc(func(ctx *kernel.Context) {
		if !sent {
			sent = true
			for i := 0; i < 10; i++ {
				ctx.Send(ep, 0xFFFF, nil)
			}
		}
		ctx.BlockOnTick()
	}))
	require.True(t, ok)
	_, ok = k.AddTask(db.Task(context.Background(), ep.Restrict(kernel.RightRecv)))
	require.True(t, ok)
	k.RunReady(4)

	assert.Contains(t, buf.String(), "dashboard: button events lost")
	assert.Contains(t, buf.String(), `"lost":2`)
}

func TestTaskAutoRescan(t *testing.T) {
	scans := 0
	sc := wifi.ScannerFunc(func(context.Context) ([]wifi.Station, error) {
		scans++
		return []wifi.Station{station(1, 1, -50)}, nil
	})
	db := New(newPanel(), sc, Options{ScanInterval: 100, Log: zerolog.Nop()})
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(db.Task(context.Background(), ep))

	k.RunReady(4)
	require.Equal(t, 1, scans)

	k.TickTo(50)
	k.RunReady(4)
	assert.Equal(t, 1, scans)

	k.TickTo(100)
	k.RunReady(4)
	assert.Equal(t, 2, scans)
}
