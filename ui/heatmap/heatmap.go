// Package heatmap draws per-channel signal stacks: one column per channel,
// one block per signal heard on it, strongest at the bottom.
package heatmap

import (
	"image/color"
	"slices"
	"strconv"

	"wifidash/ui/widget"

	"github.com/tanema/gween/ease"
)

// RSSI range mapped onto block brightness, in dBm.
const (
	MaxRSSI = -25
	MinRSSI = -90
)

const (
	xAxisHeight    = 12
	maxBlockHeight = 16
	colPad         = 2
	blockPad       = 1
	minBrightness  = 0.3
)

// Orange is the default block color.
var Orange = color.RGBA{R: 255, G: 128, B: 0, A: 255}

// Heatmap is a leaf widget.
type Heatmap struct {
	widget.Base
	channels []int
	levels   [][]int
	color    color.RGBA
	curve    ease.TweenFunc
}

func New() *Heatmap {
	h := &Heatmap{color: Orange, curve: ease.OutQuad}
	h.Init(h)
	return h
}

// SetColor sets the color of a block at full strength.
func (h *Heatmap) SetColor(c color.RGBA) { h.color = c }

// SetEase sets the curve that shapes brightness. nil means linear.
func (h *Heatmap) SetEase(fn ease.TweenFunc) { h.curve = fn }

// DefineChannel appends a column. Columns appear in definition order.
func (h *Heatmap) DefineChannel(ch int) {
	if slices.Contains(h.channels, ch) {
		return
	}
	h.channels = append(h.channels, ch)
	h.levels = append(h.levels, nil)
}

// Channels returns the defined channels in column order.
func (h *Heatmap) Channels() []int { return h.channels }

// AddSignal records a level heard on ch, keeping each column sorted strongest
// first. Signals on undefined channels are ignored.
func (h *Heatmap) AddSignal(ch, rssi int) {
	i := slices.Index(h.channels, ch)
	if i < 0 {
		return
	}
	lv := h.levels[i]
	at := len(lv)
	for j, v := range lv {
		if v < rssi {
			at = j
			break
		}
	}
	h.levels[i] = slices.Insert(lv, at, rssi)
}

// Levels returns the signals recorded on ch.
func (h *Heatmap) Levels(ch int) []int {
	if i := slices.Index(h.channels, ch); i >= 0 {
		return h.levels[i]
	}
	return nil
}

// Clear drops every signal and keeps the channels.
func (h *Heatmap) Clear() {
	for i := range h.levels {
		h.levels[i] = h.levels[i][:0]
	}
}

// Brightness maps an RSSI to a scale factor in [0.3, 1].
func (h *Heatmap) Brightness(rssi int) float32 {
	eff := min(MaxRSSI, max(rssi, MinRSSI))
	f := float32(eff-MinRSSI) / float32(MaxRSSI-MinRSSI)
	if h.curve != nil {
		f = h.curve(f, 0, 1, 1)
	}
	f = min(max(f, 0), 1)
	return minBrightness + (1-minBrightness)*f
}

func scale(c color.RGBA, k float32) color.RGBA {
	return color.RGBA{R: uint8(float32(c.R) * k), G: uint8(float32(c.G) * k), B: uint8(float32(c.B) * k), A: 255}
}

// geometry is the column and block layout for the current content.
type geometry struct {
	colW, blockH int16
}

func (h *Heatmap) geometry(a widget.Box) geometry {
	n := int16(len(h.channels))
	g := geometry{colW: 1, blockH: maxBlockHeight - blockPad}
	if n == 0 {
		return g
	}
	g.colW = max(a.W/n-colPad, 1)

	most := 0
	for _, lv := range h.levels {
		most = max(most, len(lv))
	}
	if most > 0 {
		per := min(int16(maxBlockHeight), (a.H-xAxisHeight)/int16(most))
		g.blockH = max(per-blockPad, 1)
	}
	return g
}

func (h *Heatmap) Render(d widget.Display) {
	h.DrawBackground(d, widget.RenderNone)
	h.DrawBorder(d)

	a := h.ContentArea()
	if a.Empty() || len(h.channels) == 0 {
		return
	}
	g := h.geometry(a)
	axisY := a.Y + a.H - xAxisHeight
	d.DrawHLine(a.X, axisY, a.W, widget.White)

	d.SetFont(widget.FontSmall)
	d.SetTextColor(widget.White, widget.Transparent)

	x := a.X
	for i, ch := range h.channels {
		y := axisY - g.blockH - 1
		for _, rssi := range h.levels[i] {
			if y < a.Y {
				break
			}
			d.FillRect(x, y, g.colW, g.blockH, scale(h.color, h.Brightness(rssi)))
			y -= g.blockH + blockPad
		}

		label := strconv.Itoa(ch)
		d.DrawString(x+(g.colW-d.TextWidth(label))/2, axisY+2, label)
		x += g.colW + colPad
	}
}

func (h *Heatmap) ContentWidth(widget.Display) int16  { return h.ContentArea().W }
func (h *Heatmap) ContentHeight(widget.Display) int16 { return h.ContentArea().H }
