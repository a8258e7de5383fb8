//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"
)

// ScriptedPress holds a button down for Hold frames starting at frame At.
type ScriptedPress struct {
	Button Button
	At     uint64
	Hold   uint64
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Frames uint64
	Script []ScriptedPress
	// Snapshot, when set, receives a PNG of the panel after the last frame.
	Snapshot string
	LogOut   io.Writer
}

// RunHeadless runs the dashboard without opening a window. Time advances by
// exactly one frame per step so runs are reproducible.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	frame := time.Second / time.Duration(cfg.Hz)
	if frame <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.LogOut == nil {
		cfg.LogOut = os.Stdout
	}

	h := newHost(cfg.LogOut)
	step := newApp(h)

	t := time.NewTicker(frame)
	defer t.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		var held [ButtonCount]bool
		for _, p := range cfg.Script {
			if p.Button < ButtonCount && n >= p.At && n < p.At+max(p.Hold, 1) {
				held[p.Button] = true
			}
		}
		for b, down := range held {
			h.buttons.set(Button(b), down)
		}
		h.t.skip(frame)
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		n++
		if cfg.Frames > 0 && n >= cfg.Frames {
			return writeSnapshot(h.fb, cfg.Snapshot)
		}
	}
}

func writeSnapshot(fb *hostFramebuffer, path string) error {
	if path == "" {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			r, g, b := fb.pixelAt(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, 0xFF
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
