// Package app wires the HAL, the scheduler and the dashboard together.
package app

import (
	"context"
	"errors"
	"time"

	"wifidash/dashboard"
	"wifidash/hal"
	"wifidash/input"
	"wifidash/internal/buildinfo"
	"wifidash/internal/logging"
	"wifidash/kernel"
	"wifidash/ui/gfx"
	"wifidash/wifi"

	"github.com/rs/zerolog"
)

// maxStepsPerFrame bounds the work done by one step call.
const maxStepsPerFrame = 64

// Config selects the data source and tunes the dashboard.
type Config struct {
	// Scanner defaults to a simulated radio.
	Scanner wifi.Scanner
	// Logger defaults to the HAL log sink at info level.
	Logger *zerolog.Logger

	ItemHeight   int16
	ScanInterval time.Duration
}

var errNoDisplay = errors.New("app: no display surface")

type system struct {
	k      *kernel.Kernel
	ticks  <-chan uint64
	now    uint64
	canvas *gfx.Canvas
	log    zerolog.Logger

	fillFailed bool
}

// New starts the dashboard with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig builds the system and returns its step function. Each call
// catches up with the tick source and runs every ready task once or more.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(context.Background(), h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.step
}

// Run starts the dashboard and steps it forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString("wifidash: " + err.Error())
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
}

func newSystem(ctx context.Context, h hal.HAL, cfg Config) (*system, error) {
	log := logging.ForHAL(h.Logger(), zerolog.InfoLevel)
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	if cfg.Scanner == nil {
		cfg.Scanner = wifi.NewSimulated(uint64(time.Now().UnixNano()), 12)
	}

	d := h.Display()
	if d == nil || d.Surface() == nil {
		return nil, errNoDisplay
	}
	s := &system{k: kernel.New(), canvas: gfx.New(d.Surface()), log: log}
	if t := h.Time(); t != nil {
		s.ticks = t.Ticks()
	}

	db := dashboard.New(s.canvas, cfg.Scanner, dashboard.Options{
		ItemHeight:   cfg.ItemHeight,
		ScanInterval: uint64(cfg.ScanInterval / time.Millisecond),
		Log:          log,
	})

	buttons := s.k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	s.k.AddTask(input.NewPoller(h.GPIO(), buttons.Restrict(kernel.RightSend), log))
	s.k.AddTask(db.Task(ctx, buttons.Restrict(kernel.RightRecv)))

	s.k.SetPanicHandler(func(info kernel.PanicInfo) {
		log.Error().Uint8("task", uint8(info.TaskID)).Interface("panic", info.Value).Msg("app: task panic")
		showPanic(s.canvas, info)
	})

	log.Info().Str("build", buildinfo.String()).Dur("scan_interval", cfg.ScanInterval).Msg("app: started")
	return s, nil
}

func (s *system) step() error {
	if s.ticks != nil {
	drain:
		for {
			select {
			case t := <-s.ticks:
				s.now = t
			default:
				break drain
			}
		}
	}
	s.k.TickTo(s.now)
	if s.k.InPanicMode() {
		return nil
	}
	if s.k.RunReady(maxStepsPerFrame) > 0 {
		if err := s.canvas.Err(); err != nil && !s.fillFailed {
			s.fillFailed = true
			s.log.Warn().Err(err).Msg("app: panel fill failed")
		}
		return s.canvas.Surface().Display()
	}
	return nil
}
