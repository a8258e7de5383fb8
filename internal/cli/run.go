package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wifidash/hal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func addRun(topLevel *cobra.Command, o *options) {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the dashboard in a desktop window.",
		Example: `
wifidash run
WIFIDASH_UI_SCALE=3 wifidash run
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWindow(cmd.Context(), o)
		},
	}
	topLevel.AddCommand(cmd)
}

func runWindow(ctx context.Context, o *options) error {
	cfg, err := o.load()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	sc, err := newScanner(ctx, cfg, log)
	if err != nil {
		return err
	}
	return hal.RunWindow(appFactory(cfg, sc, &log), cfg.UI.Scale)
}

func addHeadless(topLevel *cobra.Command, o *options) {
	var (
		hz       int
		frames   uint64
		snapshot string
		presses  []string
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run without a window, optionally scripting button presses.",
		Example: `
wifidash headless --frames 120 --snapshot out.png
wifidash headless --frames 300 --press DOWN@60 --press A@120+10 --snapshot heat.png
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			script, err := parsePresses(presses)
			if err != nil {
				return err
			}
			cfg, err := o.load()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			sc, err := newScanner(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			err = hal.RunHeadless(cmd.Context(), appFactory(cfg, sc, &log), hal.HeadlessConfig{
				Hz:       hz,
				Frames:   frames,
				Script:   script,
				Snapshot: snapshot,
				LogOut:   cmd.ErrOrStderr(),
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVar(&hz, "hz", 60, "Frames per second.")
	cmd.Flags().Uint64Var(&frames, "frames", 0, "Stop after N frames (0 = run until interrupted).")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "Write a PNG of the panel after the last frame.")
	cmd.Flags().StringArrayVar(&presses, "press", nil, "Hold BUTTON from FRAME, as BUTTON@FRAME[+HOLD]. Repeatable.")
	topLevel.AddCommand(cmd)
}

// parsePresses reads BUTTON@FRAME[+HOLD] entries. HOLD defaults to 5 frames,
// long enough for the debouncer.
func parsePresses(in []string) ([]hal.ScriptedPress, error) {
	out := make([]hal.ScriptedPress, 0, len(in))
	for _, s := range in {
		name, when, ok := strings.Cut(s, "@")
		if !ok {
			return nil, fmt.Errorf("press %q: want BUTTON@FRAME[+HOLD]", s)
		}
		b, ok := buttonByName(name)
		if !ok {
			return nil, fmt.Errorf("press %q: unknown button %q", s, name)
		}
		at, hold, hasHold := strings.Cut(when, "+")
		p := hal.ScriptedPress{Button: b, Hold: 5}
		var err error
		if p.At, err = strconv.ParseUint(at, 10, 64); err != nil {
			return nil, fmt.Errorf("press %q: frame: %w", s, err)
		}
		if hasHold {
			if p.Hold, err = strconv.ParseUint(hold, 10, 64); err != nil {
				return nil, fmt.Errorf("press %q: hold: %w", s, err)
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func buttonByName(name string) (hal.Button, bool) {
	for b := hal.Button(0); b < hal.ButtonCount; b++ {
		if strings.EqualFold(b.String(), name) {
			return b, true
		}
	}
	return 0, false
}

func addTUI(topLevel *cobra.Command, o *options) {
	var holdFrames, logLines int
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Show the dashboard in the terminal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			// Dashboard log events go to the footer of the terminal view;
			// stderr would tear the alternate screen.
			sc, err := newScanner(cmd.Context(), cfg, zerolog.Nop())
			if err != nil {
				return err
			}
			err = hal.RunTUI(cmd.Context(), appFactory(cfg, sc, nil), hal.TUIConfig{
				FPS:        cfg.UI.FPS,
				HoldFrames: holdFrames,
				LogLines:   logLines,
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVar(&holdFrames, "hold", 3, "Frames a key press keeps its button down.")
	cmd.Flags().IntVar(&logLines, "log-lines", 2, "Log lines shown under the panel.")
	topLevel.AddCommand(cmd)
}
