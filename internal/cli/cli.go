// Package cli is the command tree of the host binary.
package cli

import (
	"context"
	"fmt"
	"os"

	"wifidash/app"
	"wifidash/hal"
	"wifidash/internal/config"
	"wifidash/internal/logging"
	"wifidash/wifi"
	"wifidash/wifi/scanlog"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command.
type options struct {
	configFile string
	logLevel   string
}

func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(config.Options{File: o.configFile})
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logging.New(logging.Options{Level: cfg.Log.Level, Human: cfg.Log.Human, Writer: os.Stderr})
}

// New returns the root command. Without a subcommand it opens the window.
func New() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "wifidash",
		Short:         "Wifi scanner dashboard for a 320x240 panel.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), o)
		},
	}
	cmd.PersistentFlags().StringVarP(&o.configFile, "config", "c", "", "Config file (default ./wifidash.yaml or ~/.config/wifidash/wifidash.yaml).")
	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "Override log.level.")

	addCommands(cmd, o)
	return cmd
}

func addCommands(topLevel *cobra.Command, o *options) {
	addRun(topLevel, o)
	addHeadless(topLevel, o)
	addTUI(topLevel, o)
	addScans(topLevel, o)
	addConfig(topLevel, o)
	addVersion(topLevel)
}

// Execute runs the root command and exits non-zero on error.
func Execute(ctx context.Context) {
	if err := New().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "wifidash:", err)
		os.Exit(1)
	}
}

// newScanner builds the scan source named by the config.
func newScanner(ctx context.Context, cfg *config.Config, log zerolog.Logger) (wifi.Scanner, error) {
	switch cfg.Scan.Source {
	case config.SourceReplay:
		st, err := scanlog.Open(cfg.Scan.Dir)
		if err != nil {
			return nil, err
		}
		r, err := scanlog.NewReplayer(ctx, st)
		if err != nil {
			return nil, fmt.Errorf("replay %s: %w", st.Dir(), err)
		}
		return r, nil
	default:
		var sc wifi.Scanner = wifi.NewSimulated(cfg.Scan.Seed, cfg.Scan.Stations)
		if !cfg.Scan.Record {
			return sc, nil
		}
		st, err := scanlog.Open(cfg.Scan.Dir)
		if err != nil {
			return nil, err
		}
		return &scanlog.Recorder{Scanner: sc, Store: st, Source: config.SourceSimulated, Keep: cfg.Scan.Keep, Log: log}, nil
	}
}

// appFactory returns the constructor the host front ends call with their HAL.
// A nil log sends events to the HAL's log sink.
func appFactory(cfg *config.Config, sc wifi.Scanner, log *zerolog.Logger) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		l := log
		if l == nil {
			lvl, _ := logging.ParseLevel(cfg.Log.Level)
			hl := logging.ForHAL(h.Logger(), lvl)
			l = &hl
		}
		return app.NewWithConfig(h, app.Config{
			Scanner:      sc,
			Logger:       l,
			ItemHeight:   int16(cfg.UI.ItemHeight),
			ScanInterval: cfg.Scan.Interval,
		})
	}
}
