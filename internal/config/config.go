// Package config loads the host configuration from defaults, an optional
// wifidash.yaml and WIFIDASH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. WIFIDASH_SCAN_INTERVAL.
const EnvPrefix = "WIFIDASH"

// Scan sources.
const (
	SourceSimulated = "simulated"
	SourceReplay    = "replay"
)

type Config struct {
	Log  Log  `mapstructure:"log" yaml:"log"`
	Scan Scan `mapstructure:"scan" yaml:"scan"`
	UI   UI   `mapstructure:"ui" yaml:"ui"`
}

type Log struct {
	Level string `mapstructure:"level" yaml:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Human bool   `mapstructure:"human" yaml:"human"`
}

type Scan struct {
	Source   string        `mapstructure:"source" yaml:"source" validate:"oneof=simulated replay"`
	Interval time.Duration `mapstructure:"interval" yaml:"interval" validate:"gte=0"`
	Seed     uint64        `mapstructure:"seed" yaml:"seed"`
	Stations int           `mapstructure:"stations" yaml:"stations" validate:"min=1,max=64"`

	// Record stores every simulated scan in the scan log.
	Record bool `mapstructure:"record" yaml:"record"`

	// Keep bounds the scan log; zero keeps everything.
	Keep int    `mapstructure:"keep" yaml:"keep" validate:"gte=0"`
	Dir  string `mapstructure:"dir" yaml:"dir" validate:"required"`
}

type UI struct {
	ItemHeight int `mapstructure:"item_height" yaml:"item_height" validate:"min=8,max=64"`
	Scale      int `mapstructure:"scale" yaml:"scale" validate:"min=1,max=8"`
	FPS        int `mapstructure:"fps" yaml:"fps" validate:"min=1,max=120"`
}

var defaults = map[string]any{
	"log.level":      "info",
	"log.human":      true,
	"scan.source":    SourceSimulated,
	"scan.interval":  "30s",
	"scan.seed":      1,
	"scan.stations":  12,
	"scan.record":    false,
	"scan.keep":      100,
	"scan.dir":       "~/.wifidash",
	"ui.item_height": 16,
	"ui.scale":       2,
	"ui.fps":         20,
}

// Options locate the config file.
type Options struct {
	// File is an explicit config path. When empty, SearchPaths are tried.
	File string
	// SearchPaths default to "." and ~/.config/wifidash.
	SearchPaths []string
}

// Load reads and validates the configuration. A missing config file is not an error.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName("wifidash")
		v.SetConfigType("yaml")
		paths := opts.SearchPaths
		if paths == nil {
			paths = []string{".", "~/.config/wifidash"}
		}
		for _, p := range paths {
			if dir, err := homedir.Expand(p); err == nil {
				v.AddConfigPath(dir)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	dir, err := homedir.Expand(cfg.Scan.Dir)
	if err != nil {
		return nil, fmt.Errorf("scan dir: %w", err)
	}
	cfg.Scan.Dir = dir
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Dump writes cfg as YAML.
func Dump(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
