package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Options{SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, SourceSimulated, cfg.Scan.Source)
	assert.Equal(t, 30*time.Second, cfg.Scan.Interval)
	assert.Equal(t, 16, cfg.UI.ItemHeight)
	assert.True(t, filepath.IsAbs(cfg.Scan.Dir), cfg.Scan.Dir)
}

func TestLoadSearchPathFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wifidash.yaml", "scan:\n  interval: 5s\n  source: replay\nui:\n  item_height: 20\n")

	cfg, err := Load(Options{SearchPaths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Scan.Interval)
	assert.Equal(t, SourceReplay, cfg.Scan.Source)
	assert.Equal(t, 20, cfg.UI.ItemHeight)
	assert.Equal(t, 12, cfg.Scan.Stations)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("WIFIDASH_SCAN_INTERVAL", "0s")
	t.Setenv("WIFIDASH_LOG_LEVEL", "DEBUG")

	cfg, err := Load(Options{SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)
	assert.Zero(t, cfg.Scan.Interval)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "bad.yaml", "ui:\n  item_height: 4\n")

	_, err := Load(Options{File: p})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "ui.itemheight", ve.Field)
	assert.Equal(t, "min", ve.Tag)
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Setenv("WIFIDASH_SCAN_SOURCE", "radio")
	_, err := Load(Options{SearchPaths: []string{t.TempDir()}})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "scan.source", ve.Field)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(Options{File: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestDumpRoundTrip(t *testing.T) {
	cfg, err := Load(Options{SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, cfg))
	assert.Contains(t, buf.String(), "interval: 30s")

	var back Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, cfg.UI, back.UI)
}

func TestValidateNil(t *testing.T) {
	assert.Error(t, Validate(nil))
}
