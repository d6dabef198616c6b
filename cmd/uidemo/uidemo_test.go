// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/retained/app"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "uidemo.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
font = "fonts/regular.ttf"
width = 800
explain = true
`), 0o644))
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "fonts/regular.ttf", cfg.Font)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.True(t, cfg.Explain)

	require.NoError(t, os.WriteFile(path, []byte(`width = "wide"`), 0o644))
	_, err = loadConfig(path)
	assert.ErrorContains(t, err, "uidemo: parse config")

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOverride(t *testing.T) {
	newFlags := func() (*flag.FlagSet, overrideFlags) {
		fs := flag.NewFlagSet("uidemo", flag.ContinueOnError)
		return fs, overrideFlags{
			sprites: fs.String("sprites", "", ""),
			font:    fs.String("font", "", ""),
			size:    fs.String("size", "", ""),
			output:  fs.String("o", "", ""),
			explain: fs.Bool("explain", false, ""),
		}
	}

	fs, f := newFlags()
	require.NoError(t, fs.Parse([]string{"-size", "320x200", "-o", "out", "-explain"}))
	cfg := defaultConfig()
	cfg.Font = "custom.ttf"
	require.NoError(t, cfg.override(fs, f))
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
	assert.Equal(t, "out", cfg.Output)
	assert.True(t, cfg.Explain)
	// Unset flags keep the configured values.
	assert.Equal(t, "custom.ttf", cfg.Font)

	fs, f = newFlags()
	require.NoError(t, fs.Parse([]string{"-explain=false", "-size", "big"}))
	cfg = defaultConfig()
	cfg.Explain = true
	assert.Error(t, cfg.override(fs, f))
	assert.False(t, cfg.Explain)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		w, h int
		err  bool
	}{
		{"640x480", 640, 480, false},
		{"640", 0, 0, true},
		{"0x10", 0, 0, true},
		{"ax10", 0, 0, true},
	}
	for _, tc := range tests {
		w, h, err := parseSize(tc.in)
		if tc.err {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.w, w)
		assert.Equal(t, tc.h, h)
	}
}

func TestRunScript(t *testing.T) {
	cfg := defaultConfig()
	cfg.Output = t.TempDir()
	cfg.Explain = true
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := app.NewMetrics(prometheus.NewRegistry())

	s, err := runScript(context.Background(), cfg, logger, m)
	require.NoError(t, err)
	assert.Equal(t, 0, s.count)
	assert.True(t, s.sound)
	assert.Equal(t, hard, s.level)
	assert.Equal(t, float32(.5), s.volume)

	files, err := filepath.Glob(filepath.Join(cfg.Output, "*.png"))
	require.NoError(t, err)
	assert.Len(t, files, len(script))
	assert.FileExists(t, filepath.Join(cfg.Output, "00-start.png"))
}
