// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// config is the demo configuration, read from an optional TOML file
// and overridden by command line flags.
type config struct {
	// Sprites and Font are paths to a sprite sheet and a TrueType
	// font. Empty paths select the built-in defaults.
	Sprites string `toml:"sprites"`
	Font    string `toml:"font"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	// Output is the directory frames are written to.
	Output  string `toml:"output"`
	Explain bool   `toml:"explain"`
}

func defaultConfig() config {
	return config{
		Width:  640,
		Height: 720,
		Output: "frames",
	}
}

// loadConfig reads the TOML file at path over the defaults. An empty
// path returns the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("uidemo: read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("uidemo: parse config %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("uidemo: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// overrideFlags are the flags that take precedence over the
// configuration file when set.
type overrideFlags struct {
	sprites, font, size, output *string
	explain                     *bool
}

// override applies the flags of f that were set in fs to cfg.
func (cfg *config) override(fs *flag.FlagSet, f overrideFlags) error {
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})
	if set["sprites"] {
		cfg.Sprites = *f.sprites
	}
	if set["font"] {
		cfg.Font = *f.font
	}
	if set["o"] {
		cfg.Output = *f.output
	}
	if set["explain"] {
		cfg.Explain = *f.explain
	}
	if set["size"] {
		w, h, err := parseSize(*f.size)
		if err != nil {
			return err
		}
		cfg.Width, cfg.Height = w, h
	}
	return nil
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("uidemo: invalid size %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("uidemo: invalid size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("uidemo: invalid size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("uidemo: invalid size %q", s)
	}
	return w, h, nil
}
