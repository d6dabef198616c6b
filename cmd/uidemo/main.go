// SPDX-License-Identifier: Unlicense OR MIT

// Command uidemo runs a tour of the built-in widgets.
//
// By default the tour is played headlessly with a scripted sequence
// of pointer events, and a PNG image of the window is written after
// every step. With -term the tour runs interactively in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gioui.org/retained/app"
)

var (
	configPath  = flag.String("config", "", "TOML configuration file.")
	terminal    = flag.Bool("term", false, "run interactively in the terminal.")
	verbose     = flag.Bool("v", false, "verbose logging.")
	logPath     = flag.String("log", "", "log file (default: stderr, or none with -term).")
	metricsAddr = flag.String("metrics", "", "serve frame metrics on this address, e.g. localhost:9090.")
)

var overrides = overrideFlags{
	sprites: flag.String("sprites", "", "sprite sheet PNG (default: built-in theme)."),
	font:    flag.String("font", "", "TrueType font file (default: Go Regular)."),
	size:    flag.String("size", "", "window size, as WIDTHxHEIGHT (default 640x720)."),
	output:  flag.String("o", "", "output directory for frames (default \"frames\")."),
	explain: flag.Bool("explain", false, "outline the bounds of every widget."),
}

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "uidemo: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.override(flag.CommandLine, overrides); err != nil {
		return err
	}
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	reg := prometheus.NewRegistry()
	m := app.NewMetrics(reg)
	if *metricsAddr != "" {
		srv := &http.Server{Addr: *metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("uidemo: metrics server", "err", err)
			}
		}()
		defer srv.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *terminal {
		return runTerminal(ctx, cfg, logger, m)
	}
	_, err = runScript(ctx, cfg, logger, m)
	return err
}

func newLogger() (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	var out io.Writer = os.Stderr
	closeLog := func() {}
	switch {
	case *logPath != "":
		f, err := os.Create(*logPath)
		if err != nil {
			return nil, nil, fmt.Errorf("uidemo: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	case *terminal:
		out = io.Discard
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closeLog, nil
}
