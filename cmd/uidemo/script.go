// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"gioui.org/retained/app"
	"gioui.org/retained/app/headless"
	"gioui.org/retained/f32"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
	"gioui.org/retained/widget/basic"
)

// step is a scripted interaction with the tour. Input returns the
// pointer events of the step given the layout of the panel content.
type step struct {
	name  string
	input func(content layout.Layout) []pointer.Event
}

var script = []step{
	{name: "start"},
	{name: "increment", input: func(c layout.Layout) []pointer.Event {
		p := c.Child(rowButtons).Child(1).Bounds().Center()
		return append(append(click(p), click(p)...), click(p)...)
	}},
	{name: "decrement", input: func(c layout.Layout) []pointer.Event {
		return click(c.Child(rowButtons).Child(0).Bounds().Center())
	}},
	{name: "sound", input: func(c layout.Layout) []pointer.Event {
		return click(c.Child(rowSound).Child(0).Bounds().Center())
	}},
	{name: "hard", input: func(c layout.Layout) []pointer.Event {
		return click(c.Child(rowEasy + int(hard)).Bounds().Center())
	}},
	{name: "volume", input: func(c layout.Layout) []pointer.Event {
		b := c.Child(rowSlider).Bounds()
		y := b.Center().Y
		return []pointer.Event{
			{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: b.Center()},
			{Kind: pointer.Move, Position: f32.Pt(b.Min.X+b.Dx()*.8, y)},
			{Kind: pointer.Release, Buttons: pointer.ButtonPrimary, Position: f32.Pt(b.Min.X+b.Dx()*.8, y)},
		}
	}},
	{name: "reset", input: func(c layout.Layout) []pointer.Event {
		return click(c.Child(rowReset).Bounds().Center())
	}},
}

func click(p f32.Point) []pointer.Event {
	return []pointer.Event{
		{Kind: pointer.Move, Position: p},
		{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: p},
		{Kind: pointer.Release, Buttons: pointer.ButtonPrimary, Position: p},
	}
}

func basicConfig(cfg config, logger *slog.Logger) basic.Configuration {
	bc := basic.DefaultConfiguration()
	if cfg.Sprites != "" {
		bc.Sprites = basic.ImageFile(cfg.Sprites)
	}
	if cfg.Font != "" {
		bc.Font = basic.FontFile(cfg.Font)
	}
	bc.Logger = logger
	return bc
}

// runScript plays the script on a headless window and writes a PNG
// of the window after every step. It returns the final tour state.
func runScript(ctx context.Context, cfg config, logger *slog.Logger, m *app.Metrics) (state, error) {
	r, err := basic.Load(ctx, basicConfig(cfg, logger))
	if err != nil {
		return state{}, err
	}
	defer r.Close()
	w, err := headless.NewWindow(cfg.Width, cfg.Height)
	if err != nil {
		return state{}, err
	}
	defer w.Release()
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return state{}, fmt.Errorf("uidemo: %w", err)
	}

	t := newTour[*basic.Renderer](cfg.Explain)
	loop := app.NewLoop[draw.Image, message, *basic.Renderer](t, r, w, app.WithLogger(logger), app.WithMetrics(m))
	var (
		g      errgroup.Group
		cursor f32.Point
	)
	g.SetLimit(4)
	for i, s := range script {
		if err := ctx.Err(); err != nil {
			g.Wait()
			return t.state, err
		}
		if s.input != nil {
			lay, _ := loop.Layout()
			for _, e := range s.input(lay.Child(0).Child(0)) {
				cursor = e.Position
				loop.Queue(e)
				loop.Frame(w.Frame(), cursor)
			}
		}
		loop.Frame(w.Frame(), cursor)
		img, err := w.Screenshot()
		if err != nil {
			g.Wait()
			return t.state, err
		}
		name := filepath.Join(cfg.Output, fmt.Sprintf("%02d-%s.png", i, s.name))
		g.Go(func() error {
			return writePNG(name, img)
		})
		logger.Info("uidemo: step", "name", s.name, "count", t.count, "cursor", loop.Cursor())
	}
	return t.state, g.Wait()
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("uidemo: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("uidemo: encode %s: %w", name, err)
	}
	return f.Close()
}
