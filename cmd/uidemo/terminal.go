// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"gioui.org/retained/app"
	"gioui.org/retained/f32"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/widget/term"
)

// runTerminal runs the tour interactively on the terminal until the
// user quits with q, Escape or Ctrl-C.
func runTerminal(ctx context.Context, cfg config, logger *slog.Logger, m *app.Metrics) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("uidemo: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("uidemo: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()

	r, err := term.Load(ctx, term.Configuration{CellSize: term.DefaultCellSize, Logger: logger})
	if err != nil {
		return err
	}
	w := term.NewWindow(s, r.CellSize())
	in := term.NewInput(r.CellSize())
	loop := app.NewLoop[tcell.Screen, message, *term.Renderer](newTour[*term.Renderer](cfg.Explain), r, w, app.WithLogger(logger), app.WithMetrics(m))

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	var cursor f32.Point
	for {
		s.Clear()
		loop.Frame(s, cursor)
		var ev tcell.Event
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-events:
			if !ok {
				return nil
			}
			ev = e
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
		for _, e := range in.Translate(ev) {
			if pe, ok := e.(pointer.Event); ok {
				cursor = pe.Position
			}
			loop.Queue(e)
		}
	}
}
