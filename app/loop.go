// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"log/slog"
	"time"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
	"gioui.org/retained/ui"
)

// Loop drives a UserInterface drawn by a renderer of type R onto
// frames of type F.
//
// A Loop is not safe for concurrent use.
type Loop[F, M any, R ui.Renderer[F]] struct {
	ui       UserInterface[M, R]
	renderer R
	window   Window
	logger   *slog.Logger
	metrics  *Metrics

	iface  *ui.Interface[F, M, R]
	cache  ui.Cache
	cursor pointer.Cursor
	events []event.Event
	msgs   []M
}

// Option configures a Loop.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *Metrics
}

// WithLogger sets the logger of frame diagnostics. The default is
// slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records frame timings in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func NewLoop[F, M any, R ui.Renderer[F]](u UserInterface[M, R], r R, w Window, opts ...Option) *Loop[F, M, R] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Loop[F, M, R]{
		ui:       u,
		renderer: r,
		window:   w,
		logger:   o.logger,
		metrics:  o.metrics,
	}
}

// Queue adds events to be delivered during the next Frame.
func (l *Loop[F, M, R]) Queue(events ...event.Event) {
	l.events = append(l.events, events...)
}

// Cursor returns the cursor suggested during the last Frame.
func (l *Loop[F, M, R]) Cursor() pointer.Cursor {
	return l.cursor
}

// Layout returns the layout of the last Frame, if any.
func (l *Loop[F, M, R]) Layout() (layout.Layout, bool) {
	if l.iface == nil {
		return layout.Layout{}, false
	}
	return l.iface.Layout(), true
}

// Frame runs a single frame with the pointer at cursor, drawing onto
// frame. Queued pointer events move the pointer to their position
// before they are delivered, and the frame is drawn with the pointer
// at the last such position. Frame returns the suggested cursor.
func (l *Loop[F, M, R]) Frame(frame F, cursor f32.Point) pointer.Cursor {
	start := time.Now()
	iface := ui.ComputeWithCache[F](l.ui.View(l.window.Size()), l.renderer, l.cache)
	l.metrics.layout(iface.Cached())
	t := l.metrics.observe(PhaseLayout, start)

	for _, e := range l.events {
		if pe, ok := e.(pointer.Event); ok {
			cursor = pe.Position
		}
		iface.OnEvent(e, cursor, &l.msgs)
	}
	clear(l.events)
	l.events = l.events[:0]
	t = l.metrics.observe(PhaseEvents, t)

	c := iface.Draw(l.renderer, frame, cursor)
	l.cache = iface.Cache()
	l.iface = iface
	t = l.metrics.observe(PhaseDraw, t)

	if c != l.cursor {
		switch {
		case !c.Taken():
			l.logger.Debug("app: cursor returned")
		case !l.cursor.Taken():
			l.logger.Debug("app: cursor taken", "cursor", c)
		}
		l.window.SetCursor(c)
		l.cursor = c
	}

	n := len(l.msgs)
	for _, msg := range l.msgs {
		l.ui.React(msg)
	}
	clear(l.msgs)
	l.msgs = l.msgs[:0]
	if n > 0 {
		l.logger.Debug("app: messages handled", "count", n)
	}
	l.metrics.observe(PhaseReact, t)
	l.metrics.frame(n)
	return c
}
