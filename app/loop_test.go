// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/retained/app/headless"
	"gioui.org/retained/f32"
	"gioui.org/retained/io/gamepad"
	"gioui.org/retained/io/key"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
	"gioui.org/retained/ui"
	"gioui.org/retained/widget"
)

type frame struct {
	buttons []string
}

type fake struct {
	drawn   []string
	flushes int
}

func (f *fake) Explain(layout.Layout, color.NRGBA) {}

func (f *fake) Flush(fr *frame) {
	fr.buttons = append(fr.buttons, f.drawn...)
	f.drawn = f.drawn[:0]
	f.flushes++
}

func (f *fake) DrawColumn(f32.Rectangle) {}

func (f *fake) DrawButton(cursor f32.Point, bounds f32.Rectangle, state widget.Clickable, label string, class widget.Class) pointer.Cursor {
	f.drawn = append(f.drawn, label)
	if bounds.Contains(cursor) {
		return pointer.Pointer
	}
	return pointer.OutOfBounds
}

type counter struct {
	state widget.Clickable
	value int
	views int
	size  image.Point
}

func (c *counter) React(msg int) {
	c.value += msg
}

func (c *counter) View(size image.Point) ui.Element[int, *fake] {
	c.views++
	c.size = size
	return widget.NewColumn[int, *fake]().
		Push(widget.NewButton[int, *fake](&c.state, "+").OnClick(1).Width(100)).
		Element()
}

func newTestLoop(t *testing.T, opts ...Option) (*Loop[*frame, int, *fake], *counter, *headless.Window) {
	t.Helper()
	w, err := headless.NewWindow(320, 240)
	require.NoError(t, err)
	c := new(counter)
	return NewLoop[*frame, int, *fake](c, new(fake), w, opts...), c, w
}

func click(x, y float32) []pointer.Event {
	p := f32.Pt(x, y)
	return []pointer.Event{
		{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: p},
		{Kind: pointer.Release, Buttons: pointer.ButtonPrimary, Position: p},
	}
}

func TestLoopReacts(t *testing.T) {
	l, c, w := newTestLoop(t)
	_, ok := l.Layout()
	assert.False(t, ok)
	var fr frame
	assert.Equal(t, pointer.Pointer, l.Frame(&fr, f32.Pt(50, 25)))
	assert.Equal(t, []string{"+"}, fr.buttons)
	assert.Equal(t, pointer.Pointer, w.Cursor())
	assert.Equal(t, image.Pt(320, 240), c.size)
	lay, ok := l.Layout()
	require.True(t, ok)
	assert.Equal(t, f32.Rect(0, 0, 100, 50), lay.Child(0).Bounds())

	for _, e := range click(50, 25) {
		l.Queue(e)
	}
	l.Frame(&fr, f32.Pt(50, 25))
	assert.Equal(t, 1, c.value)

	// Events are delivered once.
	l.Frame(&fr, f32.Pt(50, 25))
	assert.Equal(t, 1, c.value)
	assert.Equal(t, 3, c.views)

	assert.Equal(t, pointer.OutOfBounds, l.Frame(&fr, f32.Pt(300, 200)))
	assert.Equal(t, pointer.OutOfBounds, w.Cursor())
	assert.Equal(t, pointer.OutOfBounds, l.Cursor())
}

func TestLoopLogsCursor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l, _, _ := newTestLoop(t, WithLogger(logger))
	var fr frame
	l.Frame(&fr, f32.Pt(50, 25))
	assert.Contains(t, buf.String(), "app: cursor taken")
	assert.Contains(t, buf.String(), "cursor=Pointer")
	l.Frame(&fr, f32.Pt(300, 200))
	assert.Contains(t, buf.String(), "app: cursor returned")
}

func TestLoopMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	l, _, _ := newTestLoop(t, WithMetrics(m))
	var fr frame
	l.Frame(&fr, f32.Point{})
	for _, e := range click(50, 25) {
		l.Queue(e)
	}
	l.Frame(&fr, f32.Pt(50, 25))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.frames))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.messages))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.layouts.WithLabelValues("miss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.layouts.WithLabelValues("hit")))
	assert.Equal(t, 4, testutil.CollectAndCount(m.phases))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 4)
}

func TestLoopIgnoresUnhandledEvents(t *testing.T) {
	l, c, _ := newTestLoop(t)
	var fr frame
	l.Frame(&fr, f32.Pt(50, 25))
	l.Queue(
		gamepad.Event{Kind: gamepad.ButtonPress, Button: gamepad.ButtonSouth},
		key.Event{Name: key.NameReturn},
	)
	l.Frame(&fr, f32.Pt(50, 25))
	assert.Equal(t, 0, c.value)
}

func TestLoopTracksEventPositions(t *testing.T) {
	l, c, w := newTestLoop(t)
	var fr frame
	l.Frame(&fr, f32.Point{})

	// Pressed outside the button, released inside it.
	l.Queue(
		pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(200, 25)},
		pointer.Event{Kind: pointer.Move, Position: f32.Pt(50, 25)},
		pointer.Event{Kind: pointer.Release, Buttons: pointer.ButtonPrimary, Position: f32.Pt(50, 25)},
	)
	l.Frame(&fr, f32.Pt(50, 25))
	assert.Equal(t, 0, c.value)

	// Both inside, while the host reports a stale position.
	for _, e := range click(50, 25) {
		l.Queue(e)
	}
	assert.Equal(t, pointer.Pointer, l.Frame(&fr, f32.Pt(300, 200)))
	assert.Equal(t, 1, c.value)
	assert.Equal(t, pointer.Pointer, w.Cursor())
}
