// SPDX-License-Identifier: Unlicense OR MIT

package term_test

import (
	"context"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/retained/io/pointer"
	"gioui.org/retained/ui"
	"gioui.org/retained/widget"
	"gioui.org/retained/widget/term"
)

type R = *term.Renderer

var _ interface {
	ui.Renderer[tcell.Screen]
	widget.TextRenderer
	widget.PanelRenderer
	widget.ButtonRenderer
	widget.CheckboxRenderer
	widget.RadioRenderer
	widget.SliderRenderer
	widget.ImageRenderer
	widget.ProgressBarRenderer
} = (*term.Renderer)(nil)

func setup(t *testing.T) (*term.Renderer, tcell.SimulationScreen) {
	t.Helper()
	r, err := term.Load(context.Background(), term.DefaultConfiguration())
	require.NoError(t, err)
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(40, 10)
	return r, s
}

func draw[M any](r *term.Renderer, s tcell.Screen, root ui.Element[M, R], cursor image.Point) pointer.Cursor {
	iface := ui.Compute[tcell.Screen](root, r)
	return iface.Draw(r, s, r.Point(cursor.X, cursor.Y))
}

func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func cellAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func TestLoad(t *testing.T) {
	_, err := term.Load(context.Background(), term.Configuration{CellSize: image.Pt(0, 16)})
	assert.ErrorIs(t, err, term.ErrCellSize)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = term.Load(ctx, term.DefaultConfiguration())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDrawText(t *testing.T) {
	r, s := setup(t)
	root := widget.NewText[struct{}, R]("Hello there").Width(80).Element()
	c := draw(r, s, root, image.Pt(0, 0))
	assert.Equal(t, pointer.OutOfBounds, c)
	assert.True(t, strings.HasPrefix(row(s, 0), "Hello"))
	// Ten cells do not fit both words.
	assert.True(t, strings.HasPrefix(row(s, 1), "there"))
}

func TestDrawButton(t *testing.T) {
	r, s := setup(t)
	var state widget.Clickable
	root := widget.NewButton[struct{}, R](&state, "OK").OnClick(struct{}{}).Width(100).Element()

	c := draw(r, s, root, image.Pt(1, 1))
	assert.Equal(t, pointer.Pointer, c)
	assert.Contains(t, row(s, 1), "OK")
	_, _, st, _ := s.GetContent(0, 0)
	_, bg, _ := st.Decompose()
	assert.Equal(t, tcell.ColorBlue, bg)

	c = draw(r, s, root, image.Pt(30, 8))
	assert.Equal(t, pointer.OutOfBounds, c)
}

func TestDrawMarks(t *testing.T) {
	r, s := setup(t)
	root := widget.NewColumn[bool, R]().
		Push(widget.NewCheckbox[bool, R](true, "Sound", func(c bool) bool { return c })).
		Element()
	c := draw(r, s, root, image.Pt(1, 0))
	assert.Equal(t, pointer.Pointer, c)
	assert.True(t, strings.HasPrefix(row(s, 0), "[x]"))
	assert.Contains(t, row(s, 0)+row(s, 1), "Sound")

	r, s = setup(t)
	selected := 1
	radio := widget.NewRadio[int, R](2, "Two", &selected, func(v int) int { return v }).Element()
	draw(r, s, radio, image.Pt(30, 8))
	assert.True(t, strings.HasPrefix(row(s, 0), "( )"))
}

func TestDrawSlider(t *testing.T) {
	r, s := setup(t)
	var state widget.Draggable
	root := widget.NewSlider[float32, R](&state, 0, 10, 5, func(v float32) float32 { return v }).Width(160).Element()
	c := draw(r, s, root, image.Pt(2, 1))
	assert.Equal(t, pointer.Grab, c)
	assert.Equal(t, tcell.RuneHLine, cellAt(s, 0, 1))
	assert.Equal(t, tcell.RuneBlock, cellAt(s, 10, 1))
}

func TestDrawProgressBar(t *testing.T) {
	r, s := setup(t)
	root := widget.NewProgressBar[struct{}, R](.5).Width(80).Element()
	draw(r, s, root, image.Pt(0, 0))
	assert.Equal(t, tcell.RuneBlock, cellAt(s, 4, 1))
	assert.Equal(t, tcell.RuneBoard, cellAt(s, 5, 1))
}

func TestDrawImage(t *testing.T) {
	r, s := setup(t)
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xff, A: 0xff})
	img.SetNRGBA(1, 0, color.NRGBA{B: 0xff, A: 0xff})
	root := widget.NewImage[struct{}, R](img).Fit(widget.Fill).Width(32).Height(16).Element()
	draw(r, s, root, image.Pt(0, 0))
	bg := func(x, y int) tcell.Color {
		_, _, st, _ := s.GetContent(x, y)
		_, bg, _ := st.Decompose()
		return bg
	}
	assert.Equal(t, tcell.NewRGBColor(0xff, 0, 0), bg(0, 0))
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0xff), bg(3, 0))
}

func TestExplain(t *testing.T) {
	r, s := setup(t)
	red := color.NRGBA{R: 0xff, A: 0xff}
	root := widget.NewColumn[struct{}, R]().Width(80).Height(48).Element().Explain(red)
	draw(r, s, root, image.Pt(0, 0))
	ch, _, st, _ := s.GetContent(0, 0)
	assert.Equal(t, tcell.RuneULCorner, ch)
	fg, _, _ := st.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0xff, 0, 0), fg)
	assert.Equal(t, tcell.RuneLRCorner, cellAt(s, 9, 2))
}

func TestWindow(t *testing.T) {
	r, s := setup(t)
	w := term.NewWindow(s, r.CellSize())
	assert.Equal(t, image.Pt(40*8, 10*16), w.Size())
	w.SetCursor(pointer.Pointer)
	assert.Equal(t, pointer.Pointer, w.Cursor())
}
