// SPDX-License-Identifier: Unlicense OR MIT

package basic_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/ui"
	"gioui.org/retained/widget"
	"gioui.org/retained/widget/basic"
)

type R = *basic.Renderer

var _ interface {
	ui.Renderer[draw.Image]
	widget.TextRenderer
	widget.PanelRenderer
	widget.ButtonRenderer
	widget.CheckboxRenderer
	widget.RadioRenderer
	widget.SliderRenderer
	widget.ImageRenderer
	widget.ProgressBarRenderer
} = (*basic.Renderer)(nil)

func load(t *testing.T) *basic.Renderer {
	t.Helper()
	r, err := basic.Load(context.Background(), basic.DefaultConfiguration())
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	def := basic.DefaultConfiguration()

	_, err := basic.Load(ctx, basic.Configuration{Font: def.Font})
	assert.ErrorIs(t, err, basic.ErrNoSprites)
	_, err = basic.Load(ctx, basic.Configuration{Sprites: def.Sprites})
	assert.ErrorIs(t, err, basic.ErrNoFont)

	_, err = basic.Load(ctx, basic.Configuration{Sprites: def.Sprites, Font: basic.FontBytes([]byte("not a font"))})
	assert.ErrorContains(t, err, "basic: parse font")
	_, err = basic.Load(ctx, basic.Configuration{Sprites: basic.ImageBytes([]byte("not an image")), Font: def.Font})
	assert.ErrorContains(t, err, "basic: decode sprites")
	_, err = basic.Load(ctx, basic.Configuration{Sprites: basic.ImageFile(filepath.Join(t.TempDir(), "missing.png")), Font: def.Font})
	assert.ErrorIs(t, err, os.ErrNotExist)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = basic.Load(cancelled, def)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImageFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, basic.NewTheme().Sprites()))
	path := filepath.Join(t.TempDir(), "ui.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	img, err := basic.ImageFile(path)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.Pt(182, 181), img.Bounds().Size())
}

func TestThemeSprites(t *testing.T) {
	th := basic.NewTheme()
	sheet := th.Sprites()
	// Panel corners are rounded, the center is filled.
	assert.Equal(t, uint8(0), sheet.RGBAAt(0, 0).A)
	assert.Equal(t, th.Color.Panel, sheet.RGBAAt(14, 17))
	// Primary button, released.
	assert.Equal(t, th.Color.Primary, sheet.RGBAAt(24, 34+20))
	// Slider rail.
	assert.Equal(t, th.Color.Rail, sheet.RGBAAt(98, 57))
}

func frame() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 400, 300))
}

func TestDrawPanel(t *testing.T) {
	r := load(t)
	root := widget.NewPanel[struct{}, R](
		widget.NewColumn[struct{}, R]().Width(200).Height(100),
	).Element()
	iface := ui.Compute[draw.Image](root, r)
	assert.Equal(t, f32.Rect(0, 0, 240, 140), iface.Layout().Bounds())

	f := frame()
	c := iface.Draw(r, f, f32.Pt(100, 50))
	assert.Equal(t, pointer.Idle, c)
	th := basic.NewTheme()
	assert.Equal(t, th.Color.Panel, f.RGBAAt(10, 3))
	assert.Equal(t, th.Color.Panel, f.RGBAAt(120, 70))
	assert.Equal(t, uint8(0), f.RGBAAt(300, 200).A)
}

func TestDrawText(t *testing.T) {
	r := load(t)
	root := widget.NewText[struct{}, R]("Hello").Width(200).Element()
	iface := ui.Compute[draw.Image](root, r)
	f := frame()
	iface.Draw(r, f, f32.Point{})

	b := iface.Layout().Bounds()
	inked := 0
	for y := 0; y < int(b.Max.Y); y++ {
		for x := 0; x < int(b.Max.X); x++ {
			if f.RGBAAt(x, y).A != 0 {
				inked++
			}
		}
	}
	assert.Positive(t, inked)
	assert.Equal(t, uint8(0), f.RGBAAt(300, 200).A)
}

func TestTextWraps(t *testing.T) {
	r := load(t)
	root := widget.NewColumn[struct{}, R]().
		Width(100).
		Push(widget.NewText[struct{}, R]("word")).
		Push(widget.NewText[struct{}, R]("many words that cannot fit on a single line")).
		Element()
	l := ui.Compute[draw.Image](root, r).Layout()
	one := l.Child(0).Bounds().Dy()
	assert.Positive(t, one)
	assert.Greater(t, l.Child(1).Bounds().Dy(), 2*one)
}

func TestExplain(t *testing.T) {
	r := load(t)
	red := color.NRGBA{R: 0xff, A: 0xff}
	root := widget.NewColumn[struct{}, R]().
		Padding(10).
		Push(widget.NewColumn[struct{}, R]().Width(20).Height(20)).
		Element().
		Explain(red)
	iface := ui.Compute[draw.Image](root, r)
	f := frame()
	iface.Draw(r, f, f32.Point{})
	want := color.RGBA{R: 0xff, A: 0xff}
	assert.Equal(t, want, f.RGBAAt(0, 0))
	assert.Equal(t, want, f.RGBAAt(39, 39))
	// The child is outlined too.
	assert.Equal(t, want, f.RGBAAt(10, 10))
	assert.Equal(t, uint8(0), f.RGBAAt(20, 20).A)
}

func TestCursors(t *testing.T) {
	r := load(t)
	var (
		click widget.Clickable
		drag  widget.Draggable
	)
	root := widget.NewColumn[float32, R]().
		Width(200).
		Push(widget.NewButton[float32, R](&click, "OK").OnClick(0)).
		Push(widget.NewSlider[float32, R](&drag, 0, 1, .5, func(v float32) float32 { return v })).
		Push(widget.NewCheckbox[float32, R](true, "Check", func(bool) float32 { return 0 })).
		Element()
	iface := ui.Compute[draw.Image](root, r)
	l := iface.Layout()
	f := frame()
	assert.Equal(t, pointer.Pointer, iface.Draw(r, f, l.Child(0).Bounds().Center()))
	assert.Equal(t, pointer.Grab, iface.Draw(r, f, l.Child(1).Bounds().Center()))
	assert.Equal(t, pointer.Pointer, iface.Draw(r, f, l.Child(2).Child(0).Bounds().Center()))
	assert.Equal(t, pointer.OutOfBounds, iface.Draw(r, f, f32.Pt(399, 299)))
}

func TestDrawImage(t *testing.T) {
	r := load(t)
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.RGBA{G: 0xff, A: 0xff}), image.Point{}, draw.Src)
	root := widget.NewColumn[struct{}, R]().
		Width(100).
		Height(50).
		Push(widget.NewImage[struct{}, R](src)).
		Element()
	iface := ui.Compute[draw.Image](root, r)
	f := frame()
	iface.Draw(r, f, f32.Point{})
	// Contained and centered: a 50x50 square at x 25.
	assert.Equal(t, uint8(0xff), f.RGBAAt(50, 25).G)
	assert.Equal(t, uint8(0), f.RGBAAt(10, 25).A)
	assert.Equal(t, uint8(0), f.RGBAAt(90, 25).A)
}
