// SPDX-License-Identifier: Unlicense OR MIT

// Package basic implements a renderer drawing widgets from a sprite
// sheet into images.
//
// Draw calls are batched and drawn in order by Flush: sprites first,
// then images, text and finally explained bounds.
package basic

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/errgroup"

	"gioui.org/retained/f32"
	"gioui.org/retained/layout"
	"gioui.org/retained/text"
)

// Renderer draws widgets into a draw.Image. It implements the
// renderer capability of every widget in package widget.
type Renderer struct {
	sheet  image.Image
	faces  *text.FaceCache
	logger *slog.Logger

	sprites  []sprite
	images   []picture
	labels   []label
	outlines []outline
}

type sprite struct {
	src image.Rectangle
	dst f32.Rectangle
}

type picture struct {
	img  image.Image
	src  image.Rectangle
	dst  f32.Rectangle
	clip f32.Rectangle
}

type label struct {
	content  string
	size     float32
	color    color.NRGBA
	bounds   f32.Rectangle
	align    text.Alignment
	vertical text.Alignment
}

type outline struct {
	bounds f32.Rectangle
	color  color.NRGBA
}

// Load loads the sprite sheet and font of cfg concurrently.
func Load(ctx context.Context, cfg Configuration) (*Renderer, error) {
	if cfg.Sprites == nil {
		return nil, ErrNoSprites
	}
	if cfg.Font == nil {
		return nil, ErrNoFont
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var (
		sheet image.Image
		fnt   *opentype.Font
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sheet, err = cfg.Sprites(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		fnt, err = cfg.Font(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("basic: renderer loaded",
		"sprites", sheet.Bounds().Size(),
		"glyphs", fnt.NumGlyphs(),
	)
	return &Renderer{
		sheet:  sheet,
		faces:  text.NewFaceCache(fnt),
		logger: logger,
	}, nil
}

// Explain outlines the bounds of l and its descendants.
func (r *Renderer) Explain(l layout.Layout, c color.NRGBA) {
	r.outlines = append(r.outlines, outline{bounds: l.Bounds(), color: c})
	for _, child := range l.Children() {
		r.Explain(child, c)
	}
}

// Flush draws every batched call onto frame.
func (r *Renderer) Flush(frame draw.Image) {
	for _, s := range r.sprites {
		xdraw.NearestNeighbor.Scale(frame, pixels(s.dst), r.sheet, s.src, draw.Over, nil)
	}
	for _, p := range r.images {
		dst, src := clipScale(p.dst, p.src, p.clip)
		if !dst.Empty() && !src.Empty() {
			xdraw.CatmullRom.Scale(frame, dst, p.img, src, draw.Over, nil)
		}
	}
	for _, l := range r.labels {
		r.drawLabel(frame, l)
	}
	for _, o := range r.outlines {
		stroke(frame, pixels(o.bounds), o.color)
	}
	r.sprites = r.sprites[:0]
	r.images = r.images[:0]
	r.labels = r.labels[:0]
	r.outlines = r.outlines[:0]
}

// Close releases the font faces of r.
func (r *Renderer) Close() error {
	return r.faces.Close()
}

func (r *Renderer) addSprite(src image.Rectangle, pos f32.Point, scale f32.Point) {
	sz := f32.Pt(float32(src.Dx())*scale.X, float32(src.Dy())*scale.Y)
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	r.sprites = append(r.sprites, sprite{src: src, dst: f32.Rectangle{Min: pos, Max: pos.Add(sz)}})
}

// pixels rounds r to the pixel grid.
func pixels(r f32.Rectangle) image.Rectangle {
	return image.Rect(
		int(math.Round(float64(r.Min.X))),
		int(math.Round(float64(r.Min.Y))),
		int(math.Round(float64(r.Max.X))),
		int(math.Round(float64(r.Max.Y))),
	)
}

// clipScale returns the destination and source rectangles of the
// part of a scaled draw from src to dst falling within clip.
func clipScale(dst f32.Rectangle, src image.Rectangle, clip f32.Rectangle) (image.Rectangle, image.Rectangle) {
	vis := dst.Intersect(clip)
	if vis.Empty() || dst.Empty() {
		return image.Rectangle{}, image.Rectangle{}
	}
	sx := float32(src.Dx()) / dst.Dx()
	sy := float32(src.Dy()) / dst.Dy()
	s := f32.Rectangle{
		Min: f32.Pt(float32(src.Min.X)+(vis.Min.X-dst.Min.X)*sx, float32(src.Min.Y)+(vis.Min.Y-dst.Min.Y)*sy),
		Max: f32.Pt(float32(src.Min.X)+(vis.Max.X-dst.Min.X)*sx, float32(src.Min.Y)+(vis.Max.Y-dst.Min.Y)*sy),
	}
	return pixels(vis), pixels(s).Intersect(src)
}

// stroke draws the 1 pixel outline of r.
func stroke(dst draw.Image, r image.Rectangle, c color.NRGBA) {
	if r.Empty() {
		return
	}
	u := image.NewUniform(c)
	for _, e := range [...]image.Rectangle{
		{Min: r.Min, Max: image.Pt(r.Max.X, r.Min.Y+1)},
		{Min: image.Pt(r.Min.X, r.Max.Y-1), Max: r.Max},
		{Min: image.Pt(r.Min.X, r.Min.Y+1), Max: image.Pt(r.Min.X+1, r.Max.Y-1)},
		{Min: image.Pt(r.Max.X-1, r.Min.Y+1), Max: image.Pt(r.Max.X, r.Max.Y-1)},
	} {
		draw.Draw(dst, e, u, image.Point{}, draw.Over)
	}
}
