// SPDX-License-Identifier: Unlicense OR MIT

// Package term implements a renderer drawing widgets as characters on
// a terminal screen.
//
// Layouts are solved in pixels like for any other renderer; every
// terminal cell covers CellSize pixels.
package term

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/gdamore/tcell/v2"

	"gioui.org/retained/f32"
	"gioui.org/retained/layout"
	"gioui.org/retained/text"
)

// Configuration of a Renderer.
type Configuration struct {
	// CellSize is the size of a terminal cell in layout pixels.
	CellSize image.Point
	Logger   *slog.Logger
}

// Renderer draws widgets onto a tcell.Screen. It implements the
// renderer capability of every widget in package widget.
type Renderer struct {
	cell   image.Point
	logger *slog.Logger

	ops      []func(s tcell.Screen)
	outlines []func(s tcell.Screen)
}

// DefaultCellSize approximates the cell of a common terminal font.
var DefaultCellSize = image.Pt(8, 16)

var ErrCellSize = errors.New("term: invalid cell size")

func DefaultConfiguration() Configuration {
	return Configuration{CellSize: DefaultCellSize}
}

// Load returns a renderer for cfg.
func Load(ctx context.Context, cfg Configuration) (*Renderer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.CellSize.X <= 0 || cfg.CellSize.Y <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrCellSize, cfg.CellSize)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("term: renderer loaded", "cell", cfg.CellSize)
	return &Renderer{cell: cfg.CellSize, logger: logger}, nil
}

// Flush draws every batched call onto s and shows it.
func (r *Renderer) Flush(s tcell.Screen) {
	for _, op := range r.ops {
		op(s)
	}
	for _, op := range r.outlines {
		op(s)
	}
	r.ops = r.ops[:0]
	r.outlines = r.outlines[:0]
	s.Show()
}

// Explain outlines the bounds of l and its descendants.
func (r *Renderer) Explain(l layout.Layout, c color.NRGBA) {
	cells := r.cells(l.Bounds())
	st := tcell.StyleDefault.Foreground(tcellColor(c))
	r.outlines = append(r.outlines, func(s tcell.Screen) {
		box(s, cells, st, false)
	})
	for _, child := range l.Children() {
		r.Explain(child, c)
	}
}

// CellSize returns the size of a cell in layout pixels.
func (r *Renderer) CellSize() image.Point {
	return r.cell
}

// Point converts a cell position to the pixel at its center.
func (r *Renderer) Point(x, y int) f32.Point {
	return f32.Pt(
		(float32(x)+.5)*float32(r.cell.X),
		(float32(y)+.5)*float32(r.cell.Y),
	)
}

// TextNode measures content in cells, one cell per line of text.
func (r *Renderer) TextNode(s layout.Style, content string, size float32) *layout.Node {
	var cache layout.MeasureCache
	return layout.NewLeaf(s, func(w, h float32) layout.Size {
		return cache.Measure(w, h, func(w, _ float32) layout.Size {
			sz := r.layoutText(content, w).Size()
			return layout.Size{
				Width:  float32(sz.X * r.cell.X),
				Height: float32(sz.Y * r.cell.Y),
			}
		})
	})
}

func (r *Renderer) DrawText(bounds f32.Rectangle, content string, size float32, c color.NRGBA, alignment, verticalAlignment text.Alignment) {
	cells := r.cells(bounds)
	txt := r.layoutText(content, bounds.Dx())
	st := tcell.StyleDefault.Foreground(tcellColor(c))
	r.ops = append(r.ops, func(s tcell.Screen) {
		drawLines(s, cells, txt, st, alignment, verticalAlignment)
	})
}

func (r *Renderer) layoutText(content string, width float32) text.Layout {
	maxWidth := text.Unbounded
	if !math.IsInf(float64(width), 1) {
		maxWidth = fixedCells(int(width) / r.cell.X)
	}
	return text.LayoutString(cellFace{}, content, maxWidth)
}

// cells converts pixel bounds to cell bounds.
func (r *Renderer) cells(b f32.Rectangle) image.Rectangle {
	cx, cy := float64(r.cell.X), float64(r.cell.Y)
	return image.Rect(
		int(math.Round(float64(b.Min.X)/cx)),
		int(math.Round(float64(b.Min.Y)/cy)),
		int(math.Round(float64(b.Max.X)/cx)),
		int(math.Round(float64(b.Max.Y)/cy)),
	)
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
