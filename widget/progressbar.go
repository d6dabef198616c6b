// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hash"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
	"gioui.org/retained/ui"
)

// ProgressBarRenderer draws progress bars.
type ProgressBarRenderer interface {
	// DrawProgressBar draws a bar filled to progress, in [0, 1].
	DrawProgressBar(bounds f32.Rectangle, progress float32)
}

// ProgressBar shows the completion of a task.
type ProgressBar[M any, R ProgressBarRenderer] struct {
	ui.Passive[M]

	progress float32
	style    layout.Style
}

const progressBarHeight = 50

// NewProgressBar returns a bar filling the width of its parent.
// Progress is clamped to [0, 1].
func NewProgressBar[M any, R ProgressBarRenderer](progress float32) *ProgressBar[M, R] {
	return &ProgressBar[M, R]{
		progress: max(0, min(progress, 1)),
		style:    layout.DefaultStyle().FillWidth(),
	}
}

// Width fixes the width in pixels.
func (p *ProgressBar[M, R]) Width(px float32) *ProgressBar[M, R] {
	p.style = p.style.WithWidth(px)
	return p
}

func (p *ProgressBar[M, R]) Element() ui.Element[M, R] {
	return ui.New[M, R](p)
}

func (p *ProgressBar[M, R]) Node(R) *layout.Node {
	return layout.NewNode(p.style.WithHeight(progressBarHeight))
}

func (p *ProgressBar[M, R]) Draw(r R, l layout.Layout, _ f32.Point) pointer.Cursor {
	r.DrawProgressBar(l.Bounds(), p.progress)
	return pointer.OutOfBounds
}

func (p *ProgressBar[M, R]) Hash(h hash.Hash64) {
	p.style.Hash(h)
	hashString(h, "progressbar")
	hashFloats(h, p.progress)
}
