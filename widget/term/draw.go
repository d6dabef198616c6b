// SPDX-License-Identifier: Unlicense OR MIT

package term

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/math/fixed"

	"gioui.org/retained/text"
)

func fixedCells(n int) fixed.Int26_6 {
	return fixed.I(max(n, 0))
}

// fill sets every cell of r to ch.
func fill(s tcell.Screen, r image.Rectangle, ch rune, st tcell.Style) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.SetContent(x, y, ch, nil, st)
		}
	}
}

// box draws the line border of r, and clears its inside if erase is
// set.
func box(s tcell.Screen, r image.Rectangle, st tcell.Style, erase bool) {
	if r.Empty() {
		return
	}
	if erase {
		fill(s, r, ' ', st)
	}
	if r.Dx() < 2 || r.Dy() < 2 {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, tcell.RuneHLine, nil, st)
		s.SetContent(x, y1, tcell.RuneHLine, nil, st)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, tcell.RuneVLine, nil, st)
		s.SetContent(x1, y, tcell.RuneVLine, nil, st)
	}
	s.SetContent(x0, y0, tcell.RuneULCorner, nil, st)
	s.SetContent(x1, y0, tcell.RuneURCorner, nil, st)
	s.SetContent(x0, y1, tcell.RuneLLCorner, nil, st)
	s.SetContent(x1, y1, tcell.RuneLRCorner, nil, st)
}

// putString draws str from (x, y), clipped to maxX, and returns the
// position after it.
func putString(s tcell.Screen, x, y, maxX int, str string, st tcell.Style) int {
	for _, ch := range str {
		w := runewidth.RuneWidth(ch)
		if x+w > maxX {
			break
		}
		s.SetContent(x, y, ch, nil, st)
		x += w
	}
	return x
}

// drawLines draws the lines of txt aligned within r.
func drawLines(s tcell.Screen, r image.Rectangle, txt text.Layout, st tcell.Style, align, vertical text.Alignment) {
	y := r.Min.Y
	switch vertical {
	case text.Middle:
		y += (r.Dy() - len(txt.Lines)) / 2
	case text.End:
		y += r.Dy() - len(txt.Lines)
	}
	for _, ln := range txt.Lines {
		if y >= r.Max.Y {
			break
		}
		if y >= r.Min.Y {
			x := r.Min.X + text.Align(align, ln.Width, r.Dx()).Round()
			putString(s, x, y, r.Max.X, ln.Text, st)
		}
		y++
	}
}
