// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"fmt"
	"image"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// A Line contains the measurements of a line of text.
type Line struct {
	Text string
	// Width is the width of the line.
	Width fixed.Int26_6
	// Ascent is the height above the baseline.
	Ascent fixed.Int26_6
	// Descent is the height below the baseline, including
	// the line gap.
	Descent fixed.Int26_6
}

// A Layout contains the measurements of a body of text as
// a list of Lines.
type Layout struct {
	Lines []Line
}

// Alignment of text within its bounds, horizontally or vertically.
type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
)

// Unbounded is the maximum width of a layout without wrapping.
const Unbounded = fixed.Int26_6(1<<31 - 1)

// LayoutString breaks s into lines no wider than maxWidth. Lines are
// broken at spaces and at newlines; a word wider than maxWidth is
// kept on a line of its own.
func LayoutString(face font.Face, s string, maxWidth fixed.Int26_6) Layout {
	m := face.Metrics()
	descent := m.Height - m.Ascent
	if descent < m.Descent {
		descent = m.Descent
	}
	space := advance(face, " ")
	var lines []Line
	emit := func(txt string, w fixed.Int26_6) {
		lines = append(lines, Line{Text: txt, Width: w, Ascent: m.Ascent, Descent: descent})
	}
	for _, para := range strings.Split(s, "\n") {
		var (
			line  strings.Builder
			width fixed.Int26_6
		)
		words := strings.Fields(para)
		if len(words) == 0 {
			emit("", 0)
			continue
		}
		for _, w := range words {
			ww := advance(face, w)
			if line.Len() > 0 {
				if width+space+ww > maxWidth {
					emit(line.String(), width)
					line.Reset()
					width = 0
				} else {
					line.WriteByte(' ')
					width += space
				}
			}
			line.WriteString(w)
			width += ww
		}
		emit(line.String(), width)
	}
	return Layout{Lines: lines}
}

// Size returns the pixel size of the layout, rounded up.
func (l Layout) Size() image.Point {
	var width fixed.Int26_6
	var h int
	if len(l.Lines) > 0 {
		var prevDesc fixed.Int26_6
		for _, ln := range l.Lines {
			h += (prevDesc + ln.Ascent).Ceil()
			prevDesc = ln.Descent
			if ln.Width > width {
				width = ln.Width
			}
		}
		h += l.Lines[len(l.Lines)-1].Descent.Ceil()
	}
	return image.Point{X: width.Ceil(), Y: h}
}

// Align returns the offset of a span of the given width aligned
// within maxWidth.
func Align(align Alignment, width fixed.Int26_6, maxWidth int) fixed.Int26_6 {
	mw := fixed.I(maxWidth)
	switch align {
	case Middle:
		return fixed.I(((mw - width) / 2).Floor())
	case End:
		return fixed.I((mw - width).Floor())
	case Start:
		return 0
	default:
		panic(fmt.Errorf("unknown alignment %v", align))
	}
}

func advance(face font.Face, s string) fixed.Int26_6 {
	var w fixed.Int26_6
	prev := rune(-1)
	for len(s) > 0 {
		r, n := utf8.DecodeRuneInString(s)
		s = s[n:]
		if prev >= 0 {
			w += face.Kern(prev, r)
		}
		a, ok := face.GlyphAdvance(r)
		if !ok {
			a, _ = face.GlyphAdvance('�')
		}
		w += a
		prev = r
	}
	return w
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}
