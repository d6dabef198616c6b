// SPDX-License-Identifier: Unlicense OR MIT

package term

import (
	"image"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// cellFace is a font.Face measuring text in terminal cells: every
// line is one cell tall and runes are one or two cells wide.
type cellFace struct{}

func (cellFace) Close() error { return nil }

func (cellFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return image.Rectangle{}, nil, image.Point{}, 0, false
}

func (cellFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	adv := fixed.I(runewidth.RuneWidth(r))
	return fixed.R(0, -1, adv.Round(), 0), adv, true
}

func (cellFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return fixed.I(runewidth.RuneWidth(r)), true
}

func (cellFace) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (cellFace) Metrics() font.Metrics {
	return font.Metrics{
		Height: fixed.I(1),
		Ascent: fixed.I(1),
	}
}
