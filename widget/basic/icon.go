// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"
)

// Icon is an IconVG vector icon.
type Icon struct {
	src []byte
}

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte) (*Icon, error) {
	_, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	return &Icon{src: data}, nil
}

// Draw rasterizes the icon in color c over r of dst.
func (ic *Icon) Draw(dst draw.Image, r image.Rectangle, c color.RGBA) {
	m, _ := iconvg.DecodeMetadata(ic.src)
	var ico iconvg.Rasterizer
	ico.SetDstImage(dst, r, draw.Over)
	m.Palette[0] = c
	iconvg.Decode(&ico, ic.src, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	})
}
