// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/colornames"
)

// Theme is the palette and icons of a generated sprite sheet.
type Theme struct {
	Color struct {
		Panel       color.RGBA
		PanelBorder color.RGBA
		// Button backgrounds, by class.
		Primary   color.RGBA
		Secondary color.RGBA
		Positive  color.RGBA
		Mark      color.RGBA
		MarkHover color.RGBA
		Rail      color.RGBA
		Marker    color.RGBA
		// MarkerActive is the marker of a hovered or dragged slider.
		MarkerActive color.RGBA
	}
	Icon struct {
		CheckBoxChecked   *Icon
		CheckBoxUnchecked *Icon
		RadioChecked      *Icon
		RadioUnchecked    *Icon
	}
}

func NewTheme() *Theme {
	t := new(Theme)
	t.Color.Panel = rgb(0x2b2d31)
	t.Color.PanelBorder = rgb(0x4e5058)
	t.Color.Primary = colornames.Royalblue
	t.Color.Secondary = colornames.Dimgray
	t.Color.Positive = colornames.Seagreen
	t.Color.Mark = colornames.Lightgray
	t.Color.MarkHover = colornames.White
	t.Color.Rail = colornames.Gray
	t.Color.Marker = colornames.Lightgray
	t.Color.MarkerActive = colornames.White

	t.Icon.CheckBoxChecked = mustIcon(NewIcon(icons.ToggleCheckBox))
	t.Icon.CheckBoxUnchecked = mustIcon(NewIcon(icons.ToggleCheckBoxOutlineBlank))
	t.Icon.RadioChecked = mustIcon(NewIcon(icons.ToggleRadioButtonChecked))
	t.Icon.RadioUnchecked = mustIcon(NewIcon(icons.ToggleRadioButtonUnchecked))
	return t
}

// Sprites draws a sprite sheet in the layout expected by Renderer.
func (t *Theme) Sprites() *image.RGBA {
	sheet := image.NewRGBA(image.Rectangle{Max: sheetSize})

	fillRounded(sheet, image.Rectangle{Max: panelSize}, panelCorner, t.Color.PanelBorder)
	fillRounded(sheet, image.Rectangle{Max: panelSize}.Inset(1), panelCorner-1, t.Color.Panel)

	classes := [classCount]color.RGBA{
		classPrimary:   t.Color.Primary,
		classSecondary: t.Color.Secondary,
		classPositive:  t.Color.Positive,
	}
	for class, c := range classes {
		for _, pressed := range []bool{false, true} {
			r := buttonPart(0, class, pressed)
			r.Max.X = r.Min.X + buttonWidth
			body := c
			if pressed {
				body = shade(c, 0.8)
			}
			// A darker bottom edge gives released buttons depth.
			fillRounded(sheet, r, buttonLeft.Dx(), shade(c, 0.6))
			if !pressed {
				r.Max.Y -= 4
			}
			fillRounded(sheet, r, buttonLeft.Dx(), body)
		}
	}

	t.Icon.CheckBoxUnchecked.Draw(sheet, mark(checkbox, markIdle), t.Color.Mark)
	t.Icon.CheckBoxUnchecked.Draw(sheet, mark(checkbox, markHover), t.Color.MarkHover)
	t.Icon.CheckBoxChecked.Draw(sheet, mark(checkbox, markChecked), t.Color.MarkHover)
	t.Icon.RadioUnchecked.Draw(sheet, mark(radio, markIdle), t.Color.Mark)
	t.Icon.RadioUnchecked.Draw(sheet, mark(radio, markHover), t.Color.MarkHover)
	t.Icon.RadioChecked.Draw(sheet, mark(radio, markChecked), t.Color.MarkHover)

	draw.Draw(sheet, sliderRail, image.NewUniform(t.Color.Rail), image.Point{}, draw.Src)
	fillRounded(sheet, sliderMarker, 4, t.Color.Marker)
	fillRounded(sheet, sliderMarker.Add(image.Pt(sliderMarker.Dx(), 0)), 4, t.Color.MarkerActive)
	return sheet
}

// fillRounded fills r with corners of the given radius.
func fillRounded(dst *image.RGBA, r image.Rectangle, radius int, c color.RGBA) {
	rad := float32(radius)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			// Distance from the pixel center to the nearest corner
			// center, or 0 outside the corner squares.
			px, py := float32(x)+.5, float32(y)+.5
			dx := max(float32(r.Min.X)+rad-px, px-(float32(r.Max.X)-rad), 0)
			dy := max(float32(r.Min.Y)+rad-py, py-(float32(r.Max.Y)-rad), 0)
			if dx*dx+dy*dy <= rad*rad {
				dst.SetRGBA(x, y, c)
			}
		}
	}
}

func shade(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}

func mustIcon(ic *Icon, err error) *Icon {
	if err != nil {
		panic(err)
	}
	return ic
}

func rgb(c uint32) color.RGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.RGBA {
	return color.RGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
