// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/retained/layout"
	"gioui.org/retained/text"
	"gioui.org/retained/ui"
	"gioui.org/retained/widget"
)

// renderer is the set of capabilities the tour needs.
type renderer interface {
	widget.TextRenderer
	widget.ColumnRenderer
	widget.PanelRenderer
	widget.ButtonRenderer
	widget.CheckboxRenderer
	widget.RadioRenderer
	widget.SliderRenderer
	widget.ProgressBarRenderer
}

type level int

const (
	easy level = iota
	normal
	hard
)

// state is the state of the tour. Messages are functions updating it.
type state struct {
	count   int
	sound   bool
	level   level
	volume  float32
	explain bool

	decrement, increment, reset widget.Clickable
	slider                      widget.Draggable
}

type message func(s *state)

// tour is a UserInterface showing every built-in widget.
type tour[R renderer] struct {
	state
}

func newTour[R renderer](explain bool) *tour[R] {
	return &tour[R]{state: state{level: normal, volume: .5, explain: explain}}
}

func (t *tour[R]) React(m message) {
	m(&t.state)
}

// Layout indices of the interactive widgets, relative to the content
// column of the panel.
const (
	rowButtons = 1
	rowSound   = 2
	rowEasy    = 3
	rowSlider  = 7
	rowReset   = 9
)

func (t *tour[R]) View(size image.Point) ui.Element[message, R] {
	onLevel := func(l level) message {
		return func(s *state) { s.level = l }
	}
	content := widget.NewColumn[message, R]().
		FillWidth().
		Spacing(20).
		Push(widget.NewText[message, R](fmt.Sprintf("Count: %d", t.count)).Size(30).Alignment(text.Middle)).
		Push(widget.NewRow[message, R]().
			Spacing(20).
			JustifyContent(layout.JustifyCenter).
			Push(widget.NewButton[message, R](&t.decrement, "-").
				Class(widget.Secondary).
				OnClick(func(s *state) { s.count-- })).
			Push(widget.NewButton[message, R](&t.increment, "+").
				OnClick(func(s *state) { s.count++ }))).
		Push(widget.NewCheckbox[message, R](t.sound, "Sound", func(on bool) message {
			return func(s *state) { s.sound = on }
		})).
		Push(widget.NewRadio[message, R](easy, "Easy", &t.level, onLevel)).
		Push(widget.NewRadio[message, R](normal, "Normal", &t.level, onLevel)).
		Push(widget.NewRadio[message, R](hard, "Hard", &t.level, onLevel)).
		Push(widget.NewText[message, R](fmt.Sprintf("Volume: %.0f%%", t.volume*100))).
		Push(widget.NewSlider[message, R](&t.slider, 0, 1, t.volume, func(v float32) message {
			return func(s *state) { s.volume = v }
		})).
		Push(widget.NewProgressBar[message, R](t.volume)).
		Push(widget.NewButton[message, R](&t.reset, "Reset").
			Class(widget.Positive).
			FillWidth().
			OnClick(func(s *state) {
				s.count = 0
				s.volume = .5
			}))
	root := widget.NewColumn[message, R]().
		Width(float32(size.X)).
		Height(float32(size.Y)).
		Padding(20).
		AlignItems(layout.Center).
		JustifyContent(layout.JustifyCenter).
		Push(widget.NewPanel[message, R](content).MaxWidth(500)).
		Element()
	if t.explain {
		root = root.Explain(color.NRGBA{R: 0xff, A: 0xff})
	}
	return root
}
