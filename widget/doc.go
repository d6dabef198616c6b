// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements common user interface controls. Widgets
// are rebuilt for every frame; state that must persist across frames,
// such as Clickable and Draggable, is owned by the program and passed
// in by pointer.
//
// Widgets don't draw anything themselves. Each widget declares the
// renderer capability it needs, such as ButtonRenderer, and renderer
// packages such as `widget/basic` implement them.
package widget
