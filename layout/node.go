// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "math"

// Size is a width and height in pixels.
type Size struct {
	Width, Height float32
}

// MeasureFunc returns the intrinsic size of a leaf given the space
// available to it. An unconstrained axis is passed as +Inf.
//
// The solver may call a MeasureFunc several times during a single
// Solve with different proposals, so it must not depend on anything
// but its arguments and captured inputs.
type MeasureFunc func(width, height float32) Size

// Node is the layout intent of a widget: a Style and either a list
// of children or a MeasureFunc. Nodes are built for a single Solve
// and discarded afterwards.
type Node struct {
	style    Style
	children []*Node
	measure  MeasureFunc
}

// Inf is the length of an unconstrained axis.
var Inf = float32(math.Inf(1))

// NewNode returns a branch node.
func NewNode(s Style, children ...*Node) *Node {
	return &Node{style: s, children: children}
}

// NewLeaf returns a leaf node sized by m.
func NewLeaf(s Style, m MeasureFunc) *Node {
	return &Node{style: s, measure: m}
}

// Style returns the style of n.
func (n *Node) Style() Style {
	return n.style
}

// SetStyle replaces the style of n.
func (n *Node) SetStyle(s Style) {
	n.style = s
}

// Children returns the children of a branch node.
func (n *Node) Children() []*Node {
	return n.children
}

// IsLeaf reports whether n is measured instead of laid out from
// children.
func (n *Node) IsLeaf() bool {
	return n.measure != nil
}

// MeasureCache remembers the first size measured under a finite width
// constraint. Leaves with expensive measurements, such as text, wrap
// their MeasureFunc with one; a cache is created with its node and
// never outlives the Solve that uses it.
type MeasureCache struct {
	size Size
	ok   bool
}

// Measure returns the cached size, or calls m and caches its result
// if width is finite. Measurements without a width bound are not
// cached because the solver uses them to find intrinsic sizes.
func (c *MeasureCache) Measure(width, height float32, m MeasureFunc) Size {
	if c.ok {
		return c.size
	}
	sz := m(width, height)
	if !math.IsInf(float64(width), 1) {
		c.size = sz
		c.ok = true
	}
	return sz
}

// Cached reports whether c holds a size.
func (c *MeasureCache) Cached() bool {
	return c.ok
}
