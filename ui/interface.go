// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"github.com/cespare/xxhash/v2"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
)

// Interface is a root Element together with its solved layout.
// Frames of type F are drawn by renderers of type R.
type Interface[F, M any, R Renderer[F]] struct {
	hash   uint64
	root   Element[M, R]
	tree   *layout.Tree
	cached bool
}

// Cache carries the solved layout of an Interface over to the next
// frame. The zero Cache is empty.
type Cache struct {
	hash uint64
	tree *layout.Tree
}

// Compute solves the layout of root. Root is laid out without
// constraints and is expected to size itself.
func Compute[F, M any, R Renderer[F]](root Element[M, R], r R) *Interface[F, M, R] {
	return ComputeWithCache[F](root, r, Cache{})
}

// ComputeWithCache is like Compute but reuses the layout in cache if
// root hashes the same as the root it was solved for.
func ComputeWithCache[F, M any, R Renderer[F]](root Element[M, R], r R, cache Cache) *Interface[F, M, R] {
	h := Hash(root)
	if cache.Hit(h) {
		return &Interface[F, M, R]{hash: h, root: root, tree: cache.tree, cached: true}
	}
	tree := layout.Solve(root.Node(r), layout.Size{Width: layout.Inf, Height: layout.Inf})
	return &Interface[F, M, R]{hash: h, root: root, tree: tree}
}

// Hash returns the xxhash of the widget tree of e.
func Hash[M, R any](e Element[M, R]) uint64 {
	d := xxhash.New()
	e.Hash(d)
	return d.Sum64()
}

// OnEvent delivers e to the root, appending produced messages to msgs.
func (i *Interface[F, M, R]) OnEvent(e event.Event, cursor f32.Point, msgs *[]M) {
	i.root.OnEvent(e, i.tree.Layout(), cursor, msgs)
}

// Draw draws the root, flushes r onto frame and returns the cursor
// suggested by the root.
func (i *Interface[F, M, R]) Draw(r R, frame F, cursor f32.Point) pointer.Cursor {
	c := i.root.Draw(r, i.tree.Layout(), cursor)
	r.Flush(frame)
	return c
}

// Layout returns the solved layout of the root.
func (i *Interface[F, M, R]) Layout() layout.Layout {
	return i.tree.Layout()
}

// Cached reports whether the layout was reused from a cache.
func (i *Interface[F, M, R]) Cached() bool {
	return i.cached
}

// Cache returns the cache of the solved layout.
func (i *Interface[F, M, R]) Cache() Cache {
	return Cache{hash: i.hash, tree: i.tree}
}

// Hit reports whether the cache holds a layout for a tree hashing to h.
func (c Cache) Hit(h uint64) bool {
	return c.tree != nil && c.hash == h
}
