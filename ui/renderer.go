// SPDX-License-Identifier: Unlicense OR MIT

package ui

// Renderer is the base capability of every renderer: batching draw
// calls from widgets and submitting them to frames of type F.
//
// A renderer supports a widget kind by also implementing the narrow
// interface that widget declares, such as widget.ButtonRenderer.
// Loading a renderer is specific to its implementation.
type Renderer[F any] interface {
	Explainer
	// Flush draws every batched call onto frame and clears the batch.
	Flush(frame F)
}
