// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FaceCache hands out faces of a single font, one per size, and
// keeps the most recently used ones open.
type FaceCache struct {
	font *opentype.Font

	mu         sync.Mutex
	m          map[float32]*faceElem
	head, tail *faceElem
}

type faceElem struct {
	next, prev *faceElem
	size       float32
	face       font.Face
}

const maxFaces = 16

func NewFaceCache(f *opentype.Font) *FaceCache {
	c := &FaceCache{
		font: f,
		m:    make(map[float32]*faceElem),
		head: new(faceElem),
		tail: new(faceElem),
	}
	c.head.prev = c.tail
	c.tail.next = c.head
	return c
}

// Face returns the face for size in pixels per em.
func (c *FaceCache) Face(size float32) (font.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.m[size]; ok {
		c.remove(e)
		c.insert(e)
		return e.face, nil
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: face of size %v: %w", size, err)
	}
	e := &faceElem{size: size, face: face}
	c.m[size] = e
	c.insert(e)
	if len(c.m) > maxFaces {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.size)
		oldest.face.Close()
	}
	return face, nil
}

// Len returns the number of open faces.
func (c *FaceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

// Close closes every open face.
func (c *FaceCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.m {
		e.face.Close()
		delete(c.m, k)
	}
	c.head.prev = c.tail
	c.tail.next = c.head
	return nil
}

func (c *FaceCache) remove(e *faceElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (c *FaceCache) insert(e *faceElem) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}
