// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"encoding/binary"
	"hash"
	"math"
)

// hashString writes s prefixed by its length, so consecutive strings
// never hash like their concatenation.
func hashString(h hash.Hash64, s string) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(len(s)))
	h.Write(buf[:])
	h.Write([]byte(s))
}

func hashFloats(h hash.Hash64, vs ...float32) {
	buf := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	h.Write(buf)
}

func hashBytes(h hash.Hash64, bs ...byte) {
	h.Write(bs)
}

func b2u(b bool) byte {
	if b {
		return 1
	}
	return 0
}
