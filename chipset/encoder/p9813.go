// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"github.com/lumenware/ledwire/support/dataio"
)

var p9813Boundary = [4]byte{0x00, 0x00, 0x00, 0x00}

// EncodeP9813 encodes pixels (3 bytes per LED, B/G/R wire order) as a
// P9813 frame: per LED, the checksum flag byte followed by B, G, R.
//
// Both the start and end boundaries are a fixed 4 zero bytes,
// independent of LED count; P9813 is the only chipset in this set
// whose end frame does not scale with n.
func EncodeP9813(pixels []byte, w dataio.Writer) error {
	if _, err := w.Write(p9813Boundary[:]); err != nil {
		return err
	}

	for off := 0; off+3 <= len(pixels); off += 3 {
		b, g, r := pixels[off], pixels[off+1], pixels[off+2]
		frame := [4]byte{P9813Flag(r, g, b), b, g, r}
		if _, err := w.Write(frame[:]); err != nil {
			return err
		}
	}

	_, err := w.Write(p9813Boundary[:])
	return err
}
