// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"github.com/lumenware/ledwire/support/dataio"
)

// sm16716Trailer follows the pixel data. The per-triplet start bit the
// protocol also requires is injected at the SPI/bitbang layer, not
// here.
var sm16716Trailer = [7]byte{}

// EncodeSM16716 encodes pixels (3 bytes per LED, R/G/B wire order) as
// an SM16716 frame: raw pixel data followed by 7 zero bytes.
func EncodeSM16716(pixels []byte, w dataio.Writer) error {
	numLEDs := len(pixels) / 3
	if _, err := w.Write(pixels[:numLEDs*3]); err != nil {
		return err
	}

	_, err := w.Write(sm16716Trailer[:])
	return err
}
