// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"github.com/lumenware/ledwire/support/dataio"
)

// EncodeWS2812 encodes pixels (3 bytes per LED) as a WS2812 frame: a
// straight passthrough of whatever channel order the input already
// holds, with zero framing overhead. Bit timing and the reset latch
// are transport concerns.
func EncodeWS2812(pixels []byte, w dataio.Writer) error {
	numLEDs := len(pixels) / 3
	_, err := w.Write(pixels[:numLEDs*3])
	return err
}

// EncodeWS2812W is EncodeWS2812 for RGBW variants: 4 bytes per LED.
func EncodeWS2812W(pixels []byte, w dataio.Writer) error {
	numLEDs := len(pixels) / 4
	_, err := w.Write(pixels[:numLEDs*4])
	return err
}
