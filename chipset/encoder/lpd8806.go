// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"github.com/lumenware/ledwire/support/dataio"
)

// EncodeLPD8806 encodes pixels (3 bytes per LED, G/R/B wire order) as
// an LPD8806 frame: no start frame, every component passed through the
// 7-bit MSB-set encoding, then a zero latch of ceil(n*3/64) bytes.
func EncodeLPD8806(pixels []byte, w dataio.Writer) error {
	numLEDs := len(pixels) / 3
	data := pixels[:numLEDs*3]

	for _, v := range data {
		if err := w.WriteByte(LPD8806Component(v)); err != nil {
			return err
		}
	}

	latch := (numLEDs*3 + 63) / 64
	for i := 0; i < latch; i++ {
		if err := w.WriteByte(0x00); err != nil {
			return err
		}
	}
	return nil
}
