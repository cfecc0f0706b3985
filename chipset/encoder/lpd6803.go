// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"github.com/lumenware/ledwire/support/dataio"
)

var (
	lpd6803StartFrame = [4]byte{0x00, 0x00, 0x00, 0x00}
	lpd6803EndMarker  = [4]byte{0xFF, 0x00, 0x00, 0x00}
)

// EncodeLPD6803 encodes pixels (3 bytes per LED, R/G/B wire order) as
// an LPD6803 frame: 2 bytes per LED in the 1_bbbbb_ggggg_rrrrr layout.
//
// The end marker is n/32 dwords with NO +1, unlike APA102: strips
// under 32 LEDs legitimately get zero end-marker bytes.
func EncodeLPD6803(pixels []byte, w dataio.Writer) error {
	if _, err := w.Write(lpd6803StartFrame[:]); err != nil {
		return err
	}

	numLEDs := 0
	for off := 0; off+3 <= len(pixels); off += 3 {
		v := LPD6803Pack(pixels[off], pixels[off+1], pixels[off+2])
		frame := [2]byte{byte(v >> 8), byte(v)}
		if _, err := w.Write(frame[:]); err != nil {
			return err
		}
		numLEDs++
	}

	for i := 0; i < numLEDs/32; i++ {
		if _, err := w.Write(lpd6803EndMarker[:]); err != nil {
			return err
		}
	}
	return nil
}
