// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package pixel supplies the color values and wire-order buffers that
// feed the chipset encoders.
//
// The chipset encoders consume raw component bytes that are already in
// the byte order a chipset expects on the bus and already scaled for
// brightness and gamma. This package is the layer that produces those
// bytes: logical (R, G, B[, W]) pixels go in, wire-ordered and
// corrected component bytes come out.
package pixel

import (
	"fmt"
)

// gamma2_8 is a 2.8-power gamma correction table mapping 8-bit linear
// input to 8-bit perceptual output.
var gamma2_8 = [256]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2,
	2, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 5, 5, 5,
	5, 6, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10,
	10, 10, 11, 11, 11, 12, 12, 13, 13, 13, 14, 14, 15, 15, 16, 16,
	17, 17, 18, 18, 19, 19, 20, 20, 21, 21, 22, 22, 23, 24, 24, 25,
	25, 26, 27, 27, 28, 29, 29, 30, 31, 32, 32, 33, 34, 35, 35, 36,
	37, 38, 39, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 50,
	51, 52, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63, 64, 66, 67, 68,
	69, 70, 72, 73, 74, 75, 77, 78, 79, 81, 82, 83, 85, 86, 87, 89,
	90, 92, 93, 95, 96, 98, 99, 101, 102, 104, 105, 107, 109, 110, 112, 114,
	115, 117, 119, 120, 122, 124, 126, 127, 129, 131, 133, 135, 137, 138, 140, 142,
	144, 146, 148, 150, 152, 154, 156, 158, 160, 162, 164, 167, 169, 171, 173, 175,
	177, 180, 182, 184, 186, 189, 191, 193, 196, 198, 200, 203, 205, 208, 210, 213,
	215, 218, 220, 223, 225, 228, 231, 233, 236, 239, 241, 244, 247, 249, 252, 255,
}

// Gamma8 returns the gamma-2.8 corrected value of an 8-bit linear
// component.
func Gamma8(v uint8) uint8 { return gamma2_8[v] }

// P is the state of a single pixel.
//
// White is only meaningful on RGBW strips and is ignored elsewhere.
type P struct {
	Red   uint8
	Green uint8
	Blue  uint8
	White uint8
}

func (p *P) String() string {
	if p.White == 0 {
		return fmt.Sprintf("(%d, %d, %d)", p.Red, p.Green, p.Blue)
	}
	return fmt.Sprintf("(%d, %d, %d / %d)", p.Red, p.Green, p.Blue, p.White)
}

// Gamma returns a new P with every channel shifted through the
// gamma-2.8 table.
func (p *P) Gamma() P {
	return P{
		Red:   gamma2_8[p.Red],
		Green: gamma2_8[p.Green],
		Blue:  gamma2_8[p.Blue],
		White: gamma2_8[p.White],
	}
}

// Scale returns a new P with every channel scaled by an 8-bit factor,
// where 255 is identity.
func (p *P) Scale(s uint8) P {
	return P{
		Red:   scale8(p.Red, s),
		Green: scale8(p.Green, s),
		Blue:  scale8(p.Blue, s),
		White: scale8(p.White, s),
	}
}

// scale8 scales v by s/256, with s+1 correction so that s=255 is
// identity and s=0 is zero.
func scale8(v, s uint8) uint8 {
	return uint8((uint16(v) * (uint16(s) + 1)) >> 8)
}
