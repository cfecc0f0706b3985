// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

// MapBrightness8to5 rescales an 8-bit brightness to the 5-bit range
// used by the APA102-family per-LED header.
//
// Zero maps to zero, and any non-zero input maps to at least 1: a
// slightly-brighter-than-intended floor beats an LED that silently
// goes dark when its brightness rounds down.
func MapBrightness8to5(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	b := uint8((uint16(v)*31 + 128) / 255)
	if b == 0 {
		b = 1
	}
	return b
}

// P9813Flag computes the P9813 per-LED flag byte from the pixel's 8-bit
// channel values.
//
// The flag is a checksum built from the inverted top two bits of each
// channel; the silicon rejects frames where it does not match.
func P9813Flag(r, g, b uint8) uint8 {
	return 0xC0 | ((^b & 0xC0) >> 2) | ((^g & 0xC0) >> 4) | ((^r & 0xC0) >> 6)
}

// LPD8806Component converts an 8-bit channel value to the LPD8806's
// 7-bit MSB-set encoding.
//
// The low-bit nudge is a rounding correction for odd inputs; 254 and
// 255 both saturate to 0xFF, and 1 and 2 cluster at 0x81.
func LPD8806Component(v uint8) uint8 {
	var nudge uint8
	if v != 0 && v < 254 {
		nudge = 1
	}
	return 0x80 | (v>>1 | nudge)
}

// HD108Gamma expands an 8-bit linear component to the 16-bit
// gamma-2.8-corrected value used by high-bit-depth chipsets.
func HD108Gamma(v uint8) uint16 { return gamma2_8x16[v] }

// HD108GainHeader packs the HD108 2-byte per-channel gain header.
//
// The leading 1 bit is a sync marker the chipset uses to delimit
// frames. The brightness argument is deliberately unused: gain is
// always emitted at maximum (31/31/31) because dimming is applied
// upstream through 16-bit PWM scaling, not through this header.
func HD108GainHeader(brightness uint8) (b0, b1 uint8) {
	_ = brightness

	const gain = 31 // per channel, R/G/B
	b0 = 0x80 | gain<<2 | gain>>3  // 1RRRRRGG
	b1 = (gain&0x07)<<5 | gain     // GGGBBBBB
	return
}

// LPD6803Pack packs 8-bit channels into the LPD6803's 16-bit
// 1_bbbbb_ggggg_rrrrr layout using the top 5 bits of each channel.
func LPD6803Pack(r, g, b uint8) uint16 {
	return 0x8000 |
		uint16(b>>3)<<10 |
		uint16(g>>3)<<5 |
		uint16(r>>3)
}
