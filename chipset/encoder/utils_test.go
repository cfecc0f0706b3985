// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("MapBrightness8to5", func() {
	It("maps known values", func() {
		Expect(MapBrightness8to5(0)).To(Equal(uint8(0)))
		Expect(MapBrightness8to5(1)).To(Equal(uint8(1)))
		Expect(MapBrightness8to5(128)).To(Equal(uint8(16)))
		Expect(MapBrightness8to5(255)).To(Equal(uint8(31)))
	})

	It("never rounds a non-zero input down to zero", func() {
		for v := 1; v <= 255; v++ {
			b := MapBrightness8to5(uint8(v))
			Expect(b).To(BeNumerically(">=", 1), "input %d", v)
			Expect(b).To(BeNumerically("<=", 31), "input %d", v)
		}
	})
})

var _ = Describe("P9813Flag", func() {
	It("computes the inverted-top-bits checksum", func() {
		Expect(P9813Flag(0, 0, 0)).To(Equal(uint8(0xFF)))
		Expect(P9813Flag(255, 255, 255)).To(Equal(uint8(0xC0)))
		Expect(P9813Flag(255, 0, 0)).To(Equal(uint8(0xFC)))
	})
})

var _ = Describe("LPD8806Component", func() {
	It("always sets the MSB", func() {
		for v := 0; v <= 255; v++ {
			Expect(LPD8806Component(uint8(v)) & 0x80).To(Equal(uint8(0x80)))
		}
	})

	It("maps known values", func() {
		Expect(LPD8806Component(0)).To(Equal(uint8(0x80)))
		Expect(LPD8806Component(128)).To(Equal(uint8(0xC1)))
		Expect(LPD8806Component(255)).To(Equal(uint8(0xFF)))
	})

	It("saturates at the top of the range", func() {
		Expect(LPD8806Component(254)).To(Equal(uint8(0xFF)))
		Expect(LPD8806Component(253)).To(Equal(uint8(0xFF)))
	})

	It("clusters small values near the bottom", func() {
		Expect(LPD8806Component(1)).To(Equal(uint8(0x81)))
		Expect(LPD8806Component(2)).To(Equal(uint8(0x81)))
	})
})

var _ = Describe("HD108GainHeader", func() {
	It("always emits maximum gain, regardless of brightness", func() {
		for _, b := range []uint8{0, 1, 31, 128, 255} {
			h0, h1 := HD108GainHeader(b)
			Expect(h0).To(Equal(uint8(0xFF)), "brightness %d", b)
			Expect(h1).To(Equal(uint8(0xFF)), "brightness %d", b)
		}
	})
})

var _ = Describe("HD108Gamma", func() {
	It("pins the table endpoints", func() {
		Expect(HD108Gamma(0)).To(Equal(uint16(0x0000)))
		Expect(HD108Gamma(255)).To(Equal(uint16(0xFFFF)))
	})

	It("is monotonically non-decreasing", func() {
		for v := 1; v <= 255; v++ {
			Expect(HD108Gamma(uint8(v))).To(
				BeNumerically(">=", HD108Gamma(uint8(v-1))), "input %d", v)
		}
	})
})

var _ = Describe("LPD6803Pack", func() {
	It("packs the top 5 bits of each channel under a set MSB", func() {
		Expect(LPD6803Pack(0, 0, 0)).To(Equal(uint16(0x8000)))
		Expect(LPD6803Pack(255, 255, 255)).To(Equal(uint16(0xFFFF)))
		Expect(LPD6803Pack(255, 0, 0)).To(Equal(uint16(0x801F)))
		Expect(LPD6803Pack(0, 255, 0)).To(Equal(uint16(0x83E0)))
		Expect(LPD6803Pack(0, 0, 255)).To(Equal(uint16(0xFC00)))
	})
})
