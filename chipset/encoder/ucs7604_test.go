// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("EncodeUCS7604", func() {
	It("emits the fixed preamble with masked current control", func() {
		cfg := UCS7604Config{
			Current: [4]uint8{0xFF, 0x12, 0x05, 0x00},
		}
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeUCS7604(nil, w, cfg)
		})
		Expect(out).To(Equal([]byte{
			0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // sync
			0x00, 0x02, // header
			0x01,                   // 8-bit mode
			0x0F, 0x02, 0x05, 0x00, // current, masked to 4 bits
			0x00, 0x00, // reserved
		}))
	})

	It("copies 8-bit RGB data through with no padding", func() {
		// 15 + 3n is always divisible by 3 in this mode.
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeUCS7604([]byte{1, 2, 3}, w, UCS7604Config{})
		})
		Expect(out).To(HaveLen(18))
		Expect(out[15:]).To(Equal([]byte{1, 2, 3}))
	})

	It("pads an RGBW frame to a multiple-of-3 total size", func() {
		cfg := UCS7604Config{White: true}
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeUCS7604([]byte{1, 2, 3, 4}, w, cfg)
		})
		// 15 + 4 = 19 => 2 pad bytes => 21 total.
		Expect(out).To(HaveLen(21))
		Expect(len(out) % 3).To(BeZero())
		Expect(out[15:]).To(Equal([]byte{0x00, 0x00, 1, 2, 3, 4}))
	})

	It("expands 16-bit modes through the gamma table, big-endian", func() {
		cfg := UCS7604Config{SixteenBit: true}
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeUCS7604([]byte{0x00, 0x80, 0xFF}, w, cfg)
		})
		Expect(out[8]).To(Equal(uint8(0x02))) // 16-bit mode byte
		Expect(out[15:]).To(Equal([]byte{
			0x00, 0x00,
			0x25, 0x2A,
			0xFF, 0xFF,
		}))
		Expect(len(out) % 3).To(BeZero())
	})

	It("pads 16-bit RGBW frames by one byte", func() {
		cfg := UCS7604Config{SixteenBit: true, White: true}
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeUCS7604([]byte{0, 0, 0, 0}, w, cfg)
		})
		// 15 + 8 = 23 => 1 pad byte => 24 total.
		Expect(out).To(HaveLen(24))
		Expect(len(out) % 3).To(BeZero())
	})

	It("agrees with EncodedSize across modes and LED counts", func() {
		configs := []UCS7604Config{
			{},
			{White: true},
			{SixteenBit: true},
			{SixteenBit: true, White: true},
		}
		for _, cfg := range configs {
			for _, leds := range []int{0, 1, 2, 5, 33} {
				px := make([]byte, leds*cfg.channels())
				out := encodeToBytes(func(w *bytes.Buffer) error {
					return EncodeUCS7604(px, w, cfg)
				})
				Expect(out).To(HaveLen(cfg.EncodedSize(leds)),
					"cfg %+v, %d LEDs", cfg, leds)
			}
		}
	})
})
