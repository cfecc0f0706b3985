// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("EncodeHD108", func() {
	It("emits start and end frames for an empty range", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeHD108(nil, w, 255)
		})
		Expect(out).To(Equal([]byte{
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0xFF, 0xFF, 0xFF, 0xFF,
		}))
	})

	It("encodes a single LED with max gain and 16-bit gamma channels", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeHD108([]byte{0x01, 0x80, 0xFF}, w, 255)
		})

		expected := []byte{
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // start
			0xFF, 0xFF, // gain header, always 31/31/31
			0x00, 0x00, // gamma16(0x01)
			0x25, 0x2A, // gamma16(0x80)
			0xFF, 0xFF, // gamma16(0xFF)
			0xFF, 0xFF, 0xFF, 0xFF, // end: (1/2)+4 bytes
		}
		Expect(out).To(Equal(expected))
	})

	It("ignores the brightness argument entirely", func() {
		px := []byte{1, 2, 3}
		dim := encodeToBytes(func(w *bytes.Buffer) error { return EncodeHD108(px, w, 0) })
		max := encodeToBytes(func(w *bytes.Buffer) error { return EncodeHD108(px, w, 255) })
		Expect(dim).To(Equal(max))
	})

	It("grows the end frame by one byte per two LEDs", func() {
		for _, tc := range []struct{ leds, endBytes int }{
			{0, 4}, {1, 4}, {2, 5}, {3, 5}, {10, 9},
		} {
			out := encodeToBytes(func(w *bytes.Buffer) error {
				return EncodeHD108(make([]byte, tc.leds*3), w, 255)
			})
			Expect(out).To(HaveLen(8+tc.leds*8+tc.endBytes), "%d LEDs", tc.leds)
		}
	})
})

var _ = Describe("EncodeHD108HD", func() {
	It("produces output identical to the global variant", func() {
		px := []byte{
			10, 20, 30,
			40, 50, 60,
			70, 80, 90,
		}

		global := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeHD108(px, w, 255)
		})
		perLED := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeHD108HD(px, []uint8{5, 5, 200}, w)
		})
		Expect(perLED).To(Equal(global))
	})

	It("is deterministic despite the header cache", func() {
		px := make([]byte, 12*3)
		brightness := []uint8{7, 7, 7, 1, 2, 3, 3, 3, 0, 0, 255, 255}

		a := encodeToBytes(func(w *bytes.Buffer) error { return EncodeHD108HD(px, brightness, w) })
		b := encodeToBytes(func(w *bytes.Buffer) error { return EncodeHD108HD(px, brightness, w) })
		Expect(a).To(Equal(b))
	})
})
