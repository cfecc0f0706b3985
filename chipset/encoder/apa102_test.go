// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"bytes"

	"github.com/lumenware/ledwire/support/fmtutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func encodeToBytes(fn func(w *bytes.Buffer) error) []byte {
	var buf bytes.Buffer
	Expect(fn(&buf)).To(Succeed())
	return buf.Bytes()
}

var _ = Describe("EncodeAPA102", func() {
	It("emits start and end frames for an empty range", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeAPA102(nil, w, 31)
		})
		Expect(out).To(Equal([]byte{
			0x00, 0x00, 0x00, 0x00,
			0xFF, 0xFF, 0xFF, 0xFF,
		}))
	})

	It("encodes a single pixel", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeAPA102([]byte{10, 20, 30}, w, 15)
		})
		Expect(out).To(Equal([]byte{
			0x00, 0x00, 0x00, 0x00,
			0xE0 | 15, 10, 20, 30,
			0xFF, 0xFF, 0xFF, 0xFF,
		}))
	})

	It("masks brightness to 5 bits instead of rejecting it", func() {
		px := []byte{1, 2, 3}
		loud := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeAPA102(px, w, 200)
		})
		masked := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeAPA102(px, w, 200&0x1F)
		})
		Expect(loud).To(Equal(masked))
		Expect(loud[4]).To(Equal(uint8(0xE0 | (200 & 0x1F))))
	})

	It("grows the end frame by one dword per 32 LEDs", func() {
		for _, tc := range []struct{ leds, endBytes int }{
			{0, 4}, {1, 4}, {31, 4}, {32, 8}, {63, 8}, {64, 12},
		} {
			out := encodeToBytes(func(w *bytes.Buffer) error {
				return EncodeAPA102(make([]byte, tc.leds*3), w, 31)
			})
			Expect(out).To(HaveLen(4+tc.leds*4+tc.endBytes),
				"%d LEDs: %s", tc.leds, fmtutil.HexSlice(out))
		}
	})

	It("is deterministic across repeated calls", func() {
		px := []byte{9, 8, 7, 6, 5, 4}
		a := encodeToBytes(func(w *bytes.Buffer) error { return EncodeAPA102(px, w, 20) })
		b := encodeToBytes(func(w *bytes.Buffer) error { return EncodeAPA102(px, w, 20) })
		Expect(a).To(Equal(b))
	})
})

var _ = Describe("EncodeSK9822", func() {
	It("differs from APA102 only in end-frame polarity", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeSK9822([]byte{10, 20, 30}, w, 15)
		})
		Expect(out).To(Equal([]byte{
			0x00, 0x00, 0x00, 0x00,
			0xE0 | 15, 10, 20, 30,
			0x00, 0x00, 0x00, 0x00,
		}))
		Expect(out).ToNot(ContainElement(uint8(0xFF)))
	})
})

var _ = Describe("Per-LED brightness variants", func() {
	It("maps each LED's 8-bit brightness through the 5-bit rescale", func() {
		px := []byte{
			1, 2, 3,
			4, 5, 6,
			7, 8, 9,
		}
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeAPA102HD(px, []uint8{0, 255, 1}, w)
		})
		Expect(out).To(Equal([]byte{
			0x00, 0x00, 0x00, 0x00,
			0xE0, 1, 2, 3, // zero input legitimately yields a zero header
			0xFF, 4, 5, 6,
			0xE1, 7, 8, 9,
			0xFF, 0xFF, 0xFF, 0xFF,
		}))
	})

	It("uses the SK9822 end frame in the SK9822 variant", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeSK9822HD([]byte{1, 2, 3}, []uint8{128}, w)
		})
		Expect(out).To(Equal([]byte{
			0x00, 0x00, 0x00, 0x00,
			0xE0 | 16, 1, 2, 3,
			0x00, 0x00, 0x00, 0x00,
		}))
	})
})

var _ = Describe("Auto-brightness variants", func() {
	It("emits only a start frame for an empty range", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeAPA102Auto(nil, w)
		})
		Expect(out).To(Equal([]byte{0x00, 0x00, 0x00, 0x00}))
	})

	It("derives brightness from the first pixel's peak component", func() {
		// max = 30 => brightness = ((31*31)-1)>>8 + 1 = 4.
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeAPA102Auto([]byte{10, 20, 30}, w)
		})
		Expect(out).To(Equal([]byte{
			0x00, 0x00, 0x00, 0x00,
			0xE0 | 4, 78, 155, 233, // (31*c + 2) / 4
			0xFF, 0xFF, 0xFF, 0xFF,
		}))
	})

	It("applies the derived brightness to subsequent LEDs unmodified", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeAPA102Auto([]byte{
				10, 20, 30,
				40, 50, 60,
			}, w)
		})
		Expect(out[8:12]).To(Equal([]byte{0xE0 | 4, 40, 50, 60}))
	})

	It("resolves an all-black first pixel to minimum brightness", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeAPA102Auto([]byte{0, 0, 0}, w)
		})
		Expect(out).To(Equal([]byte{
			0x00, 0x00, 0x00, 0x00,
			0xE0 | 1, 0, 0, 0,
			0xFF, 0xFF, 0xFF, 0xFF,
		}))
	})

	It("saturates correctly at full white", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeAPA102Auto([]byte{255, 255, 255}, w)
		})
		Expect(out).To(Equal([]byte{
			0x00, 0x00, 0x00, 0x00,
			0xE0 | 31, 255, 255, 255,
			0xFF, 0xFF, 0xFF, 0xFF,
		}))
	})

	It("uses the SK9822 end frame in the SK9822 variant", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeSK9822Auto([]byte{10, 20, 30}, w)
		})
		Expect(out[8:]).To(Equal([]byte{0x00, 0x00, 0x00, 0x00}))
	})
})
