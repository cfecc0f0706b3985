// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("EncodeP9813", func() {
	It("emits fixed boundaries even for an empty range", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeP9813(nil, w)
		})
		Expect(out).To(Equal([]byte{
			0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00,
		}))
	})

	It("prefixes each LED with its checksum flag", func() {
		// Input is B, G, R wire order; R=255 here.
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeP9813([]byte{0, 0, 255}, w)
		})
		Expect(out).To(Equal([]byte{
			0x00, 0x00, 0x00, 0x00,
			0xFC, 0, 0, 255,
			0x00, 0x00, 0x00, 0x00,
		}))
	})

	It("keeps the end boundary fixed regardless of LED count", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeP9813(make([]byte, 100*3), w)
		})
		Expect(out).To(HaveLen(4 + 100*4 + 4))
	})
})

var _ = Describe("EncodeSM16716", func() {
	It("appends seven zero bytes after the pixel data", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeSM16716([]byte{1, 2, 3}, w)
		})
		Expect(out).To(Equal([]byte{1, 2, 3, 0, 0, 0, 0, 0, 0, 0}))
	})

	It("emits only the trailer for an empty range", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeSM16716(nil, w)
		})
		Expect(out).To(Equal(make([]byte, 7)))
	})
})

var _ = Describe("EncodeWS2801", func() {
	It("is a raw passthrough with zero framing", func() {
		px := []byte{1, 2, 3, 4, 5, 6}
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeWS2801(px, w)
		})
		Expect(out).To(Equal(px))
	})

	It("behaves identically through the WS2803 alias", func() {
		px := []byte{9, 8, 7}
		a := encodeToBytes(func(w *bytes.Buffer) error { return EncodeWS2801(px, w) })
		b := encodeToBytes(func(w *bytes.Buffer) error { return EncodeWS2803(px, w) })
		Expect(a).To(Equal(b))
	})

	It("drops a trailing partial pixel", func() {
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeWS2801([]byte{1, 2, 3, 4}, w)
		})
		Expect(out).To(Equal([]byte{1, 2, 3}))
	})
})

var _ = Describe("EncodeWS2812", func() {
	It("passes 3-byte pixels through untouched", func() {
		px := []byte{10, 20, 30, 40, 50, 60}
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeWS2812(px, w)
		})
		Expect(out).To(Equal(px))
	})

	It("passes 4-byte RGBW pixels through untouched", func() {
		px := []byte{10, 20, 30, 40}
		out := encodeToBytes(func(w *bytes.Buffer) error {
			return EncodeWS2812W(px, w)
		})
		Expect(out).To(Equal(px))
	})
})
