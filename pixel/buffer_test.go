// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixel

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Buffer", func() {
	It("stores RGB pixels in wire order", func() {
		pb := Buffer{Order: OrderBGR}
		pb.SetPixels(P{Red: 1, Green: 2, Blue: 3}, P{Red: 4, Green: 5, Blue: 6})

		Expect(pb.Len()).To(Equal(2))
		Expect(pb.Bytes()).To(Equal([]byte{3, 2, 1, 6, 5, 4}))
	})

	It("round-trips pixels through every order", func() {
		orders := []Order{OrderRGB, OrderRBG, OrderGRB, OrderGBR, OrderBRG, OrderBGR}
		p := P{Red: 10, Green: 20, Blue: 30}

		for _, o := range orders {
			pb := Buffer{Order: o}
			pb.SetPixels(p)
			Expect(pb.Pixel(0)).To(Equal(p), "order %s", o)
		}
	})

	It("stores a trailing white channel when enabled", func() {
		pb := Buffer{Order: OrderGRB, White: true}
		pb.SetPixels(P{Red: 1, Green: 2, Blue: 3, White: 4})

		Expect(pb.Bytes()).To(Equal([]byte{2, 1, 3, 4}))
		Expect(pb.Pixel(0)).To(Equal(P{Red: 1, Green: 2, Blue: 3, White: 4}))
	})

	It("returns zero values out of bounds and ignores bad writes", func() {
		pb := Buffer{}
		pb.Reset(1)

		Expect(pb.Pixel(4)).To(Equal(P{}))
		pb.SetPixel(4, P{Red: 9})
		Expect(pb.Bytes()).To(Equal([]byte{0, 0, 0}))
	})

	It("reuses its allocation across resets", func() {
		pb := Buffer{}
		pb.Reset(8)
		pb.SetPixel(0, P{Red: 0xFF})

		pb.Reset(4)
		Expect(pb.Len()).To(Equal(4))
		Expect(pb.Bytes()).To(Equal(make([]byte, 12)))
	})

	It("applies gamma correction in place", func() {
		pb := Buffer{}
		pb.SetPixels(P{Red: 255, Green: 128, Blue: 0})
		pb.Gamma()

		Expect(pb.Bytes()).To(Equal([]byte{255, gamma2_8[128], 0}))
	})

	It("scales components with 255 as identity", func() {
		pb := Buffer{}
		pb.SetPixels(P{Red: 200, Green: 100, Blue: 50})

		pb.Scale(255)
		Expect(pb.Bytes()).To(Equal([]byte{200, 100, 50}))

		pb.Scale(128)
		Expect(pb.Bytes()).To(Equal([]byte{
			scale8(200, 128), scale8(100, 128), scale8(50, 128),
		}))

		pb.Scale(0)
		Expect(pb.Bytes()).To(Equal([]byte{0, 0, 0}))
	})
})

var _ = Describe("Pixel values", func() {
	It("gamma endpoints are fixed", func() {
		Expect(Gamma8(0)).To(Equal(uint8(0)))
		Expect(Gamma8(255)).To(Equal(uint8(255)))
	})

	It("Scale at 255 is identity and at 0 is black", func() {
		p := P{Red: 12, Green: 34, Blue: 56, White: 78}
		Expect(p.Scale(255)).To(Equal(p))
		Expect(p.Scale(0)).To(Equal(P{}))
	})
})
