// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"github.com/lumenware/ledwire/support/dataio"
)

// ledFrameHeader is the 3-bit marker at the top of every APA102-family
// per-LED header byte.
const ledFrameHeader = 0xE0

var apa102StartFrame = [4]byte{0x00, 0x00, 0x00, 0x00}

// EncodeAPA102 encodes pixels (3 bytes per LED, B/G/R wire order) as an
// APA102 frame with a single 5-bit global brightness.
//
// brightness is masked to 5 bits; values above 31 silently truncate.
// Even an empty pixel range emits the full start and end framing.
func EncodeAPA102(pixels []byte, w dataio.Writer, brightness uint8) error {
	return encodeAPA102Family(pixels, w, brightness, 0xFF)
}

// EncodeSK9822 is EncodeAPA102 with the SK9822's end-frame polarity:
// the end dwords are 0x00 instead of 0xFF. This is the only structural
// difference between the two protocols.
func EncodeSK9822(pixels []byte, w dataio.Writer, brightness uint8) error {
	return encodeAPA102Family(pixels, w, brightness, 0x00)
}

// EncodeAPA102HD encodes pixels with a per-LED 8-bit brightness,
// consumed lock-step with the pixel data and rescaled to 5 bits via
// MapBrightness8to5.
//
// brightness must hold at least len(pixels)/3 entries.
func EncodeAPA102HD(pixels []byte, brightness []uint8, w dataio.Writer) error {
	return encodeAPA102FamilyHD(pixels, brightness, w, 0xFF)
}

// EncodeSK9822HD is the SK9822 variant of EncodeAPA102HD.
func EncodeSK9822HD(pixels []byte, brightness []uint8, w dataio.Writer) error {
	return encodeAPA102FamilyHD(pixels, brightness, w, 0x00)
}

// EncodeAPA102Auto derives a global brightness from the first pixel's
// peak component, rescales that pixel's channels to compensate, and
// applies the derived brightness to every subsequent LED.
//
// An empty pixel range emits the start frame only, with no end frame.
// This differs from the fixed-brightness variants, which always emit a
// minimal end frame; the asymmetry is part of the contract.
func EncodeAPA102Auto(pixels []byte, w dataio.Writer) error {
	return encodeAPA102FamilyAuto(pixels, w, 0xFF)
}

// EncodeSK9822Auto is the SK9822 variant of EncodeAPA102Auto.
func EncodeSK9822Auto(pixels []byte, w dataio.Writer) error {
	return encodeAPA102FamilyAuto(pixels, w, 0x00)
}

func encodeAPA102Family(pixels []byte, w dataio.Writer, brightness uint8, endByte byte) error {
	if _, err := w.Write(apa102StartFrame[:]); err != nil {
		return err
	}

	hdr := uint8(ledFrameHeader) | brightness&0x1F
	numLEDs := 0
	for off := 0; off+3 <= len(pixels); off += 3 {
		frame := [4]byte{hdr, pixels[off], pixels[off+1], pixels[off+2]}
		if _, err := w.Write(frame[:]); err != nil {
			return err
		}
		numLEDs++
	}

	return writeAPA102EndFrame(numLEDs, endByte, w)
}

func encodeAPA102FamilyHD(pixels []byte, brightness []uint8, w dataio.Writer, endByte byte) error {
	if _, err := w.Write(apa102StartFrame[:]); err != nil {
		return err
	}

	numLEDs := 0
	for off := 0; off+3 <= len(pixels); off += 3 {
		hdr := ledFrameHeader | MapBrightness8to5(brightness[numLEDs])
		frame := [4]byte{hdr, pixels[off], pixels[off+1], pixels[off+2]}
		if _, err := w.Write(frame[:]); err != nil {
			return err
		}
		numLEDs++
	}

	return writeAPA102EndFrame(numLEDs, endByte, w)
}

func encodeAPA102FamilyAuto(pixels []byte, w dataio.Writer, endByte byte) error {
	if _, err := w.Write(apa102StartFrame[:]); err != nil {
		return err
	}
	if len(pixels) < 3 {
		// Degenerate case: start frame only, no end frame.
		return nil
	}

	// Peak component of the first pixel.
	max := pixels[0]
	if pixels[1] > max {
		max = pixels[1]
	}
	if pixels[2] > max {
		max = pixels[2]
	}

	// Yields [1, 31] for any max in [0, 255]; an all-black first pixel
	// still resolves to 1.
	brightness := uint8(((uint16(max)+1)*31-1)>>8) + 1

	// Rescale the first pixel's channels so the same visual color is
	// representable at the reduced brightness resolution.
	first := [4]byte{ledFrameHeader | brightness}
	for i := 0; i < 3; i++ {
		first[i+1] = uint8((31*uint16(pixels[i]) + uint16(brightness)/2) / uint16(brightness))
	}
	if _, err := w.Write(first[:]); err != nil {
		return err
	}

	hdr := ledFrameHeader | brightness
	numLEDs := 1
	for off := 3; off+3 <= len(pixels); off += 3 {
		frame := [4]byte{hdr, pixels[off], pixels[off+1], pixels[off+2]}
		if _, err := w.Write(frame[:]); err != nil {
			return err
		}
		numLEDs++
	}

	return writeAPA102EndFrame(numLEDs, endByte, w)
}

// writeAPA102EndFrame writes the latch frame: (numLEDs/32)+1 dwords of
// endByte. The +1 dword is required even for zero LEDs; dropping it
// corrupts trailing pixels on long strips.
func writeAPA102EndFrame(numLEDs int, endByte byte, w dataio.Writer) error {
	n := ((numLEDs / 32) + 1) * 4
	for i := 0; i < n; i++ {
		if err := w.WriteByte(endByte); err != nil {
			return err
		}
	}
	return nil
}
