// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"github.com/lumenware/ledwire/support/dataio"
)

var hd108StartFrame = [8]byte{}

// EncodeHD108 encodes pixels (3 bytes per LED, R/G/B wire order) as an
// HD108 frame: per LED, a 2-byte gain header followed by three
// big-endian 16-bit gamma-2.8-expanded channels.
//
// The gain header is currently brightness-invariant (see
// HD108GainHeader); the brightness parameter is accepted for signature
// stability only.
func EncodeHD108(pixels []byte, w dataio.Writer, brightness uint8) error {
	if _, err := w.Write(hd108StartFrame[:]); err != nil {
		return err
	}

	h0, h1 := HD108GainHeader(brightness)
	numLEDs := 0
	for off := 0; off+3 <= len(pixels); off += 3 {
		if err := writeHD108LED(w, h0, h1, pixels[off:off+3]); err != nil {
			return err
		}
		numLEDs++
	}

	return writeHD108EndFrame(numLEDs, w)
}

// EncodeHD108HD encodes pixels with a per-LED 8-bit brightness slice
// consumed lock-step with the pixel data.
//
// The last computed gain header is cached across consecutive LEDs with
// equal brightness. brightness must hold at least len(pixels)/3
// entries.
func EncodeHD108HD(pixels []byte, brightness []uint8, w dataio.Writer) error {
	if _, err := w.Write(hd108StartFrame[:]); err != nil {
		return err
	}

	var (
		h0, h1   uint8
		last     uint8
		haveLast bool
	)

	numLEDs := 0
	for off := 0; off+3 <= len(pixels); off += 3 {
		if b := brightness[numLEDs]; !haveLast || b != last {
			h0, h1 = HD108GainHeader(b)
			last, haveLast = b, true
		}
		if err := writeHD108LED(w, h0, h1, pixels[off:off+3]); err != nil {
			return err
		}
		numLEDs++
	}

	return writeHD108EndFrame(numLEDs, w)
}

func writeHD108LED(w dataio.Writer, h0, h1 uint8, rgb []byte) error {
	frame := [8]byte{h0, h1}
	for c := 0; c < 3; c++ {
		v := gamma2_8x16[rgb[c]]
		frame[2+2*c] = byte(v >> 8)
		frame[3+2*c] = byte(v)
	}
	_, err := w.Write(frame[:])
	return err
}

func writeHD108EndFrame(numLEDs int, w dataio.Writer) error {
	n := numLEDs/2 + 4
	for i := 0; i < n; i++ {
		if err := w.WriteByte(0xFF); err != nil {
			return err
		}
	}
	return nil
}
