// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

import (
	"github.com/lumenware/ledwire/support/dataio"
)

// UCS7604 preamble mode bytes.
const (
	ucs7604Mode8Bit  uint8 = 0x01
	ucs7604Mode16Bit uint8 = 0x02
)

// ucs7604PreambleSize is the fixed preamble: 6-byte sync run, 2-byte
// header, mode byte, 4 current-control bytes, 2 reserved bytes.
const ucs7604PreambleSize = 15

// UCS7604Config selects the UCS7604 data mode and current-control
// values. Mode and RGBW-ness are caller configuration, never
// auto-detected from the data.
type UCS7604Config struct {
	// SixteenBit selects 16-bit gamma-2.8-expanded output; otherwise
	// 8-bit values are copied through directly.
	SixteenBit bool

	// White selects 4-channel RGBW input (4 bytes per LED).
	White bool

	// Current is the per-channel current control in wire R, G, B, W
	// order. Each value is masked to 4 bits at encode time.
	Current [4]uint8
}

func (cfg *UCS7604Config) channels() int {
	if cfg.White {
		return 4
	}
	return 3
}

func (cfg *UCS7604Config) bytesPerChannel() int {
	if cfg.SixteenBit {
		return 2
	}
	return 1
}

func (cfg *UCS7604Config) modeByte() uint8 {
	if cfg.SixteenBit {
		return ucs7604Mode16Bit
	}
	return ucs7604Mode8Bit
}

// EncodedSize returns the exact frame size for numLEDs LEDs under cfg:
// preamble, 0-2 alignment pad bytes, and the LED data.
func (cfg *UCS7604Config) EncodedSize(numLEDs int) int {
	dataSize := numLEDs * cfg.channels() * cfg.bytesPerChannel()
	return ucs7604PreambleSize + ucs7604Pad(dataSize) + dataSize
}

// ucs7604Pad returns the number of zero pad bytes required so the
// total frame size (preamble + pad + data) is divisible by 3, a hard
// protocol constraint.
func ucs7604Pad(dataSize int) int {
	return (3 - (ucs7604PreambleSize+dataSize)%3) % 3
}

// EncodeUCS7604 encodes pixels (8-bit components in wire R/G/B[/W]
// order, 3 or 4 bytes per LED per cfg.White) as a UCS7604 frame.
//
// The frame is a 15-byte preamble (0xFF sync run, 0x00 0x02 header,
// mode byte, 4-bit-masked per-channel current in R/G/B/W order, two
// reserved zero bytes), zero padding to a multiple-of-3 total size,
// then the LED data. 16-bit modes expand each component through the
// gamma-2.8 table and emit big-endian 16-bit values.
func EncodeUCS7604(pixels []byte, w dataio.Writer, cfg UCS7604Config) error {
	channels := cfg.channels()
	numLEDs := len(pixels) / channels
	data := pixels[:numLEDs*channels]
	dataSize := numLEDs * channels * cfg.bytesPerChannel()

	preamble := [ucs7604PreambleSize]byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // sync
		0x00, 0x02, // header
		cfg.modeByte(),
		cfg.Current[0] & 0x0F,
		cfg.Current[1] & 0x0F,
		cfg.Current[2] & 0x0F,
		cfg.Current[3] & 0x0F,
		0x00, 0x00, // reserved
	}
	if _, err := w.Write(preamble[:]); err != nil {
		return err
	}

	for i := 0; i < ucs7604Pad(dataSize); i++ {
		if err := w.WriteByte(0x00); err != nil {
			return err
		}
	}

	if !cfg.SixteenBit {
		_, err := w.Write(data)
		return err
	}

	for _, v := range data {
		g := gamma2_8x16[v]
		if err := w.WriteByte(byte(g >> 8)); err != nil {
			return err
		}
		if err := w.WriteByte(byte(g)); err != nil {
			return err
		}
	}
	return nil
}
