// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package chipset enumerates the supported LED chipset protocols and
// dispatches frame encoding to the per-protocol encoders.
package chipset

import (
	"github.com/lumenware/ledwire/chipset/encoder"
	"github.com/lumenware/ledwire/pixel"
	"github.com/lumenware/ledwire/support/dataio"

	"github.com/pkg/errors"
)

// Type identifies an LED chipset protocol.
type Type uint8

// Supported chipset protocols.
const (
	APA102 Type = iota
	SK9822
	HD108
	LPD6803
	LPD8806
	P9813
	SM16716
	UCS7604
	WS2801
	// WS2803 differs from WS2801 only in its nominal clock speed at the
	// transport layer; the wire format is identical.
	WS2803
	WS2812
)

// typeInfo carries the per-protocol constants that differ between
// otherwise similar chipsets.
type typeInfo struct {
	name string

	// order is the channel order the protocol expects on the bus.
	order pixel.Order
}

var typeInfos = [...]typeInfo{
	APA102:  {name: "APA102", order: pixel.OrderBGR},
	SK9822:  {name: "SK9822", order: pixel.OrderBGR},
	HD108:   {name: "HD108", order: pixel.OrderRGB},
	LPD6803: {name: "LPD6803", order: pixel.OrderRGB},
	LPD8806: {name: "LPD8806", order: pixel.OrderGRB},
	P9813:   {name: "P9813", order: pixel.OrderBGR},
	SM16716: {name: "SM16716", order: pixel.OrderRGB},
	UCS7604: {name: "UCS7604", order: pixel.OrderRGB},
	WS2801:  {name: "WS2801", order: pixel.OrderRGB},
	WS2803:  {name: "WS2803", order: pixel.OrderRGB},
	WS2812:  {name: "WS2812", order: pixel.OrderGRB},
}

func (t Type) info() *typeInfo {
	if int(t) >= len(typeInfos) {
		return nil
	}
	return &typeInfos[t]
}

func (t Type) String() string {
	if ti := t.info(); ti != nil {
		return ti.name
	}
	return "UNKNOWN"
}

// Order returns the channel order that pixel data must be stored in
// before it is handed to this chipset's encoder.
func (t Type) Order() pixel.Order { return t.info().order }

// Options carries the per-frame parameters consumed by some protocols.
type Options struct {
	// Brightness is the 8-bit global brightness for protocols with a
	// per-LED dimming header (APA102, SK9822). It is rescaled to the
	// protocol's native bit width at encode time; 0xFF is full
	// brightness and 0x00 is off.
	Brightness uint8

	// PerLED, if non-nil, supplies an 8-bit brightness per LED and takes
	// precedence over Brightness. It must be at least as long as the
	// pixel count.
	PerLED []uint8

	// Auto derives a global brightness from the first pixel's peak
	// component (APA102, SK9822 only). Takes precedence over PerLED.
	Auto bool

	// White selects 4-byte RGBW pixel data for WS2812.
	White bool

	// UCS7604 configures the UCS7604 preamble and data mode.
	UCS7604 encoder.UCS7604Config
}

// Encode writes one complete wire frame for t to w.
//
// pixels is flat component data in t's wire order, already scaled and
// gamma-corrected upstream, 3 bytes per LED (4 for RGBW UCS7604 and
// WS2812 configurations).
func Encode(t Type, pixels []byte, w dataio.Writer, opts Options) error {
	switch t {
	case APA102:
		switch {
		case opts.Auto:
			return encoder.EncodeAPA102Auto(pixels, w)
		case opts.PerLED != nil:
			return encoder.EncodeAPA102HD(pixels, opts.PerLED, w)
		default:
			return encoder.EncodeAPA102(pixels, w, encoder.MapBrightness8to5(opts.Brightness))
		}

	case SK9822:
		switch {
		case opts.Auto:
			return encoder.EncodeSK9822Auto(pixels, w)
		case opts.PerLED != nil:
			return encoder.EncodeSK9822HD(pixels, opts.PerLED, w)
		default:
			return encoder.EncodeSK9822(pixels, w, encoder.MapBrightness8to5(opts.Brightness))
		}

	case HD108:
		if opts.PerLED != nil {
			return encoder.EncodeHD108HD(pixels, opts.PerLED, w)
		}
		return encoder.EncodeHD108(pixels, w, opts.Brightness)

	case LPD6803:
		return encoder.EncodeLPD6803(pixels, w)
	case LPD8806:
		return encoder.EncodeLPD8806(pixels, w)
	case P9813:
		return encoder.EncodeP9813(pixels, w)
	case SM16716:
		return encoder.EncodeSM16716(pixels, w)
	case UCS7604:
		return encoder.EncodeUCS7604(pixels, w, opts.UCS7604)
	case WS2801, WS2803:
		return encoder.EncodeWS2801(pixels, w)
	case WS2812:
		if opts.White {
			return encoder.EncodeWS2812W(pixels, w)
		}
		return encoder.EncodeWS2812(pixels, w)

	default:
		return errors.Errorf("unknown chipset type: %d", t)
	}
}

// EncodedSize returns the exact number of bytes Encode produces for
// numLEDs LEDs under opts.
func EncodedSize(t Type, numLEDs int, opts Options) int {
	switch t {
	case APA102, SK9822:
		if opts.Auto && numLEDs == 0 {
			// The auto-brightness path emits no end frame for an empty
			// range.
			return 4
		}
		return 4 + numLEDs*4 + ((numLEDs/32)+1)*4

	case HD108:
		return 8 + numLEDs*8 + (numLEDs/2 + 4)

	case LPD6803:
		return 4 + numLEDs*2 + (numLEDs/32)*4

	case LPD8806:
		return numLEDs*3 + (numLEDs*3+63)/64

	case P9813:
		return 4 + numLEDs*4 + 4

	case SM16716:
		return numLEDs*3 + 7

	case UCS7604:
		return opts.UCS7604.EncodedSize(numLEDs)

	case WS2801, WS2803:
		return numLEDs * 3

	case WS2812:
		if opts.White {
			return numLEDs * 4
		}
		return numLEDs * 3

	default:
		return 0
	}
}
