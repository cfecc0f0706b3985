// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package strip ties a pixel buffer, a chipset encoder, and a frame
// sink together into a controllable LED strip.
//
// A Strip owns the logical pixel state between refreshes; Show renders
// that state into one encoded wire frame and hands it to the sink.
package strip

import (
	"github.com/lumenware/ledwire/chipset"
	"github.com/lumenware/ledwire/chipset/encoder"
	"github.com/lumenware/ledwire/pixel"
	"github.com/lumenware/ledwire/sink"
	"github.com/lumenware/ledwire/support/bufferpool"
	"github.com/lumenware/ledwire/support/logging"

	"github.com/pkg/errors"
)

// Config describes a Strip.
type Config struct {
	// Chipset is the wire protocol of the attached LEDs.
	Chipset chipset.Type

	// NumLEDs is the number of LEDs on the strip.
	NumLEDs int

	// White enables the fourth channel on protocols that support RGBW.
	White bool

	// GammaCorrect applies gamma-2.8 correction to the pixel data at
	// show time, upstream of the encoder. High-bit-depth chipsets
	// (HD108, 16-bit UCS7604 modes) expand gamma inside the encoder
	// instead and should leave this off.
	GammaCorrect bool

	// AutoBrightness derives the APA102/SK9822 global brightness from
	// the first pixel's peak component instead of Brightness.
	AutoBrightness bool

	// UCS7604 configures the UCS7604 data mode, when applicable.
	UCS7604 encoder.UCS7604Config

	// Logger, if not nil, receives per-show debug logs.
	Logger logging.L
}

// Strip is the mutable state of one LED strip.
//
// Strip is not safe for concurrent use.
type Strip struct {
	cfg    Config
	sender sink.FrameSender
	logger logging.L

	pixels  pixel.Buffer
	scratch pixel.Buffer

	brightness uint8
	perLED     []uint8
	warnedSize bool

	pool bufferpool.Pool
}

// New creates a Strip with all pixels black and full global
// brightness.
//
// The Strip does not take ownership of sender; the caller closes it.
func New(cfg Config, sender sink.FrameSender) *Strip {
	s := &Strip{
		cfg:        cfg,
		sender:     sender,
		logger:     logging.Must(cfg.Logger),
		brightness: 255,
	}
	s.pixels.Order = cfg.Chipset.Order()
	s.pixels.White = cfg.White
	s.pixels.Reset(cfg.NumLEDs)
	return s
}

// Len returns the number of LEDs on the strip.
func (s *Strip) Len() int { return s.pixels.Len() }

// SetPixel sets the logical color of LED i.
func (s *Strip) SetPixel(i int, p pixel.P) { s.pixels.SetPixel(i, p) }

// Pixel returns the logical color of LED i.
func (s *Strip) Pixel(i int) pixel.P { return s.pixels.Pixel(i) }

// SetBrightness sets the 8-bit global brightness used by protocols
// with a dimming header. 255 is full brightness.
func (s *Strip) SetBrightness(b uint8) { s.brightness = b }

// SetPerLEDBrightness supplies an 8-bit brightness per LED, overriding
// the global brightness on protocols that support it. The slice must
// stay at least NumLEDs long for as long as it is installed; pass nil
// to revert to global brightness.
func (s *Strip) SetPerLEDBrightness(b []uint8) { s.perLED = b }

// Show encodes the current pixel state as one wire frame and sends it
// to the sink.
func (s *Strip) Show() error {
	stripShows.With(s.labels()).Inc()

	// Encode from a scratch copy so gamma correction never compounds
	// across frames.
	src := &s.pixels
	if s.cfg.GammaCorrect {
		s.scratch.CloneFrom(&s.pixels)
		s.scratch.Gamma()
		src = &s.scratch
	}

	opts := chipset.Options{
		Brightness: s.brightness,
		PerLED:     s.perLED,
		Auto:       s.cfg.AutoBrightness,
		White:      s.cfg.White,
		UCS7604:    s.cfg.UCS7604,
	}

	buf := s.pool.Get()
	defer buf.Release()

	if err := chipset.Encode(s.cfg.Chipset, src.Bytes(), buf, opts); err != nil {
		stripShowErrors.With(s.labels()).Inc()
		return errors.Wrapf(err, "encoding %s frame", s.cfg.Chipset)
	}

	if max := sink.MaxFrameSize(s.sender); max > 0 && buf.Len() > max && !s.warnedSize {
		s.warnedSize = true
		s.logger.Warnf("Encoded frame (%d byte(s)) exceeds the sink's frame bound (%d byte(s)).",
			buf.Len(), max)
	}

	if err := s.sender.SendFrame(buf.Bytes()); err != nil {
		stripShowErrors.With(s.labels()).Inc()
		return errors.Wrap(err, "sending frame")
	}

	s.logger.Debugf("showed %d LEDs (%d wire bytes) on %s",
		s.Len(), buf.Len(), s.cfg.Chipset)
	return nil
}
